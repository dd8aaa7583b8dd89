package dto

import (
	"time"

	weekdto "stepcount/internal/modules/week/dto"
)

type BeginOutput struct {
	SessionID string
	StartedAt time.Time
}

type GoalOutput struct {
	Goal     float64
	Accepted bool
}

type DaysOutput struct {
	Days     int
	Accepted bool
}

type SampleOutput struct {
	Value     float64
	Met       bool
	Remaining float64
	Feedback  string
}

type FinishInput struct {
	SessionID string
	Goal      float64
	Days      int
	Samples   []float64
	StartedAt time.Time
}

type RunOutput struct {
	SessionID string
	Goal      float64
	Days      int
	StartedAt time.Time
	EndedAt   time.Time
	Summary   weekdto.Summary
}
