package in

import (
	"context"

	"stepcount/internal/modules/session/dto"
	sessionout "stepcount/internal/modules/session/port/out"
)

// Console is the terminal a console session reads tokens from and prints to.
type Console = sessionout.Console

type Usecase interface {
	// Run drives a full console session: goal, day count, one sample per day,
	// then the report.
	Run(ctx context.Context, console Console) (dto.RunOutput, error)

	Begin(ctx context.Context) dto.BeginOutput
	Goal(token string) dto.GoalOutput
	Days(token string) dto.DaysOutput
	Sample(ctx context.Context, token string, goal float64) (dto.SampleOutput, error)
	Finish(ctx context.Context, input dto.FinishInput) (dto.RunOutput, error)
	RenderReport(out dto.RunOutput) string
}
