package in

import (
	"context"

	"stepcount/internal/modules/week/dto"
)

type Usecase interface {
	Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.Summary, error)
	CheckDay(ctx context.Context, value, goal float64) dto.DayOutput
}
