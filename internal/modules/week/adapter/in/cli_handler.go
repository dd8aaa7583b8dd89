package in

import (
	"context"

	"stepcount/internal/modules/week/dto"
	weekin "stepcount/internal/modules/week/port/in"
)

type CLIHandler struct {
	usecase weekin.Usecase
}

func NewCLIHandler(usecase weekin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Analyze(ctx context.Context, samples []float64, goal float64) (dto.Summary, error) {
	return h.usecase.Analyze(ctx, dto.AnalyzeInput{Samples: samples, Goal: goal})
}

func (h CLIHandler) CheckDay(ctx context.Context, value, goal float64) dto.DayOutput {
	return h.usecase.CheckDay(ctx, value, goal)
}
