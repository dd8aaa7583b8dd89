package in

import (
	"context"

	sessiondto "stepcount/internal/modules/session/dto"
	sessionin "stepcount/internal/modules/session/port/in"
	weekdto "stepcount/internal/modules/week/dto"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, console sessionin.Console) (sessiondto.RunOutput, error) {
	return h.usecase.Run(ctx, console)
}

func (h CLIHandler) Begin(ctx context.Context) sessiondto.BeginOutput {
	return h.usecase.Begin(ctx)
}

func (h CLIHandler) Goal(token string) sessiondto.GoalOutput {
	return h.usecase.Goal(token)
}

func (h CLIHandler) Days(token string) sessiondto.DaysOutput {
	return h.usecase.Days(token)
}

func (h CLIHandler) Sample(ctx context.Context, token string, goal float64) (sessiondto.SampleOutput, error) {
	return h.usecase.Sample(ctx, token, goal)
}

func (h CLIHandler) Finish(ctx context.Context, input sessiondto.FinishInput) (sessiondto.RunOutput, error) {
	return h.usecase.Finish(ctx, input)
}

func (h CLIHandler) Report(out sessiondto.RunOutput) string {
	return h.usecase.RenderReport(out)
}

// ReportSummary renders an already analyzed week.
func (h CLIHandler) ReportSummary(summary weekdto.Summary) string {
	return h.usecase.RenderReport(sessiondto.RunOutput{Goal: summary.Goal, Days: summary.Days, Summary: summary})
}
