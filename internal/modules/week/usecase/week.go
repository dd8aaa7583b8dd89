package usecase

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"stepcount/internal/modules/week/dto"
	weekin "stepcount/internal/modules/week/port/in"
	weekout "stepcount/internal/modules/week/port/out"
	"stepcount/internal/modules/week/service"
)

type Interactor struct {
	svc           *service.WeekService
	encouragement weekout.EncouragementSource
	log           hclog.Logger
}

func NewInteractor(svc *service.WeekService, encouragement weekout.EncouragementSource, log hclog.Logger) weekin.Usecase {
	return &Interactor{svc: svc, encouragement: encouragement, log: log.Named("week")}
}

func (i *Interactor) Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.Summary, error) {
	stats, err := i.svc.Summarize(input.Samples, input.Goal)
	if err != nil {
		return dto.Summary{}, err
	}
	days := stats.Set.Len()
	i.log.Debug("week analyzed", "days", days, "total", stats.Total, "met", stats.DaysGoalMet, "tier", stats.Tier)

	summary := dto.Summary{
		Days:        days,
		Goal:        stats.Set.DailyGoal(),
		Samples:     stats.Set.Samples(),
		Total:       stats.Total,
		Average:     stats.Average,
		Max:         stats.Max,
		Min:         stats.Min,
		DaysGoalMet: stats.DaysGoalMet,
		Breakdown:   stats.Set.String(),
		Tier:        string(stats.Tier),
	}
	if i.encouragement == nil {
		return summary, nil
	}
	msg, err := i.encouragement.Encouragement(ctx, stats.Tier, stats.DaysGoalMet, days, stats.Max)
	if err != nil {
		return dto.Summary{}, fmt.Errorf("encouragement for %s: %w", stats.Tier, err)
	}
	summary.Headline = msg.Headline
	summary.Encouragement = msg.Lines
	return summary, nil
}

func (i *Interactor) CheckDay(_ context.Context, value, goal float64) dto.DayOutput {
	met, remaining := i.svc.CheckDay(value, goal)
	return dto.DayOutput{Value: value, Goal: goal, Met: met, Remaining: remaining}
}
