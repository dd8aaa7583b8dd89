package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"stepcount/internal/modules/session/domain"
	sessiondto "stepcount/internal/modules/session/dto"
	sessionin "stepcount/internal/modules/session/port/in"
	sessionout "stepcount/internal/modules/session/port/out"
	"stepcount/internal/modules/session/service"
	weekdto "stepcount/internal/modules/week/dto"
	weekin "stepcount/internal/modules/week/port/in"
	apperrors "stepcount/internal/platform/errors"
)

type Interactor struct {
	svc      *service.SessionService
	week     weekin.Usecase
	defaults domain.Settings
	log      hclog.Logger
}

func NewInteractor(svc *service.SessionService, week weekin.Usecase, defaults domain.Settings, log hclog.Logger) sessionin.Usecase {
	return &Interactor{svc: svc, week: week, defaults: defaults, log: log.Named("session")}
}

func (i *Interactor) Run(ctx context.Context, console sessionout.Console) (sessiondto.RunOutput, error) {
	begin := i.Begin(ctx)
	log := i.log.With("session_id", begin.SessionID)

	if err := console.Print(i.svc.Banner()); err != nil {
		return sessiondto.RunOutput{}, err
	}

	goal, err := i.promptGoal(ctx, console)
	if err != nil {
		return sessiondto.RunOutput{}, err
	}
	log.Debug("goal set", "goal", goal)

	days, err := i.promptDays(ctx, console)
	if err != nil {
		return sessiondto.RunOutput{}, err
	}
	log.Debug("days set", "days", days)

	var samples []float64
	for day := 1; day <= days; day++ {
		value, err := i.promptSample(ctx, console, log, day, goal)
		if err != nil {
			return sessiondto.RunOutput{}, err
		}
		samples = append(samples, value)
	}

	out, err := i.Finish(ctx, sessiondto.FinishInput{
		SessionID: begin.SessionID,
		Goal:      goal,
		Days:      days,
		Samples:   samples,
		StartedAt: begin.StartedAt,
	})
	if err != nil {
		return sessiondto.RunOutput{}, err
	}
	if err := console.Print(i.RenderReport(out)); err != nil {
		return sessiondto.RunOutput{}, err
	}
	return out, nil
}

// promptGoal is single-shot: anything but a positive number keeps the default.
func (i *Interactor) promptGoal(ctx context.Context, console sessionout.Console) (float64, error) {
	if err := console.Print(i.svc.GoalPrompt(i.defaults.Goal)); err != nil {
		return 0, err
	}
	token, err := nextSingleShot(ctx, console)
	if err != nil {
		return 0, err
	}
	goal := i.Goal(token).Goal
	if err := console.Print(i.svc.GoalChosen(goal)); err != nil {
		return 0, err
	}
	return goal, nil
}

func (i *Interactor) promptDays(ctx context.Context, console sessionout.Console) (int, error) {
	if err := console.Print(i.svc.DaysPrompt(i.defaults.Days)); err != nil {
		return 0, err
	}
	token, err := nextSingleShot(ctx, console)
	if err != nil {
		return 0, err
	}
	days := i.Days(token).Days
	if err := console.Print(i.svc.DaysChosen(days)); err != nil {
		return 0, err
	}
	return days, nil
}

// nextSingleShot reads one token and drops the rest of its line. End of input
// yields an empty token so the caller keeps its default.
func nextSingleShot(ctx context.Context, console sessionout.Console) (string, error) {
	token, err := console.Next(ctx)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if err := console.DiscardLine(); err != nil {
		return "", err
	}
	return token, nil
}

// promptSample re-prompts the same day until a non-negative number arrives.
func (i *Interactor) promptSample(ctx context.Context, console sessionout.Console, log hclog.Logger, day int, goal float64) (float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := console.Print(i.svc.DayPrompt(day)); err != nil {
			return 0, err
		}
		token, err := console.Next(ctx)
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("day %d: %w", day, apperrors.ErrInputClosed)
		}
		if err != nil {
			return 0, err
		}

		out, err := i.Sample(ctx, token, goal)
		switch {
		case errors.Is(err, apperrors.ErrNotANumber):
			log.Trace("sample rejected", "day", day, "token", token, "reason", err)
			if err := console.Print(i.svc.Rejected(service.MsgInvalidNumber)); err != nil {
				return 0, err
			}
			if err := console.DiscardLine(); err != nil {
				return 0, err
			}
			continue
		case errors.Is(err, apperrors.ErrNegativeSample):
			log.Trace("sample rejected", "day", day, "token", token, "reason", err)
			if err := console.Print(i.svc.Rejected(service.MsgNegativeSample)); err != nil {
				return 0, err
			}
			continue
		case err != nil:
			return 0, err
		}

		log.Debug("sample accepted", "day", day, "value", out.Value, "met", out.Met)
		if err := console.Print(out.Feedback + "\n\n"); err != nil {
			return 0, err
		}
		return out.Value, nil
	}
}

func (i *Interactor) Begin(_ context.Context) sessiondto.BeginOutput {
	return sessiondto.BeginOutput{SessionID: i.svc.NewID(), StartedAt: i.svc.Clock().Now()}
}

func (i *Interactor) Goal(token string) sessiondto.GoalOutput {
	goal, ok := domain.ResolveGoal(token, i.defaults.Goal)
	return sessiondto.GoalOutput{Goal: goal, Accepted: ok}
}

func (i *Interactor) Days(token string) sessiondto.DaysOutput {
	days, ok := domain.ResolveDays(token, i.defaults.Days)
	return sessiondto.DaysOutput{Days: days, Accepted: ok}
}

func (i *Interactor) Sample(ctx context.Context, token string, goal float64) (sessiondto.SampleOutput, error) {
	value, err := domain.ValidateSample(token)
	if err != nil {
		return sessiondto.SampleOutput{}, err
	}
	day := i.week.CheckDay(ctx, value, goal)
	return sessiondto.SampleOutput{
		Value:     value,
		Met:       day.Met,
		Remaining: day.Remaining,
		Feedback:  i.svc.DayFeedback(day),
	}, nil
}

func (i *Interactor) Finish(ctx context.Context, input sessiondto.FinishInput) (sessiondto.RunOutput, error) {
	if input.Days != len(input.Samples) {
		return sessiondto.RunOutput{}, fmt.Errorf("%w: %d samples for %d days", apperrors.ErrInvalidInput, len(input.Samples), input.Days)
	}
	summary, err := i.week.Analyze(ctx, weekdto.AnalyzeInput{Samples: input.Samples, Goal: input.Goal})
	if err != nil {
		return sessiondto.RunOutput{}, err
	}
	endedAt := i.svc.Clock().Now()
	i.log.Info("session finished",
		"session_id", input.SessionID,
		"days", input.Days,
		"met", summary.DaysGoalMet,
		"duration", endedAt.Sub(input.StartedAt).Round(time.Second),
	)
	return sessiondto.RunOutput{
		SessionID: input.SessionID,
		Goal:      input.Goal,
		Days:      input.Days,
		StartedAt: input.StartedAt,
		EndedAt:   endedAt,
		Summary:   summary,
	}, nil
}

func (i *Interactor) RenderReport(out sessiondto.RunOutput) string {
	return i.svc.Report(out)
}
