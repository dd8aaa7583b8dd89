package bootstrap

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	sessioninadapter "stepcount/internal/modules/session/adapter/in"
	sessionoutadapter "stepcount/internal/modules/session/adapter/out"
	sessiondomain "stepcount/internal/modules/session/domain"
	sessiondto "stepcount/internal/modules/session/dto"
	sessionservice "stepcount/internal/modules/session/service"
	sessionusecase "stepcount/internal/modules/session/usecase"
	weekinadapter "stepcount/internal/modules/week/adapter/in"
	weekoutadapter "stepcount/internal/modules/week/adapter/out"
	weekdomain "stepcount/internal/modules/week/domain"
	weekout "stepcount/internal/modules/week/port/out"
	weekservice "stepcount/internal/modules/week/service"
	weekusecase "stepcount/internal/modules/week/usecase"
	"stepcount/internal/platform/clock"
	"stepcount/internal/platform/config"
	"stepcount/internal/platform/id"
	"stepcount/internal/platform/theme"
	uiapp "stepcount/internal/ui/app"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	WeekCLI    weekinadapter.CLIHandler
	Config     config.Config
	Logger     hclog.Logger
}

// Options carries the process-level collaborators that tests replace.
type Options struct {
	Clock  clock.Clock
	IDs    id.Generator
	Picker weekoutadapter.Picker
	Styles *theme.Styles
}

func New(cfg config.Config, log hclog.Logger, out io.Writer, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = id.UUID{}
	}
	pick := opts.Picker
	if pick == nil {
		pick = weekoutadapter.RandomVariant(clock.Seed(clk))
	}
	styles := theme.New(out)
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	var encouragement weekout.EncouragementSource
	var err error
	if cfg.EncouragementFile != "" {
		encouragement, err = weekoutadapter.NewFileEncouragementTable(cfg.EncouragementFile, pick)
	} else {
		encouragement, err = weekoutadapter.NewEncouragementTable(pick)
	}
	if err != nil {
		return nil, fmt.Errorf("load encouragement table: %w", err)
	}

	policy := weekdomain.TierPolicy{Excellent: cfg.Tiers.Excellent, Good: cfg.Tiers.Good, Started: cfg.Tiers.Started}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	weekUC := weekusecase.NewInteractor(weekservice.NewWeekService(policy), encouragement, log)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, styles),
		weekUC,
		sessiondomain.Settings{Goal: cfg.Goal, Days: cfg.Days},
		log,
	)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		WeekCLI:    weekinadapter.NewCLIHandler(weekUC),
		Config:     cfg,
		Logger:     log,
	}, nil
}

// RunConsole runs one console session. The console is acquired here and
// released on every return path.
func RunConsole(ctx context.Context, app *App, in io.Reader, out io.Writer) (sessiondto.RunOutput, error) {
	console := sessionoutadapter.NewStreamConsole(in, out)
	defer func() {
		if err := console.Close(); err != nil {
			app.Logger.Warn("close console", "error", err)
		}
	}()
	return app.SessionCLI.Run(ctx, console)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.Config.Goal, app.Config.Days)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
