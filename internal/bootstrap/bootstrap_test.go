package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stepcount/internal/bootstrap"
	weekout "stepcount/internal/modules/week/adapter/out"
	"stepcount/internal/platform/clock"
	"stepcount/internal/platform/config"
	apperrors "stepcount/internal/platform/errors"
	"stepcount/internal/platform/logging"
	"stepcount/internal/platform/theme"
)

type fixedID struct{}

func (fixedID) New() string { return "sess-42" }

func newApp(t *testing.T, cfg config.Config, out *bytes.Buffer) *bootstrap.App {
	t.Helper()
	plain := theme.Plain()
	app, err := bootstrap.New(cfg, logging.Discard(), out, bootstrap.Options{
		Clock:  clock.Fixed(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)),
		IDs:    fixedID{},
		Picker: weekout.FirstVariant,
		Styles: &plain,
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return app
}

func TestRunConsoleWithConfiguredDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Goal = 3000
	cfg.Days = 2
	var out bytes.Buffer
	app := newApp(t, cfg, &out)

	res, err := bootstrap.RunConsole(context.Background(), app, strings.NewReader("x\ny\n3000\n2999\n"), &out)
	if err != nil {
		t.Fatalf("run console: %v", err)
	}
	if res.SessionID != "sess-42" || res.Goal != 3000 || res.Days != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.Contains(out.String(), "You need 1 more steps to reach your goal.") {
		t.Fatalf("unexpected transcript:\n%s", out.String())
	}
}

func TestNewWithEncouragementFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "messages.yaml")
	if err := os.WriteFile(path, []byte("perfect:\n  - headline: \"All {{.Days}}!\"\n    lines: [\"done\"]\n"), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	cfg := config.Default()
	cfg.EncouragementFile = path
	var out bytes.Buffer
	app := newApp(t, cfg, &out)

	summary, err := app.WeekCLI.Analyze(context.Background(), []float64{20000, 20000}, 10000)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if summary.Headline != "All 2!" {
		t.Fatalf("unexpected headline %q", summary.Headline)
	}
	if !strings.Contains(app.SessionCLI.ReportSummary(summary), "All 2!\ndone\n") {
		t.Fatalf("report should include file-based encouragement")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Days = 0
	var out bytes.Buffer
	if _, err := bootstrap.New(cfg, logging.Discard(), &out, bootstrap.Options{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
