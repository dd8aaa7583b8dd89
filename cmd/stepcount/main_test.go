package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "stepcount/internal/platform/errors"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestReportCommand(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "report", "--goal", "1500", "1000", "2,000", "3000")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{
		"Total Steps: 6,000\n",
		"Average: 2,000\n",
		"Day 1: 1,000\nDay 2: 2,000 ✓\nDay 3: 3,000 ✓\n",
		"Goal Achievement: 2 out of 3 days\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestReportCommandRejectsBadSample(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "report", "1000", "lots")
	if !errors.Is(err, apperrors.ErrNotANumber) {
		t.Fatalf("expected ErrNotANumber, got %v", err)
	}
}

func TestReportCommandUsesConfigGoal(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stepcount.yaml")
	if err := os.WriteFile(path, []byte("goal: 500\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := execute(t, "", "--config", path, "report", "400", "600")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out, "Day 1: 400\nDay 2: 600 ✓\n") {
		t.Fatalf("expected config goal to apply:\n%s", out)
	}
}

func TestRunCommandReadsStdin(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "1000\n2\n1500\n500\n", "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Goal Achievement: 1 out of 2 days\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Next week's goal: Beat your best day of 1,500 steps!\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRootRunsConsoleSessionAndFailsOnClosedInput(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "1000\n1\n")
	if !errors.Is(err, apperrors.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestUnknownLogLevelIsRejected(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "--log-level", "loud", "report", "1000")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	t.Parallel()
	_, stderr, err := execute(t, "1000\n1\n1000\n", "--log-level", "debug", "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, "session finished") {
		t.Fatalf("expected session log on stderr, got %q", stderr)
	}
}
