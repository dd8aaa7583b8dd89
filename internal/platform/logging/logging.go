package logging

import (
	"fmt"
	"io"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	apperrors "stepcount/internal/platform/errors"
)

// ParseLevel maps a configured level name to an hclog level. Empty means off.
func ParseLevel(level string) (hclog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return hclog.Off, nil
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("%w: unknown log level %q", apperrors.ErrInvalidInput, level)
	}
	return lvl, nil
}

// New builds the process logger. Level "off" (or empty) silences output.
// Callers validate level first; an unknown name falls back to info.
func New(level string, w io.Writer) hclog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "stepcount",
		Output: w,
		Level:  lvl,
	})
}

// Discard is a logger for tests and components built without one.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.Off})
}
