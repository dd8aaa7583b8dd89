package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	apperrors "stepcount/internal/platform/errors"
)

const (
	DefaultGoal = 10000.0
	DefaultDays = 7
)

// Settings are the session-wide parameters chosen before samples are entered.
type Settings struct {
	Goal float64
	Days int
}

func DefaultSettings() Settings {
	return Settings{Goal: DefaultGoal, Days: DefaultDays}
}

var grouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// ParseNumber accepts plain decimals and comma-grouped values such as
// "10,000" or "1,234.5". Non-finite values are rejected.
func ParseNumber(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if grouped.MatchString(token) {
		token = strings.ReplaceAll(token, ",", "")
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.ErrNotANumber
	}
	return v, nil
}

// ParseCount accepts plain or comma-grouped integers that fit in 32 bits.
func ParseCount(token string) (int, error) {
	token = strings.TrimSpace(token)
	if grouped.MatchString(token) && !strings.Contains(token, ".") {
		token = strings.ReplaceAll(token, ",", "")
	}
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, apperrors.ErrNotANumber
	}
	return int(v), nil
}

// ResolveGoal applies the single-shot goal rule: only a strictly positive
// number replaces the fallback.
func ResolveGoal(token string, fallback float64) (float64, bool) {
	v, err := ParseNumber(token)
	if err != nil || v <= 0 {
		return fallback, false
	}
	return v, true
}

// ResolveDays applies the single-shot day-count rule.
func ResolveDays(token string, fallback int) (int, bool) {
	v, err := ParseCount(token)
	if err != nil || v <= 0 {
		return fallback, false
	}
	return v, true
}

// ValidateSample applies the per-day rule. The caller re-prompts on error.
func ValidateSample(token string) (float64, error) {
	v, err := ParseNumber(token)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, apperrors.ErrNegativeSample
	}
	return v, nil
}
