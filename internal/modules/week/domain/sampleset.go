package domain

import (
	"strconv"
	"strings"

	apperrors "stepcount/internal/platform/errors"
	"stepcount/internal/platform/numfmt"
)

const (
	DefaultGoal = 10000.0
	// GoalMarker is appended to a rendered day that met the goal.
	GoalMarker = " ✓"
)

// SampleSet holds one value per tracked day and the goal each day is measured
// against. It owns its storage: the constructor copies the caller's slice and
// nothing mutates it afterwards.
type SampleSet struct {
	samples []float64
	goal    float64
}

func NewSampleSet(samples []float64, goal float64) SampleSet {
	data := make([]float64, len(samples))
	copy(data, samples)
	return SampleSet{samples: data, goal: goal}
}

func NewSampleSetWithDefaultGoal(samples []float64) SampleSet {
	return NewSampleSet(samples, DefaultGoal)
}

func (s SampleSet) Len() int {
	return len(s.samples)
}

// Samples returns a copy of the stored values in day order.
func (s SampleSet) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s SampleSet) DailyGoal() float64 {
	return s.goal
}

func (s SampleSet) Total() float64 {
	total := 0.0
	for _, v := range s.samples {
		total += v
	}
	return total
}

// Average is zero for an empty set.
func (s SampleSet) Average() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.Total() / float64(len(s.samples))
}

// Max fails with ErrEmptySampleSet when there are no samples.
func (s SampleSet) Max() (float64, error) {
	if len(s.samples) == 0 {
		return 0, apperrors.ErrEmptySampleSet
	}
	highest := s.samples[0]
	for _, v := range s.samples[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest, nil
}

// Min fails with ErrEmptySampleSet when there are no samples.
func (s SampleSet) Min() (float64, error) {
	if len(s.samples) == 0 {
		return 0, apperrors.ErrEmptySampleSet
	}
	lowest := s.samples[0]
	for _, v := range s.samples[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest, nil
}

func (s SampleSet) Met(value float64) bool {
	return value >= s.goal
}

func (s SampleSet) DaysGoalMet() int {
	count := 0
	for _, v := range s.samples {
		if s.Met(v) {
			count++
		}
	}
	return count
}

// String renders one "Day N: value" line per sample, each newline-terminated.
func (s SampleSet) String() string {
	var b strings.Builder
	for i, v := range s.samples {
		b.WriteString("Day ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(FormatCount(v))
		if s.Met(v) {
			b.WriteString(GoalMarker)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatCount is the single number format used for rendered values.
func FormatCount(v float64) string {
	return numfmt.Count(v)
}
