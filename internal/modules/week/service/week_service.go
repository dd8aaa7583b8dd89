package service

import (
	"fmt"

	"stepcount/internal/modules/week/domain"
)

type Stats struct {
	Set         domain.SampleSet
	Total       float64
	Average     float64
	Max         float64
	Min         float64
	DaysGoalMet int
	Tier        domain.Tier
}

type WeekService struct {
	policy domain.TierPolicy
}

func NewWeekService(policy domain.TierPolicy) *WeekService {
	return &WeekService{policy: policy}
}

func (s *WeekService) Summarize(samples []float64, goal float64) (Stats, error) {
	for i, v := range samples {
		if v < 0 {
			return Stats{}, fmt.Errorf("day %d: negative sample %v", i+1, v)
		}
	}
	set := domain.NewSampleSet(samples, goal)
	highest, err := set.Max()
	if err != nil {
		return Stats{}, fmt.Errorf("summarize week: %w", err)
	}
	lowest, err := set.Min()
	if err != nil {
		return Stats{}, fmt.Errorf("summarize week: %w", err)
	}
	met := set.DaysGoalMet()
	return Stats{
		Set:         set,
		Total:       set.Total(),
		Average:     set.Average(),
		Max:         highest,
		Min:         lowest,
		DaysGoalMet: met,
		Tier:        s.policy.Classify(met, set.Len()),
	}, nil
}

func (s *WeekService) CheckDay(value, goal float64) (met bool, remaining float64) {
	if value >= goal {
		return true, 0
	}
	return false, goal - value
}
