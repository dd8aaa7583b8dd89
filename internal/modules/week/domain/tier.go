package domain

import "fmt"

type Tier string

const (
	TierPerfect   Tier = "perfect"
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierStarted   Tier = "started"
	TierNone      Tier = "none"
)

var Tiers = []Tier{TierPerfect, TierExcellent, TierGood, TierStarted, TierNone}

// TierPolicy holds the minimum met-day counts for the partial tiers.
type TierPolicy struct {
	Excellent int
	Good      int
	Started   int
}

func DefaultTierPolicy() TierPolicy {
	return TierPolicy{Excellent: 5, Good: 3, Started: 1}
}

func (p TierPolicy) Validate() error {
	if p.Started < 1 || p.Good < p.Started || p.Excellent < p.Good {
		return fmt.Errorf("invalid tier policy %+v", p)
	}
	return nil
}

// Classify maps met days out of tracked days to a tier. Meeting the goal on
// every tracked day always wins, even when days is below the excellent bar.
func (p TierPolicy) Classify(met, days int) Tier {
	switch {
	case days > 0 && met >= days:
		return TierPerfect
	case met >= p.Excellent:
		return TierExcellent
	case met >= p.Good:
		return TierGood
	case met >= p.Started:
		return TierStarted
	default:
		return TierNone
	}
}

func (t Tier) Validate() error {
	for _, known := range Tiers {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(t))
}

// Encouragement is the qualitative feedback shown for a tier.
type Encouragement struct {
	Headline string
	Lines    []string
}
