package out

import (
	"context"

	"stepcount/internal/modules/week/domain"
)

// EncouragementSource supplies the feedback text for a tier. best is the
// highest single-day value of the week.
type EncouragementSource interface {
	Encouragement(ctx context.Context, tier domain.Tier, met, days int, best float64) (domain.Encouragement, error)
}
