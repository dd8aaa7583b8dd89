package clock_test

import (
	"testing"
	"time"

	"stepcount/internal/platform/clock"
)

func TestFixedAndSeed(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	c := clock.Fixed(at)
	if !c.Now().Equal(at) || !c.Now().Equal(at) {
		t.Fatalf("fixed clock moved: %v", c.Now())
	}
	if got := clock.Seed(c); got != at.UnixNano() {
		t.Fatalf("expected seed %d, got %d", at.UnixNano(), got)
	}
}

func TestSystemClockIsUTC(t *testing.T) {
	t.Parallel()
	if loc := (clock.SystemClock{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}
