package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	weekout "stepcount/internal/modules/week/adapter/out"
	"stepcount/internal/modules/week/domain"
	apperrors "stepcount/internal/platform/errors"
)

func TestBuiltInTableCoversEveryTier(t *testing.T) {
	t.Parallel()
	table, err := weekout.NewEncouragementTable(weekout.FirstVariant)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	for _, tier := range domain.Tiers {
		msg, err := table.Encouragement(context.Background(), tier, 3, 7, 12000)
		if err != nil {
			t.Fatalf("tier %s: %v", tier, err)
		}
		if msg.Headline == "" || len(msg.Lines) == 0 {
			t.Fatalf("tier %s: empty message %+v", tier, msg)
		}
	}
}

func TestTemplatesUseTrackedDayCount(t *testing.T) {
	t.Parallel()
	table, err := weekout.NewEncouragementTable(weekout.FirstVariant)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	msg, err := table.Encouragement(context.Background(), domain.TierExcellent, 9, 10, 0)
	if err != nil {
		t.Fatalf("encouragement: %v", err)
	}
	if msg.Lines[0] != "You met your goal 9 out of 10 days!" {
		t.Fatalf("unexpected line %q", msg.Lines[0])
	}
}

func TestPickerSelectsVariant(t *testing.T) {
	t.Parallel()
	last := func(n int) int { return n - 1 }
	table, err := weekout.NewEncouragementTable(last)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	msg, err := table.Encouragement(context.Background(), domain.TierPerfect, 5, 5, 0)
	if err != nil {
		t.Fatalf("encouragement: %v", err)
	}
	if msg.Headline != "🎉 FLAWLESS! 5 for 5!" {
		t.Fatalf("unexpected headline %q", msg.Headline)
	}

	outOfRange := func(int) int { return 42 }
	table, err = weekout.NewEncouragementTable(outOfRange)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	msg, err = table.Encouragement(context.Background(), domain.TierNone, 0, 7, 0)
	if err != nil {
		t.Fatalf("encouragement: %v", err)
	}
	if !strings.HasPrefix(msg.Headline, "🌟 KEEP TRYING!") {
		t.Fatalf("out-of-range pick should fall back to first variant, got %q", msg.Headline)
	}
}

func TestRandomVariantIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	a := weekout.RandomVariant(7)
	b := weekout.RandomVariant(7)
	for i := 0; i < 20; i++ {
		if x, y := a(5), b(5); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestFileTableOverridesTiers(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "messages.yaml")
	content := "none:\n  - headline: \"Rest week, best was {{.Best}}\"\n    lines:\n      - \"{{.Met}}/{{.Days}}\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	table, err := weekout.NewFileEncouragementTable(path, weekout.FirstVariant)
	if err != nil {
		t.Fatalf("load file table: %v", err)
	}
	msg, err := table.Encouragement(context.Background(), domain.TierNone, 0, 7, 4321)
	if err != nil {
		t.Fatalf("encouragement: %v", err)
	}
	if msg.Headline != "Rest week, best was 4,321" || msg.Lines[0] != "0/7" {
		t.Fatalf("unexpected override message %+v", msg)
	}
	msg, err = table.Encouragement(context.Background(), domain.TierGood, 3, 7, 0)
	if err != nil {
		t.Fatalf("built-in tier: %v", err)
	}
	if !strings.HasPrefix(msg.Headline, "👍 GOOD EFFORT!") {
		t.Fatalf("expected built-in good tier, got %q", msg.Headline)
	}
}

func TestFileTableRejectsUnknownTier(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "messages.yaml")
	if err := os.WriteFile(path, []byte("legendary:\n  - headline: x\n"), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	_, err := weekout.NewFileEncouragementTable(path, nil)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
