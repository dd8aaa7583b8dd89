package out

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"

	"stepcount/internal/modules/week/domain"
	weekout "stepcount/internal/modules/week/port/out"
	apperrors "stepcount/internal/platform/errors"
)

//go:embed encouragement.yaml
var defaultTable []byte

// Picker chooses one of n variants.
type Picker func(n int) int

func FirstVariant(int) int { return 0 }

// RandomVariant picks with a caller-seeded source.
func RandomVariant(seed int64) Picker {
	rng := rand.New(rand.NewSource(seed))
	return rng.Intn
}

type variant struct {
	Headline string   `yaml:"headline"`
	Lines    []string `yaml:"lines"`
}

type EncouragementTable struct {
	tiers map[domain.Tier][]variant
	pick  Picker
}

// NewEncouragementTable loads the built-in table.
func NewEncouragementTable(pick Picker) (weekout.EncouragementSource, error) {
	table, err := parseTable(defaultTable, pick)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// NewFileEncouragementTable loads a table from a YAML file. Tiers missing from
// the file keep their built-in messages.
func NewFileEncouragementTable(path string, pick Picker) (weekout.EncouragementSource, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encouragement table: %w", err)
	}
	base, err := parseTable(defaultTable, pick)
	if err != nil {
		return nil, err
	}
	override, err := parseTable(payload, pick)
	if err != nil {
		return nil, err
	}
	for tier, variants := range override.tiers {
		base.tiers[tier] = variants
	}
	return base, nil
}

func parseTable(payload []byte, pick Picker) (*EncouragementTable, error) {
	raw := map[string][]variant{}
	if err := yaml.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode encouragement table: %w", err)
	}
	tiers := make(map[domain.Tier][]variant, len(raw))
	for name, variants := range raw {
		tier := domain.Tier(name)
		if err := tier.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		if len(variants) == 0 {
			return nil, fmt.Errorf("%w: tier %q has no messages", apperrors.ErrInvalidInput, name)
		}
		tiers[tier] = variants
	}
	if pick == nil {
		pick = FirstVariant
	}
	return &EncouragementTable{tiers: tiers, pick: pick}, nil
}

type messageData struct {
	Met  int
	Days int
	Best string
}

func (t *EncouragementTable) Encouragement(_ context.Context, tier domain.Tier, met, days int, best float64) (domain.Encouragement, error) {
	variants, ok := t.tiers[tier]
	if !ok {
		return domain.Encouragement{}, fmt.Errorf("tier %q: %w", tier, apperrors.ErrNotFound)
	}
	idx := t.pick(len(variants))
	if idx < 0 || idx >= len(variants) {
		idx = 0
	}
	v := variants[idx]
	data := messageData{Met: met, Days: days, Best: domain.FormatCount(best)}

	headline, err := expand(v.Headline, data)
	if err != nil {
		return domain.Encouragement{}, err
	}
	lines := make([]string, 0, len(v.Lines))
	for _, line := range v.Lines {
		text, err := expand(line, data)
		if err != nil {
			return domain.Encouragement{}, err
		}
		lines = append(lines, text)
	}
	return domain.Encouragement{Headline: headline, Lines: lines}, nil
}

func expand(text string, data messageData) (string, error) {
	tmpl, err := template.New("msg").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse message %q: %w", text, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render message %q: %w", text, err)
	}
	return buf.String(), nil
}
