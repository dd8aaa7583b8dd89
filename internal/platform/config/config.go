package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "stepcount/internal/platform/errors"
	"stepcount/internal/platform/logging"
)

const (
	DefaultGoal     = 10000.0
	DefaultDays     = 7
	DefaultLogLevel = "off"
)

type Tiers struct {
	Excellent int `yaml:"excellent"`
	Good      int `yaml:"good"`
	Started   int `yaml:"started"`
}

type Config struct {
	Goal              float64 `yaml:"goal"`
	Days              int     `yaml:"days"`
	Tiers             Tiers   `yaml:"tiers"`
	EncouragementFile string  `yaml:"encouragement_file"`
	LogLevel          string  `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Goal:     DefaultGoal,
		Days:     DefaultDays,
		Tiers:    Tiers{Excellent: 5, Good: 3, Started: 1},
		LogLevel: DefaultLogLevel,
	}
}

// New returns the defaults overlaid with the YAML file at path. An empty path
// yields the defaults unchanged.
func New(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Goal <= 0 {
		return fmt.Errorf("%w: goal must be positive, got %v", apperrors.ErrInvalidInput, c.Goal)
	}
	if c.Days <= 0 {
		return fmt.Errorf("%w: days must be positive, got %d", apperrors.ErrInvalidInput, c.Days)
	}
	t := c.Tiers
	if t.Started < 1 || t.Good < t.Started || t.Excellent < t.Good {
		return fmt.Errorf("%w: tiers must satisfy 1 <= started <= good <= excellent", apperrors.ErrInvalidInput)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
