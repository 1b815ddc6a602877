package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/termlife/model"
)

// ErrInvalidConfig marks a configuration that cannot drive a simulation
var ErrInvalidConfig = errors.New("invalid config")

// Scenario names understood besides the pattern catalog
const (
	ScenarioRandom   = "random"
	ScenarioMultiple = "multiple"
	ScenarioGun      = "gun"
)

// Config holds the configuration for the game
type Config struct {
	Width            int           `json:"width" yaml:"width"`
	Height           int           `json:"height" yaml:"height"`
	FrameRate        time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations   int           `json:"max_generations" yaml:"max_generations"`
	Scenario         string        `json:"scenario" yaml:"scenario"`
	RandomDensity    float64       `json:"random_density" yaml:"random_density"`
	OriginX          int           `json:"origin_x" yaml:"origin_x"`
	OriginY          int           `json:"origin_y" yaml:"origin_y"`
	Seed             int64         `json:"seed" yaml:"seed"`
	StopOnExtinction bool          `json:"stop_on_extinction" yaml:"stop_on_extinction"`
	StopOnStagnation bool          `json:"stop_on_stagnation" yaml:"stop_on_stagnation"`
	StagnationWindow int           `json:"stagnation_window" yaml:"stagnation_window"`
	AutoRestart      bool          `json:"auto_restart" yaml:"auto_restart"`
	Demo             bool          `json:"demo" yaml:"demo"`
	DemoDuration     time.Duration `json:"demo_duration" yaml:"demo_duration"`
	Interactive      bool          `json:"interactive" yaml:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            0, // probe the terminal
		Height:           0,
		FrameRate:        200 * time.Millisecond,
		MaxGenerations:   0,
		Scenario:         "glider",
		RandomDensity:    0.3,
		OriginX:          5,
		OriginY:          5,
		StopOnExtinction: true,
		StagnationWindow: 4,
		DemoDuration:     15 * time.Second,
	}
}

// LoadConfig loads configuration from a YAML (.yaml, .yml) or JSON file on top
// of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports settings the driver cannot run with. Zero dimensions are
// allowed and mean "fit the terminal".
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative grid size %dx%d", c.Width, c.Height)
	}
	if err := model.ValidateDensity(c.RandomDensity); err != nil {
		return errors.Wrap(err, "[Validate] random_density")
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max_generations %d", c.MaxGenerations)
	}
	if c.StopOnStagnation && c.StagnationWindow < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_window %d must be positive", c.StagnationWindow)
	}
	if c.Demo && c.DemoDuration <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] demo_duration %v must be positive", c.DemoDuration)
	}
	if strings.TrimSpace(c.Scenario) == "" {
		return errors.Wrap(ErrInvalidConfig, "[Validate] empty scenario")
	}
	return nil
}
