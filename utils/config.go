package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	MaxWidth       int           `json:"max_width"`
	MaxHeight      int           `json:"max_height"`
	FrameRate      time.Duration `json:"frame_rate"`
	Pattern        string        `json:"pattern"`
	MaxGenerations int           `json:"max_generations"` // 0 runs until interrupted
	UseParallel    bool          `json:"use_parallel"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	RandomDensity  float64       `json:"random_density"`
	RandomSeed     int64         `json:"random_seed"` // 0 seeds from the clock
	Plain          bool          `json:"plain"`
	Debug          bool          `json:"debug"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxWidth:       30,
		MaxHeight:      30,
		FrameRate:      150 * time.Millisecond,
		Pattern:        "blinker",
		MaxGenerations: 0,
		UseParallel:    false,
		UseMemoryPool:  true,
		RandomDensity:  0.15,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the game loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.MaxWidth <= 0 || c.MaxHeight <= 0:
		return errors.Errorf("grid limits must be positive, got %dx%d", c.MaxWidth, c.MaxHeight)
	case c.FrameRate < 0:
		return errors.Errorf("frame rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("max generations must not be negative, got %d", c.MaxGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random density must be within [0, 1], got %v", c.RandomDensity)
	}
	return nil
}
