package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run of the game
type Config struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Rule           string  `json:"rule"`
	Wrap           bool    `json:"wrap"`
	Pace           float64 `json:"pace"`
	File           string  `json:"file"`
	ShowGeneration bool    `json:"show_generation"`
	Autorun        bool    `json:"autorun"`
	MaxGenerations int     `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		Rule:           "B3/S23",
		Wrap:           true,
		Pace:           0.15,
		ShowGeneration: false,
		Autorun:        false,
		MaxGenerations: 1000,
	}
}

// FrameDelay returns the pace as a duration between ticks
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.Pace * float64(time.Second))
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
