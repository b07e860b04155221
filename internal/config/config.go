package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	SaveDir       string
	GeminiAPIKey  string // optional; enables generated encounter flavor text
	MinMultiplier float64
	MaxMultiplier float64
}

// LoadConfig loads the configuration from environment variables. Everything
// is optional and defaults to sensible values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		SaveDir:       ".saves",
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		MinMultiplier: 1.3,
		MaxMultiplier: 1.8,
	}

	if dir := os.Getenv("SKETCH_SAVE_DIR"); dir != "" {
		cfg.SaveDir = dir
	}

	var err error
	if cfg.MinMultiplier, err = envFloat("SKETCH_MIN_MULTIPLIER", cfg.MinMultiplier); err != nil {
		return nil, err
	}
	if cfg.MaxMultiplier, err = envFloat("SKETCH_MAX_MULTIPLIER", cfg.MaxMultiplier); err != nil {
		return nil, err
	}
	if cfg.MinMultiplier > cfg.MaxMultiplier {
		return nil, fmt.Errorf("multiplier bounds inverted: [%v, %v]", cfg.MinMultiplier, cfg.MaxMultiplier)
	}

	return cfg, nil
}

func envFloat(name string, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", name, err)
	}
	return v, nil
}
