package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the startup configuration shared by the front end and the
// headless tools. Every field can be set from the environment.
type Config struct {
	Difficulty   int     `env:"FOOTPONG_DIFFICULTY" envDefault:"3"`
	SoundEnabled bool    `env:"FOOTPONG_SOUND"      envDefault:"true"`
	Volume       float64 `env:"FOOTPONG_VOLUME"     envDefault:"1"`
	Seed         int64   `env:"FOOTPONG_SEED"` // 0 picks a time-based seed
	Scale        float64 `env:"FOOTPONG_SCALE"      envDefault:"1"`
}

// DefaultConfig matches the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Difficulty:   DefaultDifficulty,
		SoundEnabled: true,
		Volume:       1,
		Scale:        1,
	}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.Normalized(), nil
}

// LoadConfigFrom reads the configuration from the given variables instead of
// the process environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.Normalized(), nil
}

// Normalized clamps every field into its valid range.
func (c Config) Normalized() Config {
	c.Difficulty = clampDifficulty(c.Difficulty)
	c.Volume = clamp(c.Volume, 0, 1)
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return c
}

func clampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
