package hack

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/caarlos0/env/v11"
)

// Config holds the tunables, read from the host's environment.
type Config struct {
	Trigger       string  `env:"PWNHOOK_TRIGGER"        envDefault:"!hack"`
	LogLevel      string  `env:"PWNHOOK_LOG_LEVEL"      envDefault:"info"`
	WalkingSpeed  float32 `env:"PWNHOOK_WALKING_SPEED"  envDefault:"1000"`
	JumpSpeed     float32 `env:"PWNHOOK_JUMP_SPEED"     envDefault:"1000"`
	JumpHoldTime  float32 `env:"PWNHOOK_JUMP_HOLD_TIME" envDefault:"1000"`
	FloatVelocity float32 `env:"PWNHOOK_FLOAT_VELOCITY" envDefault:"3"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Trigger:       "!hack",
		LogLevel:      "info",
		WalkingSpeed:  1000,
		JumpSpeed:     1000,
		JumpHoldTime:  1000,
		FloatVelocity: 3,
	}
}

// LoadConfig parses the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Trigger == "" || strings.ContainsRune(cfg.Trigger, ' ') {
		return Config{}, fmt.Errorf("invalid trigger %q", cfg.Trigger)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the configured log level.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
