package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	CORSOrigin         string        `env:"CORS_ORIGIN" envDefault:"*"`
	SeedSamplePosts    bool          `env:"SEED_SAMPLE_POSTS" envDefault:"true"`
	CreateRateRPS      float64       `env:"CREATE_RATE_RPS" envDefault:"1"`
	CreateRateBurst    int           `env:"CREATE_RATE_BURST" envDefault:"5"`
	SessionCookie      string        `env:"SESSION_COOKIE" envDefault:"postpilot_session"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"24h"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogSQL             bool          `env:"LOG_SQL" envDefault:"false"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.CreateRateBurst < 1 {
		return Config{}, fmt.Errorf("load config: CREATE_RATE_BURST must be at least 1, got %d", cfg.CreateRateBurst)
	}
	return cfg, nil
}
