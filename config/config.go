package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// Where leaderboards come from. When LeaderboardAPIURL is set the remote
	// api is used, otherwise the postgres database.
	PostgresConnString string `env:"POSTGRES_CONN_STR"`
	LeaderboardAPIURL  string `env:"LEADERBOARD_API_URL"`

	// Optional redis cache in front of the leaderboard source.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads the .env file, if there is one, and then parses the config from
// the environment.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Parse()
}

func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PostgresConnString == "" && c.LeaderboardAPIURL == "" {
		return errors.New("either POSTGRES_CONN_STR or LEADERBOARD_API_URL must be set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", c.RequestTimeout)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %v", c.FetchTimeout)
	}
	return nil
}

func (c *Config) UseRemote() bool {
	return c.LeaderboardAPIURL != ""
}

func (c *Config) UseCache() bool {
	return c.RedisURL != ""
}
