package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParse_defaults(t *testing.T) {
	t.Setenv("POSTGRES_CONN_STR", "postgres://localhost/guess_or_mess")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("error parsing config: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("unexpected cache ttl: %v", cfg.CacheTTL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("unexpected request timeout: %v", cfg.RequestTimeout)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("unexpected fetch timeout: %v", cfg.FetchTimeout)
	}
	if !reflect.DeepEqual([]string{"*"}, cfg.AllowedOrigins) {
		t.Errorf("unexpected allowed origins: %v", cfg.AllowedOrigins)
	}
	if cfg.UseRemote() || cfg.UseCache() {
		t.Error("expected neither the remote api nor the cache to be used")
	}
}

func TestParse_overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LEADERBOARD_API_URL", "https://games.example.com")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("error parsing config: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if !cfg.UseRemote() || !cfg.UseCache() {
		t.Error("expected both the remote api and the cache to be used")
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("unexpected cache ttl: %v", cfg.CacheTTL)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("unexpected allowed origins: %v", cfg.AllowedOrigins)
	}
}

func TestParse_errors(t *testing.T) {
	tests := map[string]struct {
		env map[string]string
		msg string
	}{
		"no source":   {env: map[string]string{}, msg: "either POSTGRES_CONN_STR or LEADERBOARD_API_URL must be set"},
		"bad port":    {env: map[string]string{"POSTGRES_CONN_STR": "x", "PORT": "abc"}, msg: "error parsing config"},
		"port range":  {env: map[string]string{"POSTGRES_CONN_STR": "x", "PORT": "70000"}, msg: "invalid port number: 70000"},
		"bad timeout": {env: map[string]string{"POSTGRES_CONN_STR": "x", "FETCH_TIMEOUT": "0s"}, msg: "FETCH_TIMEOUT must be positive"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// Clear anything set by the environment running the tests.
			for _, k := range []string{"POSTGRES_CONN_STR", "LEADERBOARD_API_URL", "PORT", "FETCH_TIMEOUT"} {
				t.Setenv(k, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			if err == nil {
				t.Fatal("expected an error, got nil instead")
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error was not what was expected - actual: %v", err)
			}
		})
	}
}
