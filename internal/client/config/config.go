package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the nutritrack client.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - DatabasePath: SQLite file holding the local session.
//   - RequestTimeout: upper bound for a single API call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL      string        `env:"SERVER_URL"`
	DatabasePath   string        `env:"DB_PATH"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabasePath = "nutritrack.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg, os.Args[1:])
	return cfg
}
