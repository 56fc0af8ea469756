// Package config assembles runtime settings for the booking client from
// defaults, a .env file, an optional JSON config file, and command-line
// flags, in that order of precedence.
package config

import (
	"path/filepath"
	"time"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/filex"
)

// Config holds runtime settings for the booking client.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - RequestTimeout: transport timeout applied to every call; there is no
//     retry policy on top of it.
//   - TokenFile: path of the JSON file holding the persisted token pair.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	TokenFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.TokenFile = filepath.Join(filex.DefaultDataDir("pcmaint"), "tokens.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env included), a JSON file (-c/-config), and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
