package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; a missing file
// is not an error.
//
// Recognized variables:
//
//	PCMAINT_SERVER_URL       base URL of the backend
//	PCMAINT_TIMEOUT_SECONDS  request timeout in seconds
//	PCMAINT_TOKEN_FILE       path of the token storage file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PCMAINT_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PCMAINT_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("PCMAINT_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
}
