package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// keep the value from earlier sources.
type jsonConfig struct {
	ServerURL      string `json:"server_url"`
	TimeoutSeconds int    `json:"request_timeout_seconds"`
	TokenFile      string `json:"token_file"`
}

// parseJSON overlays Config with values loaded from a JSON file whose path
// is given via -c or -config. Without the flag nothing is loaded. Read or
// unmarshal errors panic; the file was explicitly requested, so silently
// running on defaults would be worse.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.TimeoutSeconds) * time.Second
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
