package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bizadmin/internal/flagx"
	"github.com/dmitrijs2005/bizadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either "50s" or integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDSN     string         `json:"session_dsn"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with the non-empty fields of the file named by -c or
// -config. Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDSN != "" {
		cfg.SessionDSN = jc.SessionDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}
