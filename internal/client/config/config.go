package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/bizadmin/internal/common"
)

// Config holds runtime settings for the bizadmin client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, e.g. "https://api.example.com/api".
//   - RequestTimeout: upper bound for one outbound call including its replay.
//   - SessionDSN: SQLite DSN of the persisted session store.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDSN     string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api"
	c.RequestTimeout = common.DefaultRequestTimeout
	c.SessionDSN = "session.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Load builds a Config from defaults, then the JSON file named by -c/-config,
// then environment variables, then command-line flags. Later sources take
// precedence over earlier ones.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, getenv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment. It panics
// on malformed input.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:], os.Getenv)
	if err != nil {
		panic(err)
	}
	return cfg
}
