package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/bizadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-s string   session database DSN
//	-l string   log level
//
// Only these flags are looked at; anything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDSN, "s", cfg.SessionDSN, "session database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *timeout <= 0 {
		return fmt.Errorf("parse flags: request timeout must be positive, got %d", *timeout)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
