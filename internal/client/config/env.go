package config

// Environment variables recognised by parseEnv.
const (
	EnvAPIBaseURL = "BIZADMIN_API_URL"
	EnvSessionDSN = "BIZADMIN_SESSION_DSN"
	EnvLogLevel   = "BIZADMIN_LOG_LEVEL"
)

func parseEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(EnvSessionDSN); v != "" {
		cfg.SessionDSN = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
