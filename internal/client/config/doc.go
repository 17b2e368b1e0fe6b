// Package config loads runtime configuration for the bizadmin client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: BIZADMIN_API_URL, BIZADMIN_SESSION_DSN, BIZADMIN_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds, default 50)
//	-s string   session database DSN
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.example.com/api",
//	  "request_timeout": "50s",
//	  "session_dsn": "session.db",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
package config
