// Package config loads runtime configuration for the yoga studio client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: a dotenv file (-env, default ".env", ignored when
//     missing) overlaid by the process environment.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the REST API
//	-t int        request timeout (seconds)
//	-i int        token check interval (seconds)
//	-log string   log backend, "slog" or "zap"
//
// Environment variables
//
//	YOGA_API_URL, YOGA_REQUEST_TIMEOUT and YOGA_CHECK_INTERVAL (Go
//	durations such as "5s"), YOGA_LOG_BACKEND, YOGA_LOG_LEVEL
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "check_interval": "30s",
//	  "log_backend": "zap",
//	  "log_level": "debug"
//	}
//
// Malformed values in any source panic at startup.
package config
