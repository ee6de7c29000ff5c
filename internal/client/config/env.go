package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAPIURL         = "YOGA_API_URL"
	EnvRequestTimeout = "YOGA_REQUEST_TIMEOUT"
	EnvCheckInterval  = "YOGA_CHECK_INTERVAL"
	EnvLogBackend     = "YOGA_LOG_BACKEND"
	EnvLogLevel       = "YOGA_LOG_LEVEL"
)

// parseEnv overlays cfg with the dotenv file named by -env and then with
// the process environment, which wins over the file. A missing dotenv
// file is skipped; an unreadable one or a bad duration panics.
func parseEnv(cfg *Config, args []string) {
	vars, err := godotenv.Read(flagx.EnvFile(args))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		vars = map[string]string{}
	}

	// empty values count as unset
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v := vars[key]
		return v, v != ""
	}

	if v, ok := lookup(EnvAPIURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvCheckInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.CheckInterval = d
	}
	if v, ok := lookup(EnvLogBackend); ok {
		cfg.LogBackend = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
}
