package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/yogastudio/internal/flagx"
	"github.com/dmitrijs2005/yogastudio/internal/timex"
)

// JsonConfig is the on-disk form of Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CheckInterval  timex.Duration `json:"check_interval"`
	LogBackend     string         `json:"log_backend"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the fields present in the file named by
// -c/-config. Absent fields keep their current value. Read or decode
// errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CheckInterval.Duration != 0 {
		cfg.CheckInterval = jc.CheckInterval.Duration
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
