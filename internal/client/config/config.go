package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/logging"
)

// Config holds runtime settings for the yoga studio client.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration

	// CheckInterval is how often a logged-in client re-validates its
	// token against the API.
	CheckInterval time.Duration

	LogBackend string
	LogLevel   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.CheckInterval = 30 * time.Second
	c.LogBackend = logging.BackendSlog
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process command line, in that order.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load is LoadConfig with an explicit argument list (without the program
// name).
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
