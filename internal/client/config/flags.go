package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/flagx"
)

// parseFlags populates cfg from the -a, -t, -i and -log flags in args.
// Other flags are filtered out with flagx.FilterArgs so they never reach
// this flag set. Bad values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-i", "-log"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.CheckInterval.Seconds()), "token check interval (in seconds)")
	fs.StringVar(&cfg.LogBackend, "log", cfg.LogBackend, "log backend: slog or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "i":
			cfg.CheckInterval = time.Duration(*interval) * time.Second
		}
	})
}
