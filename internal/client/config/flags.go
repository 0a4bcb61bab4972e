package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/genfit/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// handled here are parsed; the rest of args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-i", "-l", "-v"})

	fs := flag.NewFlagSet("genfit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (text|json)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["t"] {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	if set["i"] {
		cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	}
	return nil
}
