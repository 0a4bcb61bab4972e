package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the Genfit client.
type Config struct {
	ServerBaseURL       string
	DatabasePath        string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogFormat           string
	LogLevel            string
	TermsURL            string
	PrivacyURL          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:1337/api"
	c.DatabasePath = "genfit.db"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.TermsURL = "https://example.com/syarat-ketentuan.pdf"
	c.PrivacyURL = "https://example.com/kebijakan-privasi.pdf"
}

// Load builds a Config from defaults, the environment, the JSON file named in
// args and finally the flags in args. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerBaseURL)
	if err != nil {
		return fmt.Errorf("server base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server base url %q: want http(s)://host[/path]", c.ServerBaseURL)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.RequestTimeout < 0 || c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
