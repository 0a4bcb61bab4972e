package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/genfit/internal/flagx"
	"github.com/dmitrijs2005/genfit/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; absent keys
// keep the value loaded earlier.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	DatabasePath        string         `json:"database_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogFormat           string         `json:"log_format"`
	LogLevel            string         `json:"log_level"`
	TermsURL            string         `json:"terms_url"`
	PrivacyURL          string         `json:"privacy_url"`
}

// parseJson overlays cfg with the JSON file given via -c or -config.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.TermsURL, jc.TermsURL)
	setString(&cfg.PrivacyURL, jc.PrivacyURL)
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}
