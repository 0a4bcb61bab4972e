package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment variables. Unset variables stay
// zero and leave the current value alone.
type envConfig struct {
	ServerBaseURL       string        `env:"GENFIT_SERVER_BASE_URL"`
	DatabasePath        string        `env:"GENFIT_DATABASE_PATH"`
	RequestTimeout      time.Duration `env:"GENFIT_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"GENFIT_ONLINE_CHECK_INTERVAL"`
	LogFormat           string        `env:"GENFIT_LOG_FORMAT"`
	LogLevel            string        `env:"GENFIT_LOG_LEVEL"`
	TermsURL            string        `env:"GENFIT_TERMS_URL"`
	PrivacyURL          string        `env:"GENFIT_PRIVACY_URL"`
}

// parseEnv loads dotenvPath into the process environment (a missing file is
// fine) and overlays GENFIT_* variables onto cfg.
func parseEnv(cfg *Config, dotenvPath string) error {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	setString(&cfg.ServerBaseURL, ec.ServerBaseURL)
	setString(&cfg.DatabasePath, ec.DatabasePath)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.TermsURL, ec.TermsURL)
	setString(&cfg.PrivacyURL, ec.PrivacyURL)
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.OnlineCheckInterval != 0 {
		cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
