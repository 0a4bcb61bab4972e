package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "genfit.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "https://example.com/syarat-ketentuan.pdf", c.TermsURL)
	assert.Equal(t, "https://example.com/kebijakan-privasi.pdf", c.PrivacyURL)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseEnv(t *testing.T) {
	t.Setenv("GENFIT_SERVER_BASE_URL", "https://env.example/api")
	t.Setenv("GENFIT_REQUEST_TIMEOUT", "30s")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, ""))

	want := defaults()
	want.ServerBaseURL = "https://env.example/api"
	want.RequestTimeout = 30 * time.Second
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GENFIT_DATABASE_PATH=/tmp/dotenv.db\n"), 0o600))
	t.Setenv("GENFIT_DATABASE_PATH", "")
	t.Cleanup(func() { os.Unsetenv("GENFIT_DATABASE_PATH") })
	require.NoError(t, os.Unsetenv("GENFIT_DATABASE_PATH"))

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, path))
	assert.Equal(t, "/tmp/dotenv.db", cfg.DatabasePath)
}

func TestParseEnv_MissingDotenvIsFine(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseEnv(cfg, filepath.Join(t.TempDir(), "absent.env")))
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_base_url":       "https://json.example/api",
		"online_check_interval": "10s",
		"log_format":            "json",
	})

	t.Run("loads file from -config", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		want := defaults()
		want.ServerBaseURL = "https://json.example/api"
		want.OnlineCheckInterval = 10 * time.Second
		want.LogFormat = "json"
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, nil))
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		assert.Error(t, parseJson(defaults(), []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, parseJson(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://flag.example/api", "-d", "x.db", "-t", "3", "-i", "10", "-l", "json", "-v", "debug"},
			mutate: func(c *Config) {
				c.ServerBaseURL = "https://flag.example/api"
				c.DatabasePath = "x.db"
				c.RequestTimeout = 3 * time.Second
				c.OnlineCheckInterval = 10 * time.Second
				c.LogFormat = "json"
				c.LogLevel = "debug"
			},
		},
		{
			name:   "foreign flags ignored",
			args:   []string{"-c", "cfg.json", "-x", "-i", "7"},
			mutate: func(c *Config) { c.OnlineCheckInterval = 7 * time.Second },
		},
		{name: "bad interval", args: []string{"-i", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.mutate(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("GENFIT_SERVER_BASE_URL", "https://env.example/api")
	t.Setenv("GENFIT_LOG_LEVEL", "warn")
	path := writeTempJSON(t, map[string]any{
		"server_base_url": "https://json.example/api",
		"log_level":       "error",
	})

	cfg, err := Load([]string{"-c", path, "-a", "https://flag.example/api"})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example/api", cfg.ServerBaseURL)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	for _, u := range []string{"", "ftp://x", "localhost:1337", "http://"} {
		c := defaults()
		c.ServerBaseURL = u
		assert.Error(t, c.Validate(), u)
	}

	c := defaults()
	c.DatabasePath = ""
	assert.Error(t, c.Validate())
}
