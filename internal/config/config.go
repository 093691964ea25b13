// Package config loads client and sandbox settings from an optional .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mrfansi/xendit-go/internal/validation"
)

// Defaults
const (
	DefaultBaseURL        = "https://api.xendit.co"
	DefaultTimeout        = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultSandboxAddr    = ":4000"
	DefaultExpirySchedule = "@every 1m"
)

// Config stores all settings. Values come from the environment, optionally
// seeded from a .env file.
type Config struct {
	SecretKey             string        `mapstructure:"XENDIT_SECRET_KEY"`
	BaseURL               string        `mapstructure:"XENDIT_BASE_URL"`
	ForUserID             string        `mapstructure:"XENDIT_FOR_USER_ID"`
	Timeout               time.Duration `mapstructure:"XENDIT_TIMEOUT"`
	LogLevel              string        `mapstructure:"XENDIT_LOG_LEVEL"`
	Countries             string        `mapstructure:"XENDIT_COUNTRIES"`
	SandboxAddr           string        `mapstructure:"SANDBOX_ADDR"`
	SandboxSecretKey      string        `mapstructure:"SANDBOX_SECRET_KEY"`
	SandboxExpirySchedule string        `mapstructure:"SANDBOX_EXPIRY_SCHEDULE"`
}

var defaults = map[string]any{
	"XENDIT_SECRET_KEY":       "",
	"XENDIT_BASE_URL":         DefaultBaseURL,
	"XENDIT_FOR_USER_ID":      "",
	"XENDIT_TIMEOUT":          DefaultTimeout,
	"XENDIT_LOG_LEVEL":        DefaultLogLevel,
	"XENDIT_COUNTRIES":        "",
	"SANDBOX_ADDR":            DefaultSandboxAddr,
	"SANDBOX_SECRET_KEY":      "",
	"SANDBOX_EXPIRY_SCHEDULE": DefaultExpirySchedule,
}

// Load reads envPath into the process environment when it exists, then
// resolves every setting. An empty envPath means ".env"; only an explicitly
// named file is required to exist. Variables already set in the
// environment win over the file.
func Load(envPath string) (Config, error) {
	explicit := envPath != ""
	if !explicit {
		envPath = ".env"
	}
	if err := godotenv.Load(envPath); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return cfg, nil
}

// CountryTable returns the default country names extended by
// XENDIT_COUNTRIES, a comma separated list of Name=CC pairs
func (c Config) CountryTable() (validation.CountryTable, error) {
	names := validation.DefaultCountryNames()
	for _, pair := range strings.Split(c.Countries, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, code, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" || !validation.IsCountryCode(strings.TrimSpace(code)) {
			return validation.CountryTable{}, fmt.Errorf("invalid XENDIT_COUNTRIES entry %q: want Name=CC", pair)
		}
		names[strings.TrimSpace(name)] = strings.TrimSpace(code)
	}
	return validation.NewCountryTable(names), nil
}
