package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"golang.org/x/text/language"
)

// Malformed-row policies.
const (
	MalformedSkip = "skip"
	MalformedFail = "fail"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	CatalogURL      string
	CatalogTimeout  time.Duration
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Shaping configuration.
	CollationLocale language.Tag
	MalformedRows   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	catalogTimeoutStr := sharedcfg.EnvOrDefault("CATALOG_TIMEOUT", "10s")
	catalogTimeout, err := time.ParseDuration(catalogTimeoutStr)
	if err != nil || catalogTimeout <= 0 {
		return nil, errors.New("invalid CATALOG_TIMEOUT")
	}

	locale, err := language.Parse(sharedcfg.EnvOrDefault("COLLATION_LOCALE", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid COLLATION_LOCALE: %w", err)
	}

	cfg := &Config{
		CatalogURL:      sharedcfg.EnvOrDefault("CATALOG_URL", "https://swapi.dev/api/planets/"),
		CatalogTimeout:  catalogTimeout,
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CollationLocale: locale,
		MalformedRows:   sharedcfg.EnvOrDefault("MALFORMED_ROWS", MalformedSkip),
	}

	if err := validateCatalogURL(cfg.CatalogURL); err != nil {
		return nil, err
	}
	if cfg.MalformedRows != MalformedSkip && cfg.MalformedRows != MalformedFail {
		return nil, fmt.Errorf("MALFORMED_ROWS must be %q or %q", MalformedSkip, MalformedFail)
	}

	return cfg, nil
}

func validateCatalogURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid CATALOG_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("CATALOG_URL must be an absolute http(s) URL")
	}
	return nil
}
