package config

import (
	"fmt"
	"net/url"

	"github.com/jorge-barreto/plancal/internal/plan"
)

const (
	minYear = 1900
	maxYear = 2200
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Year == 0 {
		return fmt.Errorf("config: 'year' is required")
	}
	if cfg.Year < minYear || cfg.Year > maxYear {
		return fmt.Errorf("config: year %d out of range (%d-%d)", cfg.Year, minYear, maxYear)
	}

	d, err := plan.ParseDialect(cfg.Dialect)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Dialect = string(d)

	if cfg.Translation == "" {
		cfg.Translation = plan.DefaultTranslation
	}
	if cfg.PassageURL == "" {
		cfg.PassageURL = plan.DefaultPassageURL
	}
	if cfg.ESVURL == "" {
		cfg.ESVURL = plan.DefaultESVURL
	}
	for name, raw := range map[string]string{"passage-url": cfg.PassageURL, "esv-api-url": cfg.ESVURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: %s %q is not an absolute URL", name, raw)
		}
	}

	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("config: fetch-timeout must be >= 0")
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 10
	}
	if cfg.FetchConcurrency < 0 {
		return fmt.Errorf("config: fetch-concurrency must be >= 0")
	}
	if cfg.FetchConcurrency == 0 {
		cfg.FetchConcurrency = 4
	}
	return nil
}

// Links returns the URL builders configured by cfg.
func (c *Config) Links() plan.Links {
	return plan.Links{
		PassageURL:  c.PassageURL,
		Translation: c.Translation,
		ESVURL:      c.ESVURL,
	}
}
