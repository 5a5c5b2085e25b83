package config

import (
	"strings"
	"testing"
)

func minimalConfig() *Config {
	return &Config{Year: 2022}
}

func TestValidate_YearRequired(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'year' is required") {
		t.Fatalf("expected year required error, got %v", err)
	}
}

func TestValidate_YearOutOfRange(t *testing.T) {
	cfg := &Config{Year: 22}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := minimalConfig()
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Dialect != "weekly" {
		t.Fatalf("Dialect = %q, want weekly", cfg.Dialect)
	}
	if cfg.Translation != "ESV" {
		t.Fatalf("Translation = %q, want ESV", cfg.Translation)
	}
	if cfg.PassageURL != "https://www.biblegateway.com/passage/" {
		t.Fatalf("PassageURL = %q", cfg.PassageURL)
	}
	if cfg.ESVURL != "https://api.esv.org/v3/passage/text/" {
		t.Fatalf("ESVURL = %q", cfg.ESVURL)
	}
	if cfg.FetchTimeout != 10 {
		t.Fatalf("FetchTimeout = %d, want 10", cfg.FetchTimeout)
	}
	if cfg.FetchConcurrency != 4 {
		t.Fatalf("FetchConcurrency = %d, want 4", cfg.FetchConcurrency)
	}
}

func TestValidate_UnknownDialect(t *testing.T) {
	cfg := minimalConfig()
	cfg.Dialect = "columns"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "unknown dialect") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_FlatDialect(t *testing.T) {
	cfg := minimalConfig()
	cfg.Dialect = "flat"
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Dialect != "flat" {
		t.Fatalf("Dialect = %q", cfg.Dialect)
	}
}

func TestValidate_RelativeURL(t *testing.T) {
	cfg := minimalConfig()
	cfg.ESVURL = "/v3/passage/text/"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "esv-api-url") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := minimalConfig()
	cfg.FetchTimeout = -1
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "fetch-timeout") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := minimalConfig()
	cfg.FetchConcurrency = -2
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "fetch-concurrency") {
		t.Fatalf("got %v", err)
	}
}

func TestLinks(t *testing.T) {
	cfg := minimalConfig()
	cfg.Translation = "NIV"
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	got := cfg.Links().Passage("John", "3", "16")
	if !strings.HasSuffix(got, "&version=NIV") {
		t.Fatalf("got %q", got)
	}
}
