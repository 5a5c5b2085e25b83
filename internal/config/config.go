package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "plancal.yaml"

// TokenEnv is the environment variable holding the ESV API access token.
const TokenEnv = "ESV_API_TOKEN"

type Config struct {
	Year             int    `yaml:"year"`
	Dialect          string `yaml:"dialect"`
	Translation      string `yaml:"translation"`
	PassageURL       string `yaml:"passage-url"`
	ESVURL           string `yaml:"esv-api-url"`
	FetchTimeout     int    `yaml:"fetch-timeout"`
	FetchConcurrency int    `yaml:"fetch-concurrency"`
}

// Default returns a validated config for the current year.
func Default() *Config {
	cfg := &Config{Year: time.Now().Year()}
	_ = Validate(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides are command-line values that take precedence over the file.
type Overrides struct {
	Year    int
	Dialect string
}

// Resolve builds the effective config. If path is empty the default file is used
// when present. An explicitly named file must exist. The year falls back to the
// current year when neither the file nor the overrides set one.
func Resolve(path string, o Overrides) (*Config, error) {
	cfg := &Config{}
	switch {
	case path != "":
		c, err := read(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		c, err := read(DefaultFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if c != nil {
			cfg = c
		}
	}

	if o.Year != 0 {
		cfg.Year = o.Year
	}
	if o.Dialect != "" {
		cfg.Dialect = o.Dialect
	}
	if cfg.Year == 0 {
		cfg.Year = time.Now().Year()
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Timeout returns the per-fetch timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// LoadEnv loads the given .env files into the process environment, skipping any
// that do not exist. Variables already set are not overridden.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Token returns the ESV access token from the environment.
func Token() string {
	return os.Getenv(TokenEnv)
}
