package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the account client.
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL" validate:"required,url"`
	StoragePath    string        `env:"STORAGE_PATH" validate:"required"`
	Language       string        `env:"LANGUAGE" validate:"oneof=en tr"`
	PageSize       int           `env:"PAGE_SIZE" validate:"min=1,max=100"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
	LogLevel       string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.StoragePath = "client.db"
	c.Language = "en"
	c.PageSize = 3
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// Validate reports the first invalid field, if any.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], nil)
}

// Load applies defaults, then overlays values from a JSON file, the
// environment and command-line flags; later sources take precedence.
// A nil environ means the process environment.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
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
