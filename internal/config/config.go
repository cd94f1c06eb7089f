package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"

	"github.com/modelgen/modelgen/internal/openapi"
)

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// UnmarshalText accepts json or yaml, case-insensitively
func (f *OutputFormat) UnmarshalText(text []byte) error {
	switch v := OutputFormat(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case OutputFormatJSON, OutputFormatYAML:
		*f = v
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be json or yaml", string(text))
	}
}

// Config holds the application configuration
type Config struct {
	// OpenAPI document boilerplate
	APITitle          string `env:"API_TITLE" envDefault:"Generated API"`
	APIVersion        string `env:"API_VERSION" envDefault:"1.0.0"`
	APIDescription    string `env:"API_DESCRIPTION" envDefault:"API generated from a natural language data description"`
	ServerURL         string `env:"SERVER_URL" envDefault:"http://localhost:3000/api"`
	ServerDescription string `env:"SERVER_DESCRIPTION" envDefault:"Development server"`

	OutputFormat   OutputFormat  `env:"OUTPUT_FORMAT" envDefault:"json"`
	Parallel       bool          `env:"PARALLEL" envDefault:"true"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT" envDefault:"30s"`
	MetricsEnabled bool          `env:"METRICS_ENABLED" envDefault:"false"`
	Version        string        `env:"VERSION" envDefault:"dev"`
}

// NewConfig reads the configuration from MODELGEN_* environment variables
func NewConfig() (*Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "MODELGEN_",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

// ToOpenAPIOptions converts the config to OpenAPI generator options
func (c *Config) ToOpenAPIOptions() openapi.Options {
	return openapi.Options{
		Title:             c.APITitle,
		Version:           c.APIVersion,
		Description:       c.APIDescription,
		ServerURL:         c.ServerURL,
		ServerDescription: c.ServerDescription,
	}
}
