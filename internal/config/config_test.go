package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "Generated API", cfg.APITitle)
	assert.Equal(t, "1.0.0", cfg.APIVersion)
	assert.Equal(t, "http://localhost:3000/api", cfg.ServerURL)
	assert.Equal(t, OutputFormatJSON, cfg.OutputFormat)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 30*time.Second, cfg.LoadTimeout)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "dev", cfg.Version)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("MODELGEN_API_TITLE", "Library API")
	t.Setenv("MODELGEN_SERVER_URL", "https://api.example.com")
	t.Setenv("MODELGEN_OUTPUT_FORMAT", "YAML")
	t.Setenv("MODELGEN_PARALLEL", "false")
	t.Setenv("MODELGEN_LOAD_TIMEOUT", "5s")
	t.Setenv("MODELGEN_METRICS_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "Library API", cfg.APITitle)
	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, OutputFormatYAML, cfg.OutputFormat)
	assert.False(t, cfg.Parallel)
	assert.Equal(t, 5*time.Second, cfg.LoadTimeout)
	assert.True(t, cfg.MetricsEnabled)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"output format", "MODELGEN_OUTPUT_FORMAT", "xml"},
		{"timeout", "MODELGEN_LOAD_TIMEOUT", "soon"},
		{"parallel", "MODELGEN_PARALLEL", "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := NewConfig()
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestConfig_ToOpenAPIOptions(t *testing.T) {
	cfg := &Config{
		APITitle:          "Library API",
		APIVersion:        "2.0.0",
		APIDescription:    "Books",
		ServerURL:         "https://api.example.com",
		ServerDescription: "Production",
	}

	opts := cfg.ToOpenAPIOptions()

	assert.Equal(t, "Library API", opts.Title)
	assert.Equal(t, "2.0.0", opts.Version)
	assert.Equal(t, "Books", opts.Description)
	assert.Equal(t, "https://api.example.com", opts.ServerURL)
	assert.Equal(t, "Production", opts.ServerDescription)
	assert.Nil(t, opts.Now)
}
