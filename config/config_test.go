package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidate will test function Validate against default and broken configurations
func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectError bool
	}{
		{
			name:   "Default configuration is valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:        "Empty graphql endpoint",
			mutate:      func(cfg *Config) { cfg.Github.GraphQLEndpoint = "" },
			expectError: true,
		},
		{
			name:        "Empty rest base url",
			mutate:      func(cfg *Config) { cfg.Github.RestBaseURL = "" },
			expectError: true,
		},
		{
			name:        "Default top set to zero",
			mutate:      func(cfg *Config) { cfg.Skills.DefaultTop = 0 },
			expectError: true,
		},
		{
			name:        "Max top above github limit",
			mutate:      func(cfg *Config) { cfg.Skills.MaxTop = 101 },
			expectError: true,
		},
		{
			name: "Default top above max top",
			mutate: func(cfg *Config) {
				cfg.Skills.DefaultTop = 50
				cfg.Skills.MaxTop = 10
			},
			expectError: true,
		},
		{
			name:        "No languages per repository",
			mutate:      func(cfg *Config) { cfg.Skills.LanguagesPerRepository = 0 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefault()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestApplyEnvOverrides checks environment variables win over file and defaults
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("GITHUB_GRAPHQL_ENDPOINT", "https://github.example.com/api/graphql")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := GetDefault()
	cfg.Github.Token = "file-token"

	applyEnvOverrides(cfg)

	assert.Equal(t, "env-token", cfg.Github.Token)
	assert.Equal(t, "https://github.example.com/api/graphql", cfg.Github.GraphQLEndpoint)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

// TestApplyEnvOverridesKeepsValues checks unset variables don't erase configured values
func TestApplyEnvOverridesKeepsValues(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_GRAPHQL_ENDPOINT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := GetDefault()
	cfg.Github.Token = "file-token"

	applyEnvOverrides(cfg)

	assert.Equal(t, "file-token", cfg.Github.Token)
	assert.Equal(t, GetDefault().Github.GraphQLEndpoint, cfg.Github.GraphQLEndpoint)
	assert.Equal(t, "info", cfg.Logs.Level)
}
