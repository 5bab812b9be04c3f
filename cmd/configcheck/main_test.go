package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dwextract/internal/config"
)

func TestDescribePort(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		expected string
	}{
		{
			name:     "explicit port",
			cfg:      config.DatabaseConfig{Driver: "sqlserver", Port: 14330},
			expected: "14330",
		},
		{
			name:     "sqlserver default",
			cfg:      config.DatabaseConfig{Driver: "sqlserver"},
			expected: "1433 (driver default)",
		},
		{
			name:     "mysql default",
			cfg:      config.DatabaseConfig{Driver: "mysql"},
			expected: "3306 (driver default)",
		},
		{
			name:     "postgres default",
			cfg:      config.DatabaseConfig{Driver: "postgres"},
			expected: "5432 (driver default)",
		},
		{
			name:     "unregistered driver",
			cfg:      config.DatabaseConfig{Driver: "oracle"},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describePort(tt.cfg))
		})
	}
}

func TestDescribePassword(t *testing.T) {
	t.Run("no env var configured", func(t *testing.T) {
		cfg := config.DatabaseConfig{}
		assert.Equal(t, "(none configured)", describePassword(cfg))
	})

	t.Run("env var unset", func(t *testing.T) {
		cfg := config.DatabaseConfig{PasswordEnvVar: "DWEXTRACT_TEST_PW_MISSING"}
		assert.Equal(t, "DWEXTRACT_TEST_PW_MISSING (NOT SET)", describePassword(cfg))
	})

	t.Run("env var set", func(t *testing.T) {
		t.Setenv("DWEXTRACT_TEST_PW", "s3cret")
		cfg := config.DatabaseConfig{PasswordEnvVar: "DWEXTRACT_TEST_PW"}

		// The description names the variable, never the value
		desc := describePassword(cfg)
		assert.Equal(t, "DWEXTRACT_TEST_PW (set)", desc)
		assert.NotContains(t, desc, "s3cret")
	})
}
