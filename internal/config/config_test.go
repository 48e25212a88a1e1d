package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:        "Valid production config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "Default JWT secret rejected",
			mutate:      func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" },
			expectError: true,
		},
		{
			name:        "Short JWT secret rejected",
			mutate:      func(c *Config) { c.JWTSecret = "short" },
			expectError: true,
		},
		{
			name:        "Default DB password rejected",
			mutate:      func(c *Config) { c.DBPassword = "password" },
			expectError: true,
		},
		{
			name:        "Empty DB password rejected",
			mutate:      func(c *Config) { c.DBPassword = "" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        "production",
				Port:       "8473",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-password",
				DBSSLMode:  "require",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateDevelopmentIsLenient(t *testing.T) {
	c := &Config{
		Env:        "development",
		Port:       "8473",
		JWTSecret:  "your-secret-key-change-in-production",
		DBPassword: "password",
	}
	assert.NoError(t, c.Validate())
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	assert.Error(t, (&Config{JWTSecret: "x"}).Validate())
	assert.Error(t, (&Config{Port: "8473"}).Validate())
}
