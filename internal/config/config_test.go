package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8080/graphql", cfg.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Empty(t, cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BANKTUI_ENDPOINT", "https://bank.example.com/api/graphql")
	t.Setenv("BANKTUI_TIMEOUT", "30s")
	t.Setenv("BANKTUI_LOG_FILE", "/tmp/banktui.log")

	cfg := Load()

	assert.Equal(t, "https://bank.example.com/api/graphql", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/banktui.log", cfg.LogFile)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("BANKTUI_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "ftp scheme", mutate: func(c *Config) { c.Endpoint = "ftp://host/graphql" }, wantErr: true},
		{name: "missing host", mutate: func(c *Config) { c.Endpoint = "http:///graphql" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
