package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 8000, cfg.Port)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("SMTP_HOST", "mailhog")
	t.Setenv("SMTP_PORT", "1025")
	t.Setenv("CONTACT_EMAIL", "me@example.com")
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
	t.Setenv("DATA_DIR", "/var/lib/portfolio")
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "octocat", cfg.GitHubUsername)
	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, "mailhog", cfg.SMTPHost)
	assert.Equal(t, 1025, cfg.SMTPPort)
	assert.Equal(t, "me@example.com", cfg.ContactEmail)
	assert.Equal(t, "postgres://localhost/portfolio", cfg.DatabaseURL)
	assert.Equal(t, "/var/lib/portfolio", cfg.DataDir)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "'PORT'",
		},
		{
			name:    "zero smtp port",
			mutate:  func(c *Config) { c.SMTPPort = 0 },
			wantErr: "'SMTP_PORT'",
		},
		{
			name:    "empty data dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantErr: "'DATA_DIR'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
