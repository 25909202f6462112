package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_BDS_LIST", "https://gateway.example.com/list?page={page}")
	t.Setenv("API_BDS_DETAILS", "https://gateway.example.com/detail/{job_id}")
	t.Setenv("APPLY_URL_BASE", "https://jobs.example.com/apply/{job_id}")
	t.Setenv("BLOG_ID", "12345")
	t.Setenv("BLOGGER_TOKEN_JSON", `{"refresh_token":"r"}`)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Bdjobs.MaxPages)
	assert.Equal(t, "gmail.com", cfg.TrustedEmailDomain)
	assert.Equal(t, 10*time.Second, cfg.OperationDelay)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_PAGES", "2")
	t.Setenv("OPERATION_DELAY_SECONDS", "0")
	t.Setenv("TRUSTED_EMAIL_DOMAIN", "example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Bdjobs.MaxPages)
	assert.Equal(t, time.Duration(0), cfg.OperationDelay)
	assert.Equal(t, "example.org", cfg.TrustedEmailDomain)
}

func TestLoadMissingVars(t *testing.T) {
	setRequired(t)
	t.Setenv("BLOG_ID", "")
	t.Setenv("BLOGGER_TOKEN_JSON", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOG_ID")
	assert.Contains(t, err.Error(), "BLOGGER_TOKEN_JSON")
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_PAGES", "zero")

	_, err := Load()
	assert.Error(t, err)
}
