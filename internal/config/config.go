package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime settings for a sync run
type Config struct {
	LogLevel string

	Bdjobs struct {
		ListURLTemplate   string // contains {page}
		DetailURLTemplate string // contains {job_id}
		ApplyURLTemplate  string // contains {job_id}
		MaxPages          int
	}

	Blogger struct {
		BlogID           string
		TokenJSON        string
		ClientSecretJSON string
	}

	TrustedEmailDomain string
	OperationDelay     time.Duration // minimum spacing between Blogger requests
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:           "info",
		TrustedEmailDomain: "gmail.com",
		OperationDelay:     10 * time.Second,
	}
	cfg.Bdjobs.MaxPages = 4

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.Bdjobs.ListURLTemplate = os.Getenv("API_BDS_LIST")
	cfg.Bdjobs.DetailURLTemplate = os.Getenv("API_BDS_DETAILS")
	cfg.Bdjobs.ApplyURLTemplate = os.Getenv("APPLY_URL_BASE")

	cfg.Blogger.BlogID = os.Getenv("BLOG_ID")
	cfg.Blogger.TokenJSON = os.Getenv("BLOGGER_TOKEN_JSON")
	cfg.Blogger.ClientSecretJSON = os.Getenv("CLIENT_SECRET_JSON")

	if v := os.Getenv("TRUSTED_EMAIL_DOMAIN"); v != "" {
		cfg.TrustedEmailDomain = v
	}

	if v := os.Getenv("MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid MAX_PAGES %q", v)
		}
		cfg.Bdjobs.MaxPages = n
	}

	if v := os.Getenv("OPERATION_DELAY_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid OPERATION_DELAY_SECONDS %q", v)
		}
		cfg.OperationDelay = time.Duration(n) * time.Second
	}

	var missingVars []string

	if cfg.Bdjobs.ListURLTemplate == "" {
		missingVars = append(missingVars, "API_BDS_LIST")
	}

	if cfg.Bdjobs.DetailURLTemplate == "" {
		missingVars = append(missingVars, "API_BDS_DETAILS")
	}

	if cfg.Bdjobs.ApplyURLTemplate == "" {
		missingVars = append(missingVars, "APPLY_URL_BASE")
	}

	if cfg.Blogger.BlogID == "" {
		missingVars = append(missingVars, "BLOG_ID")
	}

	if cfg.Blogger.TokenJSON == "" {
		missingVars = append(missingVars, "BLOGGER_TOKEN_JSON")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
