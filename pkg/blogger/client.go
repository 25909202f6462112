package blogger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/blogger/v3"
	"google.golang.org/api/option"
)

type Client struct {
	service *blogger.Service
}

type Config struct {
	// TokenJSON is an authorized-user token in the shape the Google OAuth
	// quickstart flow writes ("token"/"refresh_token"/"expiry").
	TokenJSON []byte
	// ClientSecretJSON is the OAuth client secret file. Optional when the
	// token JSON embeds client_id and client_secret.
	ClientSecretJSON []byte
}

// authorizedUser mirrors the token file written by the interactive
// authorization flow.
type authorizedUser struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	TokenURI     string `json:"token_uri"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Expiry       string `json:"expiry"`
}

// NewClient builds an authenticated Blogger v3 service. Token refresh is
// handled by the token source, so an expired access token is fine as long as
// a refresh token is present.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if len(cfg.TokenJSON) == 0 {
		return nil, fmt.Errorf("blogger: authorized user token JSON is required")
	}

	var user authorizedUser
	if err := json.Unmarshal(cfg.TokenJSON, &user); err != nil {
		return nil, fmt.Errorf("blogger: parse token JSON: %w", err)
	}
	if user.Token == "" && user.RefreshToken == "" {
		return nil, fmt.Errorf("blogger: token JSON carries no usable credentials")
	}

	oauthCfg, err := oauthConfig(cfg.ClientSecretJSON, user)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken:  user.Token,
		RefreshToken: user.RefreshToken,
		Expiry:       parseExpiry(user.Expiry),
	}

	service, err := blogger.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("blogger: failed to create service: %w", err)
	}

	return &Client{service: service}, nil
}

func (c *Client) Service() *blogger.Service {
	return c.service
}

func oauthConfig(clientSecretJSON []byte, user authorizedUser) (*oauth2.Config, error) {
	if len(clientSecretJSON) > 0 {
		cfg, err := google.ConfigFromJSON(clientSecretJSON, blogger.BloggerScope)
		if err != nil {
			return nil, fmt.Errorf("blogger: parse client secret: %w", err)
		}
		return cfg, nil
	}

	if user.ClientID == "" || user.ClientSecret == "" {
		return nil, fmt.Errorf("blogger: client secret JSON or embedded client credentials required")
	}
	return &oauth2.Config{
		ClientID:     user.ClientID,
		ClientSecret: user.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{blogger.BloggerScope},
	}, nil
}

// parseExpiry reads the expiry timestamp from the token file. An absent or
// unreadable value is treated as already expired so the token source refreshes
// up front instead of sending a stale access token.
func parseExpiry(raw string) time.Time {
	if raw == "" {
		return time.Now().Add(-time.Minute)
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Now().Add(-time.Minute)
}
