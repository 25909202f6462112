package bdjobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout = 20 * time.Second

	// The gateway rejects requests that do not look like the site's own
	// frontend.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	defaultHost      = "gateway.bdjobs.com"
	refererHeader    = "https://www.bdjobs.com/"

	pagePlaceholder = "{page}"
	keyPlaceholder  = "{job_id}"
)

// ErrNoMorePages signals that pagination ran past the last listing page. The
// gateway reports this as a 400/404 rather than an empty result.
var ErrNoMorePages = errors.New("bdjobs: no more pages")

// NewClient instantiates a bdjobs gateway API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.ListURLTemplate == "" || cfg.DetailURLTemplate == "" {
		return nil, fmt.Errorf("bdjobs: list and detail URL templates are required")
	}
	if !strings.Contains(cfg.ListURLTemplate, pagePlaceholder) {
		return nil, fmt.Errorf("bdjobs: list URL template must contain %s", pagePlaceholder)
	}
	if !strings.Contains(cfg.DetailURLTemplate, keyPlaceholder) {
		return nil, fmt.Errorf("bdjobs: detail URL template must contain %s", keyPlaceholder)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	host := cfg.Host
	if host == "" {
		host = defaultHost
	}

	return &Client{
		listURL:    cfg.ListURLTemplate,
		detailURL:  cfg.DetailURLTemplate,
		httpClient: httpClient,
		userAgent:  userAgent,
		host:       host,
	}, nil
}

// ListPage fetches one page of the listing feed. A 400 or 404 response maps
// to ErrNoMorePages; other failures are returned as errors.
func (c *Client) ListPage(ctx context.Context, page int) ([]ListItem, error) {
	if c == nil {
		return nil, fmt.Errorf("bdjobs: client is nil")
	}

	u := strings.Replace(c.listURL, pagePlaceholder, strconv.Itoa(page), 1)

	var payload listResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// Detail fetches the full record for a listing key. An empty data envelope
// yields (nil, nil): the listing exists but has no detail payload.
func (c *Client) Detail(ctx context.Context, key string) (*Detail, error) {
	if c == nil {
		return nil, fmt.Errorf("bdjobs: client is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("bdjobs: listing key is required")
	}

	u := strings.Replace(c.detailURL, keyPlaceholder, key, 1)

	var payload detailResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, nil
	}

	detail := payload.Data[0]
	return &detail, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("bdjobs: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Referer", refererHeader)
	// A Host header key is ignored by net/http; the override goes on the
	// request itself.
	req.Host = c.host

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bdjobs: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return ErrNoMorePages
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bdjobs: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("bdjobs: decode response: %w", err)
	}
	return nil
}
