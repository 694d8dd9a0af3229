// Package unfurl fetches page preview metadata (title, description,
// image) for a URL from a microlink-style unfurling service.
//
// Failures here are always non-fatal to the caller: a link whose metadata
// cannot be fetched is still saved, with the URL standing in for the
// title. There is no retry.
package unfurl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public microlink endpoint.
const DefaultBaseURL = "https://api.microlink.io"

// maxResponseBytes caps how much of the unfurler's response is read.
// Metadata payloads are small; anything larger is misbehaving.
const maxResponseBytes = 1 << 20

// Metadata is the preview data for one URL. Any or all fields may be
// empty — the service reports what it found, nothing is required.
type Metadata struct {
	Title       string
	Description string
	ImageURL    string
}

// Client calls the unfurling service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given service base URL. An empty
// baseURL selects the public microlink endpoint.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch requests metadata for target. Every field of the response is
// optional, so the body is read with gjson rather than a rigid struct:
// missing paths simply yield empty strings.
func (c *Client) Fetch(ctx context.Context, target string) (Metadata, error) {
	reqURL := c.baseURL + "/?url=" + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("unfurl.Fetch: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("unfurl.Fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("unfurl.Fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Metadata{}, fmt.Errorf("unfurl.Fetch: read body: %w", err)
	}

	if gjson.GetBytes(body, "status").String() != "success" {
		return Metadata{}, fmt.Errorf("unfurl.Fetch: service status %q", gjson.GetBytes(body, "status").String())
	}

	return Metadata{
		Title:       gjson.GetBytes(body, "data.title").String(),
		Description: gjson.GetBytes(body, "data.description").String(),
		ImageURL:    gjson.GetBytes(body, "data.image.url").String(),
	}, nil
}
