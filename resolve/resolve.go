// Package resolve maps YouTube handles to channel ids through the
// lemnoslife operational API, which exposes the lookup without consuming
// Data API quota.
package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public lemnoslife deployment.
const DefaultBaseURL = "https://yt.lemnoslife.com"

// ErrHandleNotFound means the lookup succeeded but no channel carries the
// handle.
var ErrHandleNotFound = errors.New("resolve: handle not found")

// Resolver looks up channel ids by handle.
type Resolver struct {
	// BaseURL overrides the lookup endpoint, mainly for tests and
	// self-hosted deployments. Empty selects DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides the transport. Empty selects a client with a
	// 30 second timeout.
	HTTPClient *http.Client
}

// channelsResponse is the subset of the lookup response the resolver reads.
type channelsResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

// ResolveHandle returns the channel id owning the given handle. A leading @
// is optional.
func (r *Resolver) ResolveHandle(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return "", fmt.Errorf("resolve: empty handle")
	}

	base := r.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	lookupURL := fmt.Sprintf("%s/channels?handle=@%s", strings.TrimSuffix(base, "/"), url.QueryEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("resolve: build request: %w", err)
	}

	client := r.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve: lookup %s: %w", handle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("resolve: lookup %s: http %d", handle, resp.StatusCode)
	}

	var decoded channelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("resolve: decode response for %s: %w", handle, err)
	}
	if len(decoded.Items) == 0 || decoded.Items[0].ID == "" {
		return "", fmt.Errorf("%w: @%s", ErrHandleNotFound, handle)
	}
	return decoded.Items[0].ID, nil
}
