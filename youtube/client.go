// Package youtube implements the comment harvesting pipeline on top of the
// YouTube Data API v3: walking a channel's uploads playlist, fetching each
// video's comment threads, and reconciling inline reply payloads against the
// platform's reported reply totals.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"ytcomb/retry"
)

// DefaultRequestsPerSecond is the API pacing used when none is configured.
const DefaultRequestsPerSecond = 5.0

// Client performs authenticated reads against the YouTube Data API v3. All
// calls share a token-bucket pace and are retried on transient transport
// failures; structured API rejections are never retried.
type Client struct {
	service *youtube.Service
	limiter *rate.Limiter

	// RetryConfig overrides the default transient-failure retry policy.
	RetryConfig *retry.Config
}

// NewClient wraps an authenticated HTTP client (see the auth package) in a
// Data API client paced at rps requests per second. rps <= 0 selects
// DefaultRequestsPerSecond.
func NewClient(ctx context.Context, hc *http.Client, rps float64) (*Client, error) {
	if hc == nil {
		return nil, fmt.Errorf("youtube: http client required")
	}
	service, err := youtube.NewService(ctx, option.WithHTTPClient(hc))
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}
	return newClient(service, rps), nil
}

func newClient(service *youtube.Service, rps float64) *Client {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	cfg := retry.DefaultConfig()
	return &Client{
		service:     service,
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		RetryConfig: &cfg,
	}
}

// call runs one API request under the rate limiter with the client's retry
// policy applied.
func (c *Client) call(ctx context.Context, fn func(ctx context.Context) error) error {
	cfg := c.RetryConfig
	if cfg == nil {
		defaultCfg := retry.DefaultConfig()
		cfg = &defaultCfg
	}

	return retry.Do(ctx, *cfg, transientOnly, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		return fn(ctx)
	})
}

// transientOnly retries transport failures and server-side (5xx) rejections.
// Client-side API rejections, context errors, and the package sentinels are
// permanent.
func transientOnly(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrChannelNotFound) || errors.Is(err, ErrMalformedItem) {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code >= 500
	}
	return true
}

// UploadsPlaylistID resolves the uploads playlist for a channel. Every
// channel exposes exactly one uploads playlist through its content details.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	var playlistID string

	err := c.call(ctx, func(ctx context.Context) error {
		resp, err := c.service.Channels.List([]string{"contentDetails"}).
			Id(channelID).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}

		if len(resp.Items) == 0 {
			return ErrChannelNotFound
		}
		channel := resp.Items[0]
		if channel.ContentDetails == nil || channel.ContentDetails.RelatedPlaylists == nil {
			return fmt.Errorf("channel has no related playlists")
		}
		playlistID = channel.ContentDetails.RelatedPlaylists.Uploads
		return nil
	})
	if err != nil {
		return "", &HarvestError{Op: "channel", ID: channelID, Err: err}
	}

	if playlistID == "" {
		return "", &HarvestError{Op: "channel", ID: channelID, Err: fmt.Errorf("channel has no uploads playlist")}
	}
	return playlistID, nil
}
