package ytcomb

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"ytcomb/auth"
	"ytcomb/config"
	"ytcomb/export"
	"ytcomb/progress"
	"ytcomb/resolve"
	"ytcomb/retry"
	"ytcomb/youtube"
)

// HarvestOptions configure HarvestChannel. Only Handle is required; every
// other field falls back to the config package defaults.
type HarvestOptions struct {
	// Handle is the channel handle, with or without the leading @.
	Handle string

	// ClientSecretFile is the OAuth client secret JSON from the cloud
	// console.
	ClientSecretFile string
	// TokenCacheFile persists the authorized token between runs.
	TokenCacheFile string
	// OutputFile receives the JSON export.
	OutputFile string

	// LookupBaseURL overrides the handle lookup endpoint.
	LookupBaseURL string
	// RequestsPerSecond paces Data API calls.
	RequestsPerSecond float64
	// HTTPTimeout bounds the handle lookup request.
	HTTPTimeout time.Duration

	// Retry overrides the Data API retry policy.
	Retry *retry.Config
	// Progress receives per-video milestones. Nil disables reporting.
	Progress progress.Reporter
}

// HarvestChannel runs the full pipeline: authorize, resolve the handle to a
// channel, walk the uploads playlist, fetch every video's comment tree, and
// write the JSON export. Any failure other than per-video disabled comments
// aborts the run and leaves an existing output file untouched.
func HarvestChannel(ctx context.Context, opts HarvestOptions) error {
	if strings.TrimSpace(opts.Handle) == "" {
		return fmt.Errorf("ytcomb: channel handle required")
	}
	applyDefaults(&opts)

	hc, err := auth.NewClient(ctx, opts.ClientSecretFile, opts.TokenCacheFile)
	if err != nil {
		return err
	}

	resolver := &resolve.Resolver{
		BaseURL:    opts.LookupBaseURL,
		HTTPClient: &http.Client{Timeout: opts.HTTPTimeout},
	}
	channelID, err := resolver.ResolveHandle(ctx, opts.Handle)
	if err != nil {
		return err
	}
	log.Printf("ytcomb: resolved %s to channel %s", opts.Handle, channelID)

	client, err := youtube.NewClient(ctx, hc, opts.RequestsPerSecond)
	if err != nil {
		return err
	}
	if opts.Retry != nil {
		client.RetryConfig = opts.Retry
	}

	playlistID, err := client.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return err
	}

	harvester := youtube.NewHarvester(client, client)
	if opts.Progress != nil {
		harvester.OnStart = opts.Progress.Start
		harvester.OnVideo = func(pos, total int, video youtube.VideoRef) {
			opts.Progress.Step(video.Title)
		}
		defer opts.Progress.Done()
	}

	channel, err := harvester.Harvest(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := export.WriteJSON(opts.OutputFile, channel); err != nil {
		return err
	}
	log.Printf("ytcomb: wrote %d videos to %s", len(channel), opts.OutputFile)
	return nil
}

func applyDefaults(opts *HarvestOptions) {
	defaults := config.DefaultConfig()
	if opts.ClientSecretFile == "" {
		opts.ClientSecretFile = defaults.ClientSecretFile
	}
	if opts.TokenCacheFile == "" {
		opts.TokenCacheFile = defaults.TokenCacheFile
	}
	if opts.OutputFile == "" {
		opts.OutputFile = defaults.OutputFile
	}
	if opts.LookupBaseURL == "" {
		opts.LookupBaseURL = defaults.LookupBaseURL
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if opts.HTTPTimeout <= 0 {
		opts.HTTPTimeout = defaults.HTTPTimeout
	}
}
