// Package ytcomb harvests the complete comment tree of a YouTube channel.
//
// It walks a channel's uploads playlist through the YouTube Data API v3 and
// exports every video's top-level comments with their full reply lists as a
// single JSON document.
//
// Overview
//
// ytcomb provides one high-level entry point:
//
//   - HarvestChannel: resolve a handle, fetch everything, write the export
//
// Quick Start
//
// Harvest a channel by handle:
//
//	ctx := context.Background()
//	err := ytcomb.HarvestChannel(ctx, ytcomb.HarvestOptions{
//		Handle:     "@somecreator",
//		OutputFile: "comments.json",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The first run opens a browser consent flow and caches the resulting OAuth
// token; later runs reuse the cache.
//
// Configuration
//
// ytcomb uses a configuration system that loads settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (ytcomb.json or ~/.config/ytcomb/ytcomb.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - YTCOMB_CLIENT_SECRET: Path to the OAuth client secret JSON
//   - YTCOMB_TOKEN_CACHE: Path to the cached OAuth token
//   - YTCOMB_OUTPUT: Path of the JSON export
//   - YTCOMB_LOOKUP_URL: Base URL of the handle lookup service
//   - YTCOMB_RPS: Data API requests per second
//   - YTCOMB_HTTP_TIMEOUT: Timeout for the handle lookup request
//   - YTCOMB_MAX_RETRIES: Maximum retry attempts
//   - YTCOMB_INITIAL_BACKOFF: Initial retry backoff duration
//   - YTCOMB_MAX_BACKOFF: Maximum retry backoff duration
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
// Checking for sentinel errors:
//
//	if errors.Is(err, ytcomb.ErrHandleNotFound) {
//		fmt.Println("No channel with that handle")
//	}
//
// Extracting wrapped error details:
//
//	var hErr *ytcomb.HarvestError
//	if errors.As(err, &hErr) {
//		fmt.Printf("Failed during %s of %s: %v\n", hErr.Op, hErr.ID, hErr.Err)
//	}
//
// A video with comments disabled is not an error: it appears in the export
// with an empty comment list.
//
// Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - youtube: Playlist walking, comment fetching, reply reconciliation
//   - auth: OAuth installed-application flow and token caching
//   - resolve: Handle to channel id lookup
//   - export: Atomic JSON export
//   - progress: Terminal progress reporting
//   - config: Configuration management
//   - retry: Exponential backoff retry logic
//
// Example using the youtube package directly:
//
//	client, err := youtube.NewClient(ctx, httpClient, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	comments, err := client.FetchComments(ctx, "dQw4w9WgXcQ")
//
package ytcomb
