package ytcomb

import (
	"ytcomb/resolve"
	"ytcomb/retry"
	"ytcomb/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytcomb.ErrHandleNotFound) {
//		fmt.Println("No channel with that handle")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var hErr *ytcomb.HarvestError
//	if errors.As(err, &hErr) {
//		fmt.Printf("Failed during %s of %s: %v\n", hErr.Op, hErr.ID, hErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// HarvestError wraps harvest failures with the stage and subject that
	// failed.
	HarvestError = youtube.HarvestError
	// APIError is a Data API rejection the harvest cannot recover from.
	APIError = youtube.APIError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the resolved channel does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrMalformedItem indicates a playlist item arrived without its video
	// id or title.
	ErrMalformedItem = youtube.ErrMalformedItem
	// ErrHandleNotFound indicates no channel carries the requested handle.
	ErrHandleNotFound = resolve.ErrHandleNotFound
)

// IsRetryable determines if an error should be retried.
// It returns false for permanent errors like context cancellation.
func IsRetryable(err error) bool {
	return retry.IsRetryable(err)
}
