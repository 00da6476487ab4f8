package youtube

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for harvest operations.
var (
	ErrChannelNotFound = errors.New("youtube: channel not found")
	ErrMalformedItem   = errors.New("youtube: malformed playlist item")
)

// APIError is a Data API rejection the harvest cannot recover from. Code is
// the error code embedded in the response body and Body the raw response for
// diagnostics.
type APIError struct {
	Code int
	Body string
	Err  error
}

// Error returns a string representation of the API error.
func (e *APIError) Error() string {
	return fmt.Sprintf("youtube: api error %d: %v", e.Code, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }

// HarvestError wraps harvest failures with the operation and subject that
// failed. Use errors.As() to extract it:
//
//	var hErr *youtube.HarvestError
//	if errors.As(err, &hErr) {
//		fmt.Printf("Failed during %s of %s: %v\n", hErr.Op, hErr.ID, hErr.Err)
//	}
type HarvestError struct {
	// Op is the stage that failed ("channel", "playlist", "threads", "replies").
	Op string
	// ID is the playlist, channel, or video being processed.
	ID string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the harvest error.
func (e *HarvestError) Error() string {
	return "youtube: " + e.Op + " " + e.ID + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *HarvestError) Unwrap() error { return e.Err }

// errorEnvelope mirrors the JSON error body the Data API attaches to
// rejected requests.
type errorEnvelope struct {
	Error struct {
		Code int `json:"code"`
	} `json:"error"`
}

// threadsVerdict is the classification of a failed commentThreads request.
type threadsVerdict int

const (
	// verdictFatal aborts the harvest.
	verdictFatal threadsVerdict = iota
	// verdictDisabled means the video has comments turned off; the fetch
	// ends with whatever was accumulated.
	verdictDisabled
)

// classifyThreadsError decides whether a commentThreads failure means the
// video has comments disabled or the harvest must stop. Only a structured
// API rejection whose embedded body code is 403 is recoverable; any other
// code, any other error shape, and an error body that does not parse are
// all fatal. The returned error is non-nil exactly when the verdict is
// verdictFatal.
func classifyThreadsError(err error) (threadsVerdict, error) {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return verdictFatal, err
	}

	var env errorEnvelope
	if parseErr := json.Unmarshal([]byte(gerr.Body), &env); parseErr != nil {
		return verdictFatal, &APIError{
			Code: gerr.Code,
			Body: gerr.Body,
			Err:  fmt.Errorf("parse error body: %w", parseErr),
		}
	}

	if env.Error.Code == 403 {
		return verdictDisabled, nil
	}
	return verdictFatal, &APIError{Code: env.Error.Code, Body: gerr.Body, Err: err}
}
