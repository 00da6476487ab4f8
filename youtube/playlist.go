package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/youtube/v3"
)

// Page sizes per endpoint: the API caps playlistItems pages at 50 and the
// comment endpoints at 100.
const (
	playlistPageSize = 50
	commentPageSize  = 100
)

// ListUploads walks the uploads playlist and returns every video in playlist
// order. A playlist item without a video id or title aborts the walk with
// ErrMalformedItem: the requested projection guarantees both fields, so their
// absence means the response shape cannot be trusted.
func (c *Client) ListUploads(ctx context.Context, playlistID string) ([]VideoRef, error) {
	var videos []VideoRef

	cursor := newPageCursor()
	for cursor.HasMore() {
		err := c.call(ctx, func(ctx context.Context) error {
			resp, err := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
				PlaylistId(playlistID).
				MaxResults(playlistPageSize).
				PageToken(cursor.Token()).
				Context(ctx).
				Do()
			if err != nil {
				return err
			}

			for _, item := range resp.Items {
				ref, err := playlistItemRef(item)
				if err != nil {
					return err
				}
				videos = append(videos, ref)
			}
			cursor.Advance(resp.NextPageToken)
			return nil
		})
		if err != nil {
			return nil, &HarvestError{Op: "playlist", ID: playlistID, Err: err}
		}
	}

	return videos, nil
}

// playlistItemRef extracts the video reference from one playlist item.
func playlistItemRef(item *youtube.PlaylistItem) (VideoRef, error) {
	if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
		return VideoRef{}, fmt.Errorf("%w: missing video id", ErrMalformedItem)
	}
	if item.Snippet == nil || item.Snippet.Title == "" {
		return VideoRef{}, fmt.Errorf("%w: missing title for video %s", ErrMalformedItem, item.ContentDetails.VideoId)
	}
	return VideoRef{Title: item.Snippet.Title, ID: item.ContentDetails.VideoId}, nil
}
