package youtube

import (
	"context"
	"log"
)

// VideoLister walks a channel's uploads playlist.
type VideoLister interface {
	// ListUploads returns every video in the playlist, in playlist order.
	ListUploads(ctx context.Context, playlistID string) ([]VideoRef, error)
}

// CommentFetcher retrieves the full comment tree for one video.
type CommentFetcher interface {
	// FetchComments returns every top-level comment with its complete
	// reply list. A video with comments disabled yields an empty list,
	// not an error.
	FetchComments(ctx context.Context, videoID string) ([]Comment, error)
}

// Harvester sequences the playlist walk and the per-video comment fetch into
// a single channel export. Videos are processed strictly one at a time, in
// playlist order.
type Harvester struct {
	lister  VideoLister
	fetcher CommentFetcher

	// OnStart, when set, is called once with the video count before the
	// first fetch.
	OnStart func(total int)
	// OnVideo, when set, is called after each video completes. pos is
	// 1-based. The callback has no influence on the harvest.
	OnVideo func(pos, total int, video VideoRef)
}

// NewHarvester wires a harvester from its two collaborators. A *Client
// satisfies both.
func NewHarvester(lister VideoLister, fetcher CommentFetcher) *Harvester {
	return &Harvester{lister: lister, fetcher: fetcher}
}

// Harvest fetches the video list once and then the comments for each video.
// Any failure beyond the disabled-comments case handled inside the fetcher
// aborts the run; there is no partial result.
func (h *Harvester) Harvest(ctx context.Context, playlistID string) (ChannelExport, error) {
	videos, err := h.lister.ListUploads(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	log.Printf("ytcomb: %d videos in playlist %s", len(videos), playlistID)

	if h.OnStart != nil {
		h.OnStart(len(videos))
	}

	export := make(ChannelExport, 0, len(videos))
	for i, video := range videos {
		comments, err := h.fetcher.FetchComments(ctx, video.ID)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []Comment{}
		}

		export = append(export, VideoResult{
			Title:    video.Title,
			ID:       video.ID,
			Comments: comments,
		})
		if h.OnVideo != nil {
			h.OnVideo(i+1, len(videos), video)
		}
	}

	return export, nil
}
