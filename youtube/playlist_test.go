package youtube

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/api/youtube/v3"
)

func TestListUploadsPaginates(t *testing.T) {
	pages := map[string]string{
		"":   `{"items":[{"snippet":{"title":"First"},"contentDetails":{"videoId":"v1"}},{"snippet":{"title":"Second"},"contentDetails":{"videoId":"v2"}}],"nextPageToken":"p2"}`,
		"p2": `{"items":[{"snippet":{"title":"Third"},"contentDetails":{"videoId":"v3"}}],"nextPageToken":"p3"}`,
		"p3": `{"items":[{"snippet":{"title":"Fourth"},"contentDetails":{"videoId":"v4"}}]}`,
	}
	var gotTokens []string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("pageToken")
		gotTokens = append(gotTokens, token)
		if got := r.URL.Query().Get("playlistId"); got != "UUchan" {
			t.Errorf("playlistId = %q, want UUchan", got)
		}
		body, ok := pages[token]
		if !ok {
			t.Errorf("unexpected page token %q", token)
			http.Error(w, "no such page", http.StatusBadRequest)
			return
		}
		writeJSON(w, body)
	}))

	videos, err := c.ListUploads(context.Background(), "UUchan")
	if err != nil {
		t.Fatalf("ListUploads() failed: %v", err)
	}

	want := []VideoRef{
		{Title: "First", ID: "v1"},
		{Title: "Second", ID: "v2"},
		{Title: "Third", ID: "v3"},
		{Title: "Fourth", ID: "v4"},
	}
	if len(videos) != len(want) {
		t.Fatalf("got %d videos, want %d", len(videos), len(want))
	}
	for i, v := range videos {
		if v != want[i] {
			t.Errorf("video %d = %+v, want %+v", i, v, want[i])
		}
	}

	wantTokens := []string{"", "p2", "p3"}
	if len(gotTokens) != len(wantTokens) {
		t.Fatalf("server saw %d requests, want %d", len(gotTokens), len(wantTokens))
	}
	for i, tok := range gotTokens {
		if tok != wantTokens[i] {
			t.Errorf("request %d used token %q, want %q", i, tok, wantTokens[i])
		}
	}
}

func TestListUploadsEmptyPlaylist(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"items":[]}`)
	}))

	videos, err := c.ListUploads(context.Background(), "UUempty")
	if err != nil {
		t.Fatalf("ListUploads() failed: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("got %d videos, want 0", len(videos))
	}
}

func TestListUploadsMalformedItem(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"items":[{"snippet":{"title":"Fine"},"contentDetails":{"videoId":"v1"}},{"snippet":{"title":"Broken"}}]}`)
	}))

	_, err := c.ListUploads(context.Background(), "UUchan")
	if !errors.Is(err, ErrMalformedItem) {
		t.Fatalf("ListUploads() error = %v, want ErrMalformedItem", err)
	}

	var hErr *HarvestError
	if !errors.As(err, &hErr) {
		t.Fatalf("error %v is not a *HarvestError", err)
	}
	if hErr.Op != "playlist" || hErr.ID != "UUchan" {
		t.Errorf("HarvestError = {Op:%q ID:%q}, want {Op:\"playlist\" ID:\"UUchan\"}", hErr.Op, hErr.ID)
	}
}

func TestListUploadsServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusInternalServerError, 500)
	}))

	_, err := c.ListUploads(context.Background(), "UUchan")
	if err == nil {
		t.Fatal("ListUploads() succeeded, want error")
	}
}

func TestPlaylistItemRef(t *testing.T) {
	tests := []struct {
		name    string
		item    *youtube.PlaylistItem
		want    VideoRef
		wantErr bool
	}{
		{
			name: "complete item",
			item: &youtube.PlaylistItem{
				Snippet:        &youtube.PlaylistItemSnippet{Title: "A video"},
				ContentDetails: &youtube.PlaylistItemContentDetails{VideoId: "v1"},
			},
			want: VideoRef{Title: "A video", ID: "v1"},
		},
		{
			name: "missing content details",
			item: &youtube.PlaylistItem{
				Snippet: &youtube.PlaylistItemSnippet{Title: "A video"},
			},
			wantErr: true,
		},
		{
			name: "empty video id",
			item: &youtube.PlaylistItem{
				Snippet:        &youtube.PlaylistItemSnippet{Title: "A video"},
				ContentDetails: &youtube.PlaylistItemContentDetails{},
			},
			wantErr: true,
		},
		{
			name: "missing snippet",
			item: &youtube.PlaylistItem{
				ContentDetails: &youtube.PlaylistItemContentDetails{VideoId: "v1"},
			},
			wantErr: true,
		},
		{
			name: "empty title",
			item: &youtube.PlaylistItem{
				Snippet:        &youtube.PlaylistItemSnippet{},
				ContentDetails: &youtube.PlaylistItemContentDetails{VideoId: "v1"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := playlistItemRef(tt.item)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedItem) {
					t.Fatalf("playlistItemRef() error = %v, want ErrMalformedItem", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("playlistItemRef() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("playlistItemRef() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListUploadsMalformedItemAbortsWalk(t *testing.T) {
	requests := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, `{"items":[{"contentDetails":{"videoId":"v1"}}],"nextPageToken":"p2"}`)
	}))

	_, err := c.ListUploads(context.Background(), "UUchan")
	if !errors.Is(err, ErrMalformedItem) {
		t.Fatalf("ListUploads() error = %v, want ErrMalformedItem", err)
	}
	if requests != 1 {
		t.Errorf("server saw %d requests after malformed item, want 1", requests)
	}
}
