package youtube

// VideoRef identifies one uploaded video discovered in a channel's uploads
// playlist.
type VideoRef struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// Reply is a single reply to a top-level comment. The platform nests comments
// two levels deep at most, so replies never carry children of their own.
type Reply struct {
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
}

// Comment is a top-level comment together with its complete reply list, in
// the order the platform returned them.
type Comment struct {
	Text       string  `json:"text"`
	AuthorName string  `json:"author_name"`
	Children   []Reply `json:"children"`
}

// VideoResult pairs one video with every comment harvested from it. Comments
// is always present, even when empty.
type VideoResult struct {
	Title    string    `json:"title"`
	ID       string    `json:"id"`
	Comments []Comment `json:"comments"`
}

// ChannelExport is the complete harvest for one channel, one entry per video
// in upload-playlist order.
type ChannelExport []VideoResult
