package youtube

// pageCursor tracks the continuation token across a paged listing. The API
// omits nextPageToken on the final page, which the generated client surfaces
// as an empty string; the cursor keeps that present/absent distinction out
// of the fetch loops.
type pageCursor struct {
	token string
	more  bool
}

// newPageCursor starts a listing at its first page.
func newPageCursor() pageCursor {
	return pageCursor{more: true}
}

// Token returns the continuation token to send with the next request. Empty
// on the first page.
func (c *pageCursor) Token() string { return c.token }

// Advance records the continuation token from the page just fetched.
func (c *pageCursor) Advance(next string) {
	c.token = next
	c.more = next != ""
}

// HasMore reports whether another page remains.
func (c *pageCursor) HasMore() bool { return c.more }
