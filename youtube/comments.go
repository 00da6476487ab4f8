package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/youtube/v3"
)

// FetchComments returns every top-level comment on a video with its complete
// reply list, in thread order. A video with comments disabled is not an
// error: the fetch ends early and returns whatever was accumulated, normally
// an empty list. Every other failure aborts the fetch.
func (c *Client) FetchComments(ctx context.Context, videoID string) ([]Comment, error) {
	comments := []Comment{}

	cursor := newPageCursor()
	for cursor.HasMore() {
		page, err := c.threadPage(ctx, videoID, cursor.Token())
		if err != nil {
			verdict, fatal := classifyThreadsError(err)
			if verdict == verdictDisabled {
				return comments, nil
			}
			return nil, &HarvestError{Op: "threads", ID: videoID, Err: fatal}
		}

		for _, thread := range page.Items {
			comment, ok, err := c.reconcileThread(ctx, thread)
			if err != nil {
				return nil, &HarvestError{Op: "replies", ID: videoID, Err: err}
			}
			if !ok {
				continue
			}
			comments = append(comments, comment)
		}
		cursor.Advance(page.NextPageToken)
	}

	return comments, nil
}

// threadPage fetches a single page of comment threads for a video.
func (c *Client) threadPage(ctx context.Context, videoID, token string) (*youtube.CommentThreadListResponse, error) {
	var page *youtube.CommentThreadListResponse

	err := c.call(ctx, func(ctx context.Context) error {
		resp, err := c.service.CommentThreads.List([]string{"snippet", "replies"}).
			VideoId(videoID).
			TextFormat("plainText").
			MaxResults(commentPageSize).
			PageToken(token).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		page = resp
		return nil
	})
	return page, err
}

// reconcileThread builds one comment from a thread item. The inline reply
// payload is a bounded prefix of the true reply list; it is used as-is only
// when its length equals the platform's reported total, the one signal that
// nothing was truncated. Any mismatch triggers a full fetch through the
// comments endpoint. ok is false when the top-level comment fails validation
// and the whole thread is dropped.
func (c *Client) reconcileThread(ctx context.Context, thread *youtube.CommentThread) (Comment, bool, error) {
	text, author, ok := validateComment(topLevelComment(thread))
	if !ok {
		return Comment{}, false, nil
	}
	comment := Comment{Text: text, AuthorName: author}

	inline := inlineReplies(thread)
	contained := len(inline)
	total := 0
	if thread.Snippet != nil {
		total = int(thread.Snippet.TotalReplyCount)
	}

	// A thread without an id cannot be fetched through the comments
	// endpoint; the validated inline prefix is the best available list.
	if contained == total || thread.Id == "" {
		comment.Children = validateReplies(inline)
		return comment, true, nil
	}

	children, err := c.fetchReplies(ctx, thread.Id)
	if err != nil {
		return Comment{}, false, err
	}
	comment.Children = children
	return comment, true, nil
}

// fetchReplies pages through the comments endpoint for one thread and
// returns every validated reply in return order.
func (c *Client) fetchReplies(ctx context.Context, parentID string) ([]Reply, error) {
	replies := []Reply{}

	cursor := newPageCursor()
	for cursor.HasMore() {
		err := c.call(ctx, func(ctx context.Context) error {
			resp, err := c.service.Comments.List([]string{"snippet"}).
				ParentId(parentID).
				TextFormat("plainText").
				MaxResults(commentPageSize).
				PageToken(cursor.Token()).
				Context(ctx).
				Do()
			if err != nil {
				return err
			}

			replies = append(replies, validateReplies(resp.Items)...)
			cursor.Advance(resp.NextPageToken)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("thread %s: %w", parentID, err)
		}
	}

	return replies, nil
}

// validateComment is the shared validation for top-level comments and
// replies: an entry missing its text or author is dropped rather than
// exported with placeholders.
func validateComment(c *youtube.Comment) (text, author string, ok bool) {
	if c == nil || c.Snippet == nil {
		return "", "", false
	}
	if c.Snippet.TextOriginal == "" || c.Snippet.AuthorDisplayName == "" {
		return "", "", false
	}
	return c.Snippet.TextOriginal, c.Snippet.AuthorDisplayName, true
}

// validateReplies filters raw reply comments through validateComment,
// preserving order. Invalid entries are dropped individually.
func validateReplies(raw []*youtube.Comment) []Reply {
	replies := []Reply{}
	for _, rc := range raw {
		if text, author, ok := validateComment(rc); ok {
			replies = append(replies, Reply{Text: text, AuthorName: author})
		}
	}
	return replies
}

func topLevelComment(thread *youtube.CommentThread) *youtube.Comment {
	if thread.Snippet == nil {
		return nil
	}
	return thread.Snippet.TopLevelComment
}

func inlineReplies(thread *youtube.CommentThread) []*youtube.Comment {
	if thread.Replies == nil {
		return nil
	}
	return thread.Replies.Comments
}
