package domain

import "time"

// ThreadRow is the raw thread record as fetched from storage, already
// joined with the author's username.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// CommentRow is the raw comment record as fetched from storage.
type CommentRow struct {
	ID       string
	Username string
	Date     time.Time
	Content  string
	IsDelete bool
}

// ReplyRow is the raw reply record as fetched from storage. CommentID
// links it back to its parent comment during composition.
type ReplyRow struct {
	ID        string
	CommentID string
	Username  string
	Date      time.Time
	Content   string
	IsDelete  bool
}

// ThreadDetail joins the flat, independently fetched result sets of one
// thread — the thread row, its comment rows, the reply rows spanning all
// those comments and the per-comment like counts — into a single nested
// Thread view. It is transient and lives only for one composition call.
type ThreadDetail struct {
	thread     *ThreadRow
	comments   []CommentRow
	replies    []ReplyRow
	likeCounts []LikeCountRow
}

// NewThreadDetail validates that every input is present. Nil slices are
// rejected; loaders must hand over empty slices when there is nothing to
// compose. Type-level validation is left to the views built during
// composition.
func NewThreadDetail(thread *ThreadRow, comments []CommentRow, replies []ReplyRow, likeCounts []LikeCountRow) (*ThreadDetail, error) {
	if thread == nil || comments == nil || replies == nil || likeCounts == nil {
		return nil, &CompositionError{Code: CodeThreadDetailMissingProperty}
	}

	return &ThreadDetail{
		thread:     thread,
		comments:   comments,
		replies:    replies,
		likeCounts: likeCounts,
	}, nil
}

// Compose builds the fully nested thread view. Replies and like counts
// are grouped by comment id up front so each comment is composed with
// O(1) lookups instead of rescanning the flat rows.
func (d *ThreadDetail) Compose() (Thread, error) {
	repliesByComment := make(map[string][]ReplyRow, len(d.comments))
	for _, row := range d.replies {
		repliesByComment[row.CommentID] = append(repliesByComment[row.CommentID], row)
	}

	likesByComment := make(map[string]int64, len(d.likeCounts))
	for _, row := range d.likeCounts {
		likesByComment[row.CommentID] = row.LikeCount
	}

	comments := make([]Comment, 0, len(d.comments))
	for _, row := range d.comments {
		comment, err := NewCommentFromRow(row)
		if err != nil {
			return Thread{}, err
		}

		if replyRows := repliesByComment[row.ID]; len(replyRows) != 0 {
			replies := make([]Reply, 0, len(replyRows))
			for _, replyRow := range replyRows {
				reply, err := NewReplyFromRow(replyRow)
				if err != nil {
					return Thread{}, err
				}
				replies = append(replies, reply)
			}
			if err := comment.SetReplies(replies); err != nil {
				return Thread{}, err
			}
		}

		if likeCount := likesByComment[row.ID]; likeCount > 0 {
			if err := comment.SetLikeCount(likeCount); err != nil {
				return Thread{}, err
			}
		}

		comments = append(comments, comment)
	}

	thread, err := NewThreadFromRow(*d.thread)
	if err != nil {
		return Thread{}, err
	}

	if len(comments) != 0 {
		if err := thread.SetComments(comments); err != nil {
			return Thread{}, err
		}
	}

	return thread, nil
}
