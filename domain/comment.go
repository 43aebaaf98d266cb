package domain

import (
	"context"
	"sort"
	"time"
)

// DeletedCommentContent replaces the content of a soft-deleted comment.
// The substitution happens once, when the view is built, and the original
// content is never kept on the instance.
const DeletedCommentContent = "**this comment was removed**"

// NewCommentPayload carries the raw fields of a comment-creation request.
type NewCommentPayload struct {
	ThreadID any
	Content  any
	Owner    any
	Date     any
}

// NewComment is a validated comment-creation record, ready to persist.
type NewComment struct {
	ThreadID string
	Content  string
	Owner    string
	Date     time.Time
}

// ValidateNewComment normalizes a creation payload into a NewComment.
// Content is checked first — absent, then wrong type, then empty — before
// the generic sweeps over the remaining properties. Callers key
// user-facing messages off the specific code, so this precedence is part
// of the observable contract.
func ValidateNewComment(p NewCommentPayload) (NewComment, error) {
	if p.Content == nil {
		return NewComment{}, &ValidationError{Code: CodeNewCommentContentUndefined}
	}
	content, ok := p.Content.(string)
	if !ok {
		return NewComment{}, &ValidationError{Code: CodeNewCommentContentWrongDataType}
	}
	if content == "" {
		return NewComment{}, &ValidationError{Code: CodeNewCommentContentEmpty}
	}

	for _, prop := range []any{p.ThreadID, p.Owner, p.Date} {
		if prop == nil {
			return NewComment{}, &ValidationError{Code: CodeNewCommentMissingProperty}
		}
	}

	threadID, threadOk := p.ThreadID.(string)
	owner, ownerOk := p.Owner.(string)
	date, dateOk := p.Date.(time.Time)
	if !threadOk || !ownerOk || !dateOk {
		return NewComment{}, &ValidationError{Code: CodeNewCommentWrongDataType}
	}

	return NewComment{ThreadID: threadID, Content: content, Owner: owner, Date: date}, nil
}

// AddedComment is the minimal projection returned after a comment has
// been persisted.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return AddedComment{}, &ShapeError{Code: CodeAddedCommentMissingProperty}
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// Comment is the request-scoped presentation form of one comment row,
// including its replies and like count once composed.
type Comment struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	Replies   []Reply
	LikeCount int64
}

// NewCommentFromRow builds the comment view from a raw row, masking the
// content of soft-deleted comments.
func NewCommentFromRow(row CommentRow) (Comment, error) {
	if row.ID == "" || row.Username == "" {
		return Comment{}, &ShapeError{Code: CodeCommentMissingProperty}
	}
	if row.Date.IsZero() {
		return Comment{}, &ShapeError{Code: CodeCommentWrongDataType}
	}

	content := row.Content
	if row.IsDelete {
		content = DeletedCommentContent
	}

	return Comment{
		ID:       row.ID,
		Username: row.Username,
		Date:     row.Date,
		Content:  content,
		Replies:  []Reply{},
	}, nil
}

// SetReplies replaces the reply list with val sorted ascending by
// creation time. A nil list is a wiring defect; the prior collection is
// left untouched.
func (c *Comment) SetReplies(val []Reply) error {
	if val == nil {
		return &CompositionError{Code: CodeCommentRepliesNotList}
	}

	sort.SliceStable(val, func(i, j int) bool { return val[i].Date.Before(val[j].Date) })
	c.Replies = val
	return nil
}

// SetLikeCount replaces the stored like count.
func (c *Comment) SetLikeCount(val int64) error {
	if val < 0 {
		return &CompositionError{Code: CodeCommentLikeCountNegative}
	}

	c.LikeCount = val
	return nil
}

// CommentUsecase defines the business logic contract for comment operations.
type CommentUsecase interface {
	// Store checks the thread exists, validates the payload and persists
	// the comment, in that order.
	Store(ctx context.Context, threadID string, p NewCommentPayload) (AddedComment, error)

	// Delete soft-deletes a comment after the availability and ownership
	// chain passes. Returns ErrNotFound or ErrForbidden on the first
	// failing check.
	Delete(ctx context.Context, threadID, commentID, userID string) error
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	AddComment(ctx context.Context, c NewComment) (AddedComment, error)

	// CheckCommentAvailabilityInThread returns ErrNotFound if the comment
	// doesn't exist in the given thread or was soft-deleted.
	CheckCommentAvailabilityInThread(ctx context.Context, commentID, threadID string) error

	// CheckCommentOwnership returns ErrForbidden if userID is not the
	// comment's author, ErrNotFound if the comment doesn't exist.
	CheckCommentOwnership(ctx context.Context, commentID, userID string) error

	SoftDeleteComment(ctx context.Context, commentID string) error

	// GetCommentRowsByThreadID fetches the flat comment rows of a thread,
	// soft-deleted ones included, joined with the author's username.
	// Returns an empty slice, never nil, when the thread has no comments.
	GetCommentRowsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error)
}
