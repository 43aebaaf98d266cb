package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the content of a soft-deleted reply, with
// the same construction-time masking rule as DeletedCommentContent.
const DeletedReplyContent = "**this reply was removed**"

// NewReplyPayload carries the raw fields of a reply-creation request.
type NewReplyPayload struct {
	CommentID any
	Content   any
	Owner     any
	Date      any
}

// NewReply is a validated reply-creation record, ready to persist.
type NewReply struct {
	CommentID string
	Content   string
	Owner     string
	Date      time.Time
}

// ValidateNewReply normalizes a creation payload into a NewReply, with
// the same content-first precedence as ValidateNewComment.
func ValidateNewReply(p NewReplyPayload) (NewReply, error) {
	if p.Content == nil {
		return NewReply{}, &ValidationError{Code: CodeNewReplyContentUndefined}
	}
	content, ok := p.Content.(string)
	if !ok {
		return NewReply{}, &ValidationError{Code: CodeNewReplyContentWrongDataType}
	}
	if content == "" {
		return NewReply{}, &ValidationError{Code: CodeNewReplyContentEmpty}
	}

	for _, prop := range []any{p.CommentID, p.Owner, p.Date} {
		if prop == nil {
			return NewReply{}, &ValidationError{Code: CodeNewReplyMissingProperty}
		}
	}

	commentID, commentOk := p.CommentID.(string)
	owner, ownerOk := p.Owner.(string)
	date, dateOk := p.Date.(time.Time)
	if !commentOk || !ownerOk || !dateOk {
		return NewReply{}, &ValidationError{Code: CodeNewReplyWrongDataType}
	}

	return NewReply{CommentID: commentID, Content: content, Owner: owner, Date: date}, nil
}

// AddedReply is the minimal projection returned after a reply has been
// persisted.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return AddedReply{}, &ShapeError{Code: CodeAddedReplyMissingProperty}
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// Reply is the request-scoped presentation form of one reply row.
type Reply struct {
	ID       string
	Username string
	Date     time.Time
	Content  string
}

// NewReplyFromRow builds the reply view from a raw row, masking the
// content of soft-deleted replies.
func NewReplyFromRow(row ReplyRow) (Reply, error) {
	if row.ID == "" || row.Username == "" {
		return Reply{}, &ShapeError{Code: CodeReplyMissingProperty}
	}
	if row.Date.IsZero() {
		return Reply{}, &ShapeError{Code: CodeReplyWrongDataType}
	}

	content := row.Content
	if row.IsDelete {
		content = DeletedReplyContent
	}

	return Reply{ID: row.ID, Username: row.Username, Date: row.Date, Content: content}, nil
}

// ReplyUsecase defines the business logic contract for reply operations.
type ReplyUsecase interface {
	// Store validates the payload first, then checks the ancestry chain
	// (thread, then comment in thread) before persisting.
	Store(ctx context.Context, threadID, commentID string, p NewReplyPayload) (AddedReply, error)

	// Delete soft-deletes a reply after the availability and ownership
	// chain passes, reporting the first failing check only.
	Delete(ctx context.Context, threadID, commentID, replyID, userID string) error
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	AddReply(ctx context.Context, r NewReply) (AddedReply, error)

	// CheckReplyAvailabilityInComment returns ErrNotFound if the reply
	// doesn't exist in the given comment or was soft-deleted.
	CheckReplyAvailabilityInComment(ctx context.Context, replyID, commentID string) error

	// CheckReplyOwnership returns ErrForbidden if userID is not the
	// reply's author, ErrNotFound if the reply doesn't exist.
	CheckReplyOwnership(ctx context.Context, replyID, userID string) error

	SoftDeleteReply(ctx context.Context, replyID string) error

	// GetReplyRowsByCommentIDs fetches the flat reply rows spanning all
	// the given comments. An empty id list yields an empty slice, never
	// an error.
	GetReplyRowsByCommentIDs(ctx context.Context, commentIDs []string) ([]ReplyRow, error)
}
