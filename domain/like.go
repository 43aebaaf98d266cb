package domain

import "context"

// CommentLikePayload carries the raw identifiers of a like toggle request.
type CommentLikePayload struct {
	ThreadID  any
	CommentID any
	UserID    any
}

// CommentLike is a validated like toggle marker. The existence of a
// persisted row means "liked"; there is no separate state field.
type CommentLike struct {
	ThreadID  string
	CommentID string
	UserID    string
}

// ValidateCommentLike normalizes a toggle payload into a CommentLike.
func ValidateCommentLike(p CommentLikePayload) (CommentLike, error) {
	for _, prop := range []any{p.ThreadID, p.CommentID, p.UserID} {
		if prop == nil {
			return CommentLike{}, &ValidationError{Code: CodeCommentLikeMissingProperty}
		}
	}

	threadID, threadOk := p.ThreadID.(string)
	commentID, commentOk := p.CommentID.(string)
	userID, userOk := p.UserID.(string)
	if !threadOk || !commentOk || !userOk {
		return CommentLike{}, &ValidationError{Code: CodeCommentLikeWrongDataType}
	}

	return CommentLike{ThreadID: threadID, CommentID: commentID, UserID: userID}, nil
}

// LikeCountRow is a raw per-comment like-count aggregate. Comments
// without likes have no row; the view defaults their count to zero.
type LikeCountRow struct {
	CommentID string
	LikeCount int64
}

// CommentLikeUsecase defines the business logic contract for like toggles.
type CommentLikeUsecase interface {
	// Toggle likes the comment when it isn't liked by the user yet and
	// unlikes it otherwise. Two sequential toggles restore the original
	// state.
	Toggle(ctx context.Context, p CommentLikePayload) error
}

// CommentLikeRepository defines the contract for like persistence as seen
// by the usecases. The implementation may front the database with a
// like-count cache.
type CommentLikeRepository interface {
	IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error)
	AddCommentLike(ctx context.Context, commentID, userID string) error
	DeleteCommentLike(ctx context.Context, commentID, userID string) error

	// GetLikeCountsByCommentIDs returns one row per comment that has at
	// least one like. An empty id list yields an empty slice, never an
	// error.
	GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) ([]LikeCountRow, error)
}

// CommentLikeDBRepository is the database-only part of
// CommentLikeRepository, implemented by the mysql layer.
type CommentLikeDBRepository interface {
	IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error)
	AddCommentLike(ctx context.Context, commentID, userID string) error
	DeleteCommentLike(ctx context.Context, commentID, userID string) error
	GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) ([]LikeCountRow, error)
}

// CommentLikeCache caches per-comment like counts.
type CommentLikeCache interface {
	// GetLikeCounts returns the cached counts it could find and the ids
	// it could not; a logically expired entry counts as missing.
	GetLikeCounts(ctx context.Context, commentIDs []string) (map[string]int64, []string, error)

	SetLikeCounts(ctx context.Context, counts map[string]int64) error

	// DeleteLikeCount invalidates one comment's cached count, called on
	// every toggle.
	DeleteLikeCount(ctx context.Context, commentID string) error
}
