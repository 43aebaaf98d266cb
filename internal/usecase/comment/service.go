package comment

import (
	"context"

	"github.com/natylliB/forum-api/domain"
)

type Service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		commentRepo: c,
		threadRepo:  t,
	}
}

// Store checks the thread first so a comment on a missing thread fails
// with ErrNotFound even when the payload itself is invalid.
func (s *Service) Store(ctx context.Context, threadID string, p domain.NewCommentPayload) (domain.AddedComment, error) {
	if err := s.threadRepo.CheckThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	p.ThreadID = threadID
	newComment, err := domain.ValidateNewComment(p)
	if err != nil {
		return domain.AddedComment{}, err
	}

	return s.commentRepo.AddComment(ctx, newComment)
}

func (s *Service) Delete(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.threadRepo.CheckThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentAvailabilityInThread(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentOwnership(ctx, commentID, userID); err != nil {
		return err
	}
	return s.commentRepo.SoftDeleteComment(ctx, commentID)
}
