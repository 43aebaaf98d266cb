package like

import (
	"context"

	"github.com/natylliB/forum-api/domain"
)

type Service struct {
	likeRepo    domain.CommentLikeRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentLikeUsecase = (*Service)(nil)

// NewService will create a new comment-like service object
func NewService(l domain.CommentLikeRepository, c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		likeRepo:    l,
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) Toggle(ctx context.Context, p domain.CommentLikePayload) error {
	cl, err := domain.ValidateCommentLike(p)
	if err != nil {
		return err
	}

	if err := s.threadRepo.CheckThreadAvailability(ctx, cl.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentAvailabilityInThread(ctx, cl.CommentID, cl.ThreadID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsCommentLiked(ctx, cl.CommentID, cl.UserID)
	if err != nil {
		return err
	}
	if liked {
		return s.likeRepo.DeleteCommentLike(ctx, cl.CommentID, cl.UserID)
	}
	return s.likeRepo.AddCommentLike(ctx, cl.CommentID, cl.UserID)
}
