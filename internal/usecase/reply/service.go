package reply

import (
	"context"

	"github.com/natylliB/forum-api/domain"
)

type Service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*Service)(nil)

// NewService will create a new reply service object
func NewService(r domain.ReplyRepository, c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		replyRepo:   r,
		commentRepo: c,
		threadRepo:  t,
	}
}

// Store validates the payload before touching the ancestry chain, so a
// malformed reply reports its validation code even when the thread is
// gone. This is the opposite order of comment.Service.Store and both
// orders are part of the contract.
func (s *Service) Store(ctx context.Context, threadID, commentID string, p domain.NewReplyPayload) (domain.AddedReply, error) {
	p.CommentID = commentID
	newReply, err := domain.ValidateNewReply(p)
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.threadRepo.CheckThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.CheckCommentAvailabilityInThread(ctx, commentID, threadID); err != nil {
		return domain.AddedReply{}, err
	}

	return s.replyRepo.AddReply(ctx, newReply)
}

func (s *Service) Delete(ctx context.Context, threadID, commentID, replyID, userID string) error {
	if err := s.threadRepo.CheckThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentAvailabilityInThread(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.replyRepo.CheckReplyAvailabilityInComment(ctx, replyID, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.CheckReplyOwnership(ctx, replyID, userID); err != nil {
		return err
	}
	return s.replyRepo.SoftDeleteReply(ctx, replyID)
}
