package thread

import (
	"context"

	"github.com/natylliB/forum-api/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
	bloomRepo   domain.ThreadBloomRepository
	bloomWorker domain.ThreadBloomWorker
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(
	t domain.ThreadRepository,
	c domain.CommentRepository,
	r domain.ReplyRepository,
	l domain.CommentLikeRepository,
	b domain.ThreadBloomRepository,
	w domain.ThreadBloomWorker,
) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
		bloomRepo:   b,
		bloomWorker: w,
	}
}

func (s *Service) Store(ctx context.Context, p domain.NewThreadPayload) (domain.AddedThread, error) {
	newThread, err := domain.ValidateNewThread(p)
	if err != nil {
		return domain.AddedThread{}, err
	}
	added, err := s.threadRepo.AddThread(ctx, newThread)
	if err != nil {
		return domain.AddedThread{}, err
	}
	s.bloomWorker.Send(added.ID)
	return added, nil
}

// GetDetail assembles a thread with its comments, replies and like
// counts. Every comment row is fetched regardless of deletion state,
// deleted content gets masked during composition.
func (s *Service) GetDetail(ctx context.Context, threadID string) (domain.Thread, error) {
	if err := s.threadRepo.CheckThreadAvailability(ctx, threadID); err != nil {
		return domain.Thread{}, err
	}

	threadRow, err := s.threadRepo.GetThreadRow(ctx, threadID)
	if err != nil {
		return domain.Thread{}, err
	}

	commentRows, err := s.commentRepo.GetCommentRowsByThreadID(ctx, threadID)
	if err != nil {
		return domain.Thread{}, err
	}

	commentIDs := make([]string, 0, len(commentRows))
	for _, c := range commentRows {
		commentIDs = append(commentIDs, c.ID)
	}

	replyRows, err := s.replyRepo.GetReplyRowsByCommentIDs(ctx, commentIDs)
	if err != nil {
		return domain.Thread{}, err
	}

	likeRows, err := s.likeRepo.GetLikeCountsByCommentIDs(ctx, commentIDs)
	if err != nil {
		return domain.Thread{}, err
	}

	detail, err := domain.NewThreadDetail(&threadRow, commentRows, replyRows, likeRows)
	if err != nil {
		return domain.Thread{}, err
	}
	return detail.Compose()
}

// InitBloomFilter seeds the bloom filter with every existing thread id.
// Meant to run once at startup.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	ids, err := s.threadRepo.FetchIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return s.bloomRepo.BulkAdd(ctx, ids)
}
