package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/natylliB/forum-api/domain"
)

// threadRepository coordinates the database with the thread-id bloom
// filter so existence checks can reject unknown ids without a query.
type threadRepository struct {
	db    domain.ThreadDBRepository
	bloom domain.ThreadBloomRepository
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db domain.ThreadDBRepository, bloom domain.ThreadBloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		bloom: bloom,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, t domain.NewThread) (domain.AddedThread, error) {
	return r.db.AddThread(ctx, t)
}

func (r *threadRepository) CheckThreadAvailability(ctx context.Context, threadID string) error {
	exists, err := r.bloom.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.ErrNotFound
	}
	if err != nil {
		// Filter unavailable, fall through to the database.
		logrus.Warnf("bloom filter lookup failed: %v", err)
	}

	return r.db.CheckThreadAvailability(ctx, threadID)
}

func (r *threadRepository) GetThreadRow(ctx context.Context, threadID string) (domain.ThreadRow, error) {
	return r.db.GetThreadRow(ctx, threadID)
}

func (r *threadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	return r.db.FetchIDs(ctx)
}
