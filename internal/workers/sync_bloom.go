package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/natylliB/forum-api/domain"
)

type syncBloomWorker struct {
	bloomRepo domain.ThreadBloomRepository
	ch        chan string
}

var _ domain.ThreadBloomWorker = (*syncBloomWorker)(nil)

func NewSyncBloomWorker(b domain.ThreadBloomRepository) *syncBloomWorker {
	return &syncBloomWorker{
		bloomRepo: b,
		ch:        make(chan string, 1024),
	}
}

// Send enqueues a freshly created thread id for the bloom filter. It
// never blocks: a full queue only delays the fast-path rejection, the
// database check stays authoritative.
func (s *syncBloomWorker) Send(threadID string) {
	select {
	case s.ch <- threadID:
	default:
		logrus.Info("syncBloomWorker's channel is full, id dropped")
	}
}

func (s *syncBloomWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]string, 0, batchSize)
	for {
		select {
		case id := <-s.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]string, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]string, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down syncBloomWorker, flushing remaining ids...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *syncBloomWorker) flush(ctx context.Context, batch []string) {
	if len(batch) == 0 {
		return
	}
	if err := s.bloomRepo.BulkAdd(ctx, batch); err != nil {
		logrus.Errorf("failed to add thread ids to bloom filter: %v", err)
	}
}
