package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/natylliB/forum-api/domain"
)

const (
	KeyThreadBloom = "bloom:thread:ids"
)

type threadBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.ThreadBloomRepository = (*threadBloomRepo)(nil)

func NewThreadBloomRepo(client *redis.Client, bitSize uint64) *threadBloomRepo {
	return &threadBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func (r *threadBloomRepo) Add(ctx context.Context, threadID string) error {
	offsets := r.getOffset(threadID)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.SetBit(ctx, KeyThreadBloom, int64(offset), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Exists reports whether threadID may be present. A false result is
// definitive; a true result still needs a database confirmation.
func (r *threadBloomRepo) Exists(ctx context.Context, threadID string) (bool, error) {
	offsets := r.getOffset(threadID)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.GetBit(ctx, KeyThreadBloom, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

func (r *threadBloomRepo) BulkAdd(ctx context.Context, threadIDs []string) error {
	if len(threadIDs) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range threadIDs {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, KeyThreadBloom, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (r *threadBloomRepo) getOffset(threadID string) []uint64 {
	data := []byte(threadID)
	offsets := make([]uint64, 3)

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}
