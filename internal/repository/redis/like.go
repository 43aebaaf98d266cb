package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/repository/cache"
)

const (
	KeyCommentLikes = "comment:likes:%s"

	// likeCountLogicalTTL bounds how stale a served count may get;
	// the physical TTL just keeps dead keys from piling up.
	likeCountLogicalTTL  = 5 * time.Minute
	likeCountPhysicalTTL = 30 * time.Minute
)

type commentLikeCache struct {
	client *redis.Client
}

var _ domain.CommentLikeCache = (*commentLikeCache)(nil)

func NewCommentLikeCache(client *redis.Client) *commentLikeCache {
	return &commentLikeCache{
		client,
	}
}

func (c *commentLikeCache) GetLikeCounts(ctx context.Context, commentIDs []string) (map[string]int64, []string, error) {
	counts := make(map[string]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil, nil
	}

	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = fmt.Sprintf(KeyCommentLikes, id)
	}

	jsonList, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	var missing []string
	for i, val := range jsonList {
		str, ok := val.(string)
		if !ok {
			missing = append(missing, commentIDs[i])
			continue
		}

		var entry cache.DataWithLogicalExpire
		if err := json.Unmarshal([]byte(str), &entry); err != nil || entry.IsLogicalExpired() {
			missing = append(missing, commentIDs[i])
			continue
		}

		count, ok := entry.Data.(float64)
		if !ok {
			missing = append(missing, commentIDs[i])
			continue
		}
		counts[commentIDs[i]] = int64(count)
	}

	return counts, missing, nil
}

func (c *commentLikeCache) SetLikeCounts(ctx context.Context, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for id, count := range counts {
		data, err := json.Marshal(cache.NewDataWithLogicalExpire(count, likeCountLogicalTTL))
		if err != nil {
			return err
		}
		pipe.Set(ctx, fmt.Sprintf(KeyCommentLikes, id), data, likeCountPhysicalTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *commentLikeCache) DeleteLikeCount(ctx context.Context, commentID string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyCommentLikes, commentID)).Err()
}
