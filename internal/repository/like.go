package repository

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/natylliB/forum-api/domain"
)

// commentLikeRepository coordinates the database with the like-count
// cache. Counts are served cache-first; misses are rebuilt from the
// database behind a singleflight group so concurrent reads of a hot
// thread do not stampede the GROUP BY query.
type commentLikeRepository struct {
	db           domain.CommentLikeDBRepository
	cache        domain.CommentLikeCache
	rebuildGroup singleflight.Group
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db domain.CommentLikeDBRepository, cache domain.CommentLikeCache) *commentLikeRepository {
	return &commentLikeRepository{
		db:    db,
		cache: cache,
	}
}

func (r *commentLikeRepository) IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error) {
	return r.db.IsCommentLiked(ctx, commentID, userID)
}

func (r *commentLikeRepository) AddCommentLike(ctx context.Context, commentID, userID string) error {
	if err := r.db.AddCommentLike(ctx, commentID, userID); err != nil {
		return err
	}
	r.invalidate(ctx, commentID)
	return nil
}

func (r *commentLikeRepository) DeleteCommentLike(ctx context.Context, commentID, userID string) error {
	if err := r.db.DeleteCommentLike(ctx, commentID, userID); err != nil {
		return err
	}
	r.invalidate(ctx, commentID)
	return nil
}

func (r *commentLikeRepository) GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.LikeCountRow, error) {
	rows := make([]domain.LikeCountRow, 0, len(commentIDs))
	if len(commentIDs) == 0 {
		return rows, nil
	}

	cached, missing, err := r.cache.GetLikeCounts(ctx, commentIDs)
	if err != nil {
		logrus.Warnf("like-count cache read failed: %v", err)
		cached = map[string]int64{}
		missing = commentIDs
	}

	if len(missing) > 0 {
		rebuilt, err := r.rebuildCounts(ctx, missing)
		if err != nil {
			return nil, err
		}
		for id, count := range rebuilt {
			cached[id] = count
		}
	}

	for _, id := range commentIDs {
		if count := cached[id]; count > 0 {
			rows = append(rows, domain.LikeCountRow{CommentID: id, LikeCount: count})
		}
	}
	return rows, nil
}

func (r *commentLikeRepository) invalidate(ctx context.Context, commentID string) {
	if err := r.cache.DeleteLikeCount(ctx, commentID); err != nil {
		logrus.Warnf("failed to invalidate like count of %s: %v", commentID, err)
	}
}

// rebuildCounts fetches the counts of the given comments from the
// database and refills the cache. Zero counts are cached too so absent
// rows do not miss forever.
func (r *commentLikeRepository) rebuildCounts(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	key := strings.Join(commentIDs, ",")
	res, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		dbRows, err := r.db.GetLikeCountsByCommentIDs(ctx, commentIDs)
		if err != nil {
			return nil, err
		}

		counts := make(map[string]int64, len(commentIDs))
		for _, id := range commentIDs {
			counts[id] = 0
		}
		for _, row := range dbRows {
			counts[row.CommentID] = row.LikeCount
		}

		if err := r.cache.SetLikeCounts(ctx, counts); err != nil {
			logrus.Warnf("failed to refill like-count cache: %v", err)
		}
		return counts, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(map[string]int64), nil
}
