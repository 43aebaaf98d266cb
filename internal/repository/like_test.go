package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natylliB/forum-api/domain"
)

// --- Fakes ---

type fakeLikeDB struct {
	counts    map[string]int64
	liked     map[string]bool
	countsErr error

	countQueries int
}

func newFakeLikeDB() *fakeLikeDB {
	return &fakeLikeDB{
		counts: map[string]int64{},
		liked:  map[string]bool{},
	}
}

func (f *fakeLikeDB) IsCommentLiked(_ context.Context, commentID, userID string) (bool, error) {
	return f.liked[commentID+"/"+userID], nil
}

func (f *fakeLikeDB) AddCommentLike(_ context.Context, commentID, userID string) error {
	f.liked[commentID+"/"+userID] = true
	f.counts[commentID]++
	return nil
}

func (f *fakeLikeDB) DeleteCommentLike(_ context.Context, commentID, userID string) error {
	delete(f.liked, commentID+"/"+userID)
	f.counts[commentID]--
	return nil
}

func (f *fakeLikeDB) GetLikeCountsByCommentIDs(_ context.Context, commentIDs []string) ([]domain.LikeCountRow, error) {
	f.countQueries++
	if f.countsErr != nil {
		return nil, f.countsErr
	}
	rows := make([]domain.LikeCountRow, 0, len(commentIDs))
	for _, id := range commentIDs {
		if count := f.counts[id]; count > 0 {
			rows = append(rows, domain.LikeCountRow{CommentID: id, LikeCount: count})
		}
	}
	return rows, nil
}

type fakeLikeCache struct {
	entries map[string]int64
	getErr  error

	deleted []string
}

func newFakeLikeCache() *fakeLikeCache {
	return &fakeLikeCache{entries: map[string]int64{}}
}

func (f *fakeLikeCache) GetLikeCounts(_ context.Context, commentIDs []string) (map[string]int64, []string, error) {
	if f.getErr != nil {
		return nil, nil, f.getErr
	}
	found := map[string]int64{}
	var missing []string
	for _, id := range commentIDs {
		if count, ok := f.entries[id]; ok {
			found[id] = count
		} else {
			missing = append(missing, id)
		}
	}
	return found, missing, nil
}

func (f *fakeLikeCache) SetLikeCounts(_ context.Context, counts map[string]int64) error {
	for id, count := range counts {
		f.entries[id] = count
	}
	return nil
}

func (f *fakeLikeCache) DeleteLikeCount(_ context.Context, commentID string) error {
	delete(f.entries, commentID)
	f.deleted = append(f.deleted, commentID)
	return nil
}

// --- Tests ---

func TestGetLikeCountsByCommentIDs(t *testing.T) {
	t.Run("serves cached counts without touching the database", func(t *testing.T) {
		db := newFakeLikeDB()
		cache := newFakeLikeCache()
		cache.entries["comment-1"] = 2
		cache.entries["comment-2"] = 0
		repo := NewCommentLikeRepository(db, cache)

		rows, err := repo.GetLikeCountsByCommentIDs(context.Background(), []string{"comment-1", "comment-2"})

		require.NoError(t, err)
		assert.Equal(t, []domain.LikeCountRow{{CommentID: "comment-1", LikeCount: 2}}, rows)
		assert.Zero(t, db.countQueries)
	})

	t.Run("rebuilds missing counts from the database and refills the cache", func(t *testing.T) {
		db := newFakeLikeDB()
		db.counts["comment-1"] = 3
		cache := newFakeLikeCache()
		repo := NewCommentLikeRepository(db, cache)

		rows, err := repo.GetLikeCountsByCommentIDs(context.Background(), []string{"comment-1", "comment-2"})

		require.NoError(t, err)
		assert.Equal(t, []domain.LikeCountRow{{CommentID: "comment-1", LikeCount: 3}}, rows)
		assert.Equal(t, 1, db.countQueries)
		// Zero counts are cached too, so the next read is a full hit.
		assert.Equal(t, int64(3), cache.entries["comment-1"])
		assert.Equal(t, int64(0), cache.entries["comment-2"])

		_, err = repo.GetLikeCountsByCommentIDs(context.Background(), []string{"comment-1", "comment-2"})
		require.NoError(t, err)
		assert.Equal(t, 1, db.countQueries)
	})

	t.Run("falls back to the database when the cache read fails", func(t *testing.T) {
		db := newFakeLikeDB()
		db.counts["comment-1"] = 1
		cache := newFakeLikeCache()
		cache.getErr = errors.New("connection refused")
		repo := NewCommentLikeRepository(db, cache)

		rows, err := repo.GetLikeCountsByCommentIDs(context.Background(), []string{"comment-1"})

		require.NoError(t, err)
		assert.Equal(t, []domain.LikeCountRow{{CommentID: "comment-1", LikeCount: 1}}, rows)
		assert.Equal(t, 1, db.countQueries)
	})

	t.Run("propagates a database failure on rebuild", func(t *testing.T) {
		db := newFakeLikeDB()
		db.countsErr = errors.New("mysql is down")
		repo := NewCommentLikeRepository(db, newFakeLikeCache())

		_, err := repo.GetLikeCountsByCommentIDs(context.Background(), []string{"comment-1"})

		assert.Error(t, err)
	})

	t.Run("returns an empty slice for no ids", func(t *testing.T) {
		db := newFakeLikeDB()
		repo := NewCommentLikeRepository(db, newFakeLikeCache())

		rows, err := repo.GetLikeCountsByCommentIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
		assert.Zero(t, db.countQueries)
	})
}

func TestToggleInvalidatesCache(t *testing.T) {
	t.Run("add invalidates the cached count", func(t *testing.T) {
		cache := newFakeLikeCache()
		cache.entries["comment-1"] = 1
		repo := NewCommentLikeRepository(newFakeLikeDB(), cache)

		require.NoError(t, repo.AddCommentLike(context.Background(), "comment-1", "user-123"))
		assert.Equal(t, []string{"comment-1"}, cache.deleted)
		_, ok := cache.entries["comment-1"]
		assert.False(t, ok)
	})

	t.Run("delete invalidates the cached count", func(t *testing.T) {
		db := newFakeLikeDB()
		db.liked["comment-1/user-123"] = true
		db.counts["comment-1"] = 1
		cache := newFakeLikeCache()
		cache.entries["comment-1"] = 1
		repo := NewCommentLikeRepository(db, cache)

		require.NoError(t, repo.DeleteCommentLike(context.Background(), "comment-1", "user-123"))
		assert.Equal(t, []string{"comment-1"}, cache.deleted)
	})
}
