package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/natylliB/forum-api/domain"
)

func TestCheckCommentAvailabilityInThread(t *testing.T) {
	t.Run("soft-deleted comments count as absent", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE id = ? AND thread_id = ? AND is_delete = ?")).
			WithArgs("comment-123", "thread-123", false).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

		err := repo.CheckCommentAvailabilityInThread(context.Background(), "comment-123", "thread-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("present", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments`")).
			WithArgs("comment-123", "thread-123", false).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

		assert.NoError(t, repo.CheckCommentAvailabilityInThread(context.Background(), "comment-123", "thread-123"))
	})
}

func TestCheckCommentOwnership(t *testing.T) {
	t.Run("owner passes", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner FROM `comments` WHERE id = ?")).
			WithArgs("comment-123", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner"}).AddRow("comment-123", "user-123"))

		assert.NoError(t, repo.CheckCommentOwnership(context.Background(), "comment-123", "user-123"))
	})

	t.Run("someone else is refused", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner FROM `comments` WHERE id = ?")).
			WithArgs("comment-123", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner"}).AddRow("comment-123", "user-123"))

		err := repo.CheckCommentOwnership(context.Background(), "comment-123", "user-456")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown comment is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner FROM `comments` WHERE id = ?")).
			WithArgs("comment-xxx", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner"}))

		err := repo.CheckCommentOwnership(context.Background(), "comment-xxx", "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSoftDeleteComment(t *testing.T) {
	t.Run("flips the flag", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `comments` SET `is_delete`=? WHERE id = ?")).
			WithArgs(true, "comment-123").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDeleteComment(context.Background(), "comment-123"))
	})

	t.Run("no matching row is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `comments`")).
			WithArgs(true, "comment-xxx").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDeleteComment(context.Background(), "comment-xxx"), domain.ErrNotFound)
	})
}

func TestGetCommentRowsByThreadID(t *testing.T) {
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("fetches all rows, deleted ones included", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT comments.id, comments.content, comments.date, comments.is_delete, users.username").
			WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "content", "date", "is_delete", "username"}).
				AddRow("comment-1", "first", base, false, "dicoding").
				AddRow("comment-2", "second", base.Add(time.Minute), true, "johndoe"))

		rows, err := repo.GetCommentRowsByThreadID(context.Background(), "thread-123")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, domain.CommentRow{
			ID:       "comment-1",
			Username: "dicoding",
			Date:     base,
			Content:  "first",
			IsDelete: false,
		}, rows[0])
		assert.True(t, rows[1].IsDelete)
	})

	t.Run("a thread without comments yields an empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT comments.id, comments.content").
			WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "content", "date", "is_delete", "username"}))

		rows, err := repo.GetCommentRowsByThreadID(context.Background(), "thread-123")

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
