package domain_test

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natylliB/forum-api/domain"
)

func validNewCommentPayload() domain.NewCommentPayload {
	return domain.NewCommentPayload{
		ThreadID: "thread-123",
		Content:  faker.Sentence(),
		Owner:    "user-123",
		Date:     time.Now(),
	}
}

func TestValidateNewComment(t *testing.T) {
	t.Run("valid payload round-trips every field", func(t *testing.T) {
		p := validNewCommentPayload()

		comment, err := domain.ValidateNewComment(p)

		require.NoError(t, err)
		assert.Equal(t, p.ThreadID, comment.ThreadID)
		assert.Equal(t, p.Content, comment.Content)
		assert.Equal(t, p.Owner, comment.Owner)
		assert.Equal(t, p.Date, comment.Date)
	})

	t.Run("missing content is reported ahead of other missing properties", func(t *testing.T) {
		p := validNewCommentPayload()
		p.Content = nil
		p.Owner = nil

		_, err := domain.ValidateNewComment(p)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.CodeNewCommentContentUndefined, vErr.Code)
	})

	t.Run("content of a wrong type", func(t *testing.T) {
		p := validNewCommentPayload()
		p.Content = 42

		_, err := domain.ValidateNewComment(p)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.CodeNewCommentContentWrongDataType, vErr.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		p := validNewCommentPayload()
		p.Content = ""

		_, err := domain.ValidateNewComment(p)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.CodeNewCommentContentEmpty, vErr.Code)
	})

	t.Run("missing unrelated property surfaces the generic code", func(t *testing.T) {
		p := validNewCommentPayload()
		p.Owner = nil

		_, err := domain.ValidateNewComment(p)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.CodeNewCommentMissingProperty, vErr.Code)
	})

	t.Run("wrong data type on unrelated property", func(t *testing.T) {
		p := validNewCommentPayload()
		p.Date = "yesterday"

		_, err := domain.ValidateNewComment(p)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.CodeNewCommentWrongDataType, vErr.Code)
	})
}

func TestNewAddedComment(t *testing.T) {
	added, err := domain.NewAddedComment("comment-123", "a comment", "user-123")
	require.NoError(t, err)
	assert.Equal(t, domain.AddedComment{ID: "comment-123", Content: "a comment", Owner: "user-123"}, added)

	_, err = domain.NewAddedComment("", "a comment", "user-123")
	var sErr *domain.ShapeError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, domain.CodeAddedCommentMissingProperty, sErr.Code)
}

func TestNewCommentFromRow(t *testing.T) {
	row := domain.CommentRow{
		ID:       "comment-123",
		Username: "johndoe",
		Date:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Content:  "original",
		IsDelete: false,
	}

	t.Run("keeps content of a live comment", func(t *testing.T) {
		comment, err := domain.NewCommentFromRow(row)

		require.NoError(t, err)
		assert.Equal(t, "original", comment.Content)
		assert.NotNil(t, comment.Replies)
		assert.Empty(t, comment.Replies)
		assert.Zero(t, comment.LikeCount)
	})

	t.Run("masks a soft-deleted comment at construction", func(t *testing.T) {
		deleted := row
		deleted.IsDelete = true

		comment, err := domain.NewCommentFromRow(deleted)

		require.NoError(t, err)
		assert.Equal(t, domain.DeletedCommentContent, comment.Content)
		assert.NotEqual(t, "original", comment.Content)
	})

	t.Run("missing username", func(t *testing.T) {
		bad := row
		bad.Username = ""

		_, err := domain.NewCommentFromRow(bad)

		var sErr *domain.ShapeError
		require.ErrorAs(t, err, &sErr)
		assert.Equal(t, domain.CodeCommentMissingProperty, sErr.Code)
	})

	t.Run("zero date", func(t *testing.T) {
		bad := row
		bad.Date = time.Time{}

		_, err := domain.NewCommentFromRow(bad)

		var sErr *domain.ShapeError
		require.ErrorAs(t, err, &sErr)
		assert.Equal(t, domain.CodeCommentWrongDataType, sErr.Code)
	})
}

func TestCommentSetReplies(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	newComment := func(t *testing.T) domain.Comment {
		t.Helper()
		comment, err := domain.NewCommentFromRow(domain.CommentRow{
			ID: "comment-123", Username: "johndoe", Date: base, Content: "a comment",
		})
		require.NoError(t, err)
		return comment
	}

	t.Run("sorts ascending by creation time", func(t *testing.T) {
		comment := newComment(t)
		replies := []domain.Reply{
			{ID: "reply-t2", Date: base.Add(2 * time.Minute)},
			{ID: "reply-t1", Date: base.Add(1 * time.Minute)},
			{ID: "reply-t3", Date: base.Add(3 * time.Minute)},
		}

		require.NoError(t, comment.SetReplies(replies))

		assert.Equal(t, "reply-t1", comment.Replies[0].ID)
		assert.Equal(t, "reply-t2", comment.Replies[1].ID)
		assert.Equal(t, "reply-t3", comment.Replies[2].ID)
	})

	t.Run("equal timestamps keep their relative order", func(t *testing.T) {
		comment := newComment(t)
		replies := []domain.Reply{
			{ID: "reply-a", Date: base},
			{ID: "reply-b", Date: base},
		}

		require.NoError(t, comment.SetReplies(replies))

		assert.Equal(t, "reply-a", comment.Replies[0].ID)
		assert.Equal(t, "reply-b", comment.Replies[1].ID)
	})

	t.Run("nil list is rejected and prior collection kept", func(t *testing.T) {
		comment := newComment(t)
		require.NoError(t, comment.SetReplies([]domain.Reply{{ID: "reply-1", Date: base}}))

		err := comment.SetReplies(nil)

		var cErr *domain.CompositionError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, domain.CodeCommentRepliesNotList, cErr.Code)
		require.Len(t, comment.Replies, 1)
		assert.Equal(t, "reply-1", comment.Replies[0].ID)
	})
}

func TestCommentSetLikeCount(t *testing.T) {
	comment, err := domain.NewCommentFromRow(domain.CommentRow{
		ID: "comment-123", Username: "johndoe", Date: time.Now(), Content: "a comment",
	})
	require.NoError(t, err)

	require.NoError(t, comment.SetLikeCount(2))
	assert.Equal(t, int64(2), comment.LikeCount)

	err = comment.SetLikeCount(-1)
	var cErr *domain.CompositionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, domain.CodeCommentLikeCountNegative, cErr.Code)
	assert.Equal(t, int64(2), comment.LikeCount)
}
