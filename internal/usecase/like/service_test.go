package like

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natylliB/forum-api/domain"
)

// --- Mocks ---

type mockLikeRepo struct {
	liked map[string]bool // key commentID+"/"+userID
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{liked: map[string]bool{}}
}

func (m *mockLikeRepo) IsCommentLiked(_ context.Context, commentID, userID string) (bool, error) {
	return m.liked[commentID+"/"+userID], nil
}

func (m *mockLikeRepo) AddCommentLike(_ context.Context, commentID, userID string) error {
	m.liked[commentID+"/"+userID] = true
	return nil
}

func (m *mockLikeRepo) DeleteCommentLike(_ context.Context, commentID, userID string) error {
	delete(m.liked, commentID+"/"+userID)
	return nil
}

func (m *mockLikeRepo) GetLikeCountsByCommentIDs(_ context.Context, _ []string) ([]domain.LikeCountRow, error) {
	return []domain.LikeCountRow{}, nil
}

type mockCommentRepo struct {
	checkInThreadFunc func(commentID, threadID string) error
}

func (m *mockCommentRepo) AddComment(_ context.Context, c domain.NewComment) (domain.AddedComment, error) {
	return domain.NewAddedComment("comment-123", c.Content, c.Owner)
}

func (m *mockCommentRepo) CheckCommentAvailabilityInThread(_ context.Context, commentID, threadID string) error {
	if m.checkInThreadFunc != nil {
		return m.checkInThreadFunc(commentID, threadID)
	}
	return nil
}

func (m *mockCommentRepo) CheckCommentOwnership(_ context.Context, _, _ string) error { return nil }
func (m *mockCommentRepo) SoftDeleteComment(_ context.Context, _ string) error        { return nil }
func (m *mockCommentRepo) GetCommentRowsByThreadID(_ context.Context, _ string) ([]domain.CommentRow, error) {
	return []domain.CommentRow{}, nil
}

type mockThreadRepo struct {
	checkFunc func(threadID string) error
}

func (m *mockThreadRepo) AddThread(_ context.Context, t domain.NewThread) (domain.AddedThread, error) {
	return domain.NewAddedThread("thread-123", t.Title, t.Owner)
}

func (m *mockThreadRepo) CheckThreadAvailability(_ context.Context, threadID string) error {
	if m.checkFunc != nil {
		return m.checkFunc(threadID)
	}
	return nil
}

func (m *mockThreadRepo) GetThreadRow(_ context.Context, threadID string) (domain.ThreadRow, error) {
	return domain.ThreadRow{}, nil
}

func (m *mockThreadRepo) FetchIDs(_ context.Context) ([]string, error) { return nil, nil }

// --- Tests ---

func TestToggle(t *testing.T) {
	payload := domain.CommentLikePayload{
		ThreadID:  "thread-123",
		CommentID: "comment-123",
		UserID:    "user-123",
	}

	t.Run("likes a comment the user has not liked yet", func(t *testing.T) {
		repo := newMockLikeRepo()
		svc := NewService(repo, &mockCommentRepo{}, &mockThreadRepo{})

		require.NoError(t, svc.Toggle(context.Background(), payload))
		assert.True(t, repo.liked["comment-123/user-123"])
	})

	t.Run("unlikes a comment the user already liked", func(t *testing.T) {
		repo := newMockLikeRepo()
		repo.liked["comment-123/user-123"] = true
		svc := NewService(repo, &mockCommentRepo{}, &mockThreadRepo{})

		require.NoError(t, svc.Toggle(context.Background(), payload))
		assert.False(t, repo.liked["comment-123/user-123"])
	})

	t.Run("two toggles restore the original state", func(t *testing.T) {
		repo := newMockLikeRepo()
		svc := NewService(repo, &mockCommentRepo{}, &mockThreadRepo{})

		require.NoError(t, svc.Toggle(context.Background(), payload))
		require.NoError(t, svc.Toggle(context.Background(), payload))
		assert.False(t, repo.liked["comment-123/user-123"])
	})

	t.Run("rejects payload missing an identifier", func(t *testing.T) {
		svc := NewService(newMockLikeRepo(), &mockCommentRepo{}, &mockThreadRepo{})

		err := svc.Toggle(context.Background(), domain.CommentLikePayload{
			ThreadID:  "thread-123",
			CommentID: "comment-123",
		})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, domain.CodeCommentLikeMissingProperty, verr.Code)
	})

	t.Run("reports a missing thread", func(t *testing.T) {
		threadRepo := &mockThreadRepo{
			checkFunc: func(threadID string) error { return domain.ErrNotFound },
		}
		svc := NewService(newMockLikeRepo(), &mockCommentRepo{}, threadRepo)

		assert.ErrorIs(t, svc.Toggle(context.Background(), payload), domain.ErrNotFound)
	})

	t.Run("reports a comment missing from the thread", func(t *testing.T) {
		commentRepo := &mockCommentRepo{
			checkInThreadFunc: func(commentID, threadID string) error { return domain.ErrNotFound },
		}
		svc := NewService(newMockLikeRepo(), commentRepo, &mockThreadRepo{})

		assert.ErrorIs(t, svc.Toggle(context.Background(), payload), domain.ErrNotFound)
	})
}
