package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/repository/mysql/model"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeDBRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

func (m *commentLikeRepository) IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ? AND owner = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *commentLikeRepository) AddCommentLike(ctx context.Context, commentID, userID string) error {
	record := model.CommentLike{
		ID:        "comment_like-" + uuid.NewString(),
		CommentID: commentID,
		Owner:     userID,
	}
	return m.DB.WithContext(ctx).Create(&record).Error
}

func (m *commentLikeRepository) DeleteCommentLike(ctx context.Context, commentID, userID string) error {
	return m.DB.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", commentID, userID).
		Delete(&model.CommentLike{}).Error
}

func (m *commentLikeRepository) GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.LikeCountRow, error) {
	rows := make([]domain.LikeCountRow, 0)
	if len(commentIDs) == 0 {
		return rows, nil
	}

	err := m.DB.WithContext(ctx).Model(&model.CommentLike{}).
		Select("comment_id, COUNT(id) AS like_count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
