package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (m *commentRepository) AddComment(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	record := model.NewCommentFromDomain("comment-"+uuid.NewString(), c)

	if err := m.DB.WithContext(ctx).Create(record).Error; err != nil {
		return domain.AddedComment{}, err
	}

	return domain.NewAddedComment(record.ID, record.Content, record.Owner)
}

func (m *commentRepository) CheckCommentAvailabilityInThread(ctx context.Context, commentID, threadID string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND thread_id = ? AND is_delete = ?", commentID, threadID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *commentRepository) CheckCommentOwnership(ctx context.Context, commentID, userID string) error {
	var comment model.Comment
	err := m.DB.WithContext(ctx).Select("id, owner").First(&comment, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if comment.Owner != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (m *commentRepository) SoftDeleteComment(ctx context.Context, commentID string) error {
	result := m.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *commentRepository) GetCommentRowsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	rows := make([]domain.CommentRow, 0)
	err := m.DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.id, comments.content, comments.date, comments.is_delete, users.username").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
