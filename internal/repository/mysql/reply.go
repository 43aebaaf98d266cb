package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (m *replyRepository) AddReply(ctx context.Context, r domain.NewReply) (domain.AddedReply, error) {
	record := model.NewReplyFromDomain("reply-"+uuid.NewString(), r)

	if err := m.DB.WithContext(ctx).Create(record).Error; err != nil {
		return domain.AddedReply{}, err
	}

	return domain.NewAddedReply(record.ID, record.Content, record.Owner)
}

func (m *replyRepository) CheckReplyAvailabilityInComment(ctx context.Context, replyID, commentID string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ? AND comment_id = ? AND is_delete = ?", replyID, commentID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *replyRepository) CheckReplyOwnership(ctx context.Context, replyID, userID string) error {
	var reply model.Reply
	err := m.DB.WithContext(ctx).Select("id, owner").First(&reply, "id = ?", replyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if reply.Owner != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (m *replyRepository) SoftDeleteReply(ctx context.Context, replyID string) error {
	result := m.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ?", replyID).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *replyRepository) GetReplyRowsByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.ReplyRow, error) {
	rows := make([]domain.ReplyRow, 0)
	if len(commentIDs) == 0 {
		return rows, nil
	}

	err := m.DB.WithContext(ctx).Model(&model.Reply{}).
		Select("replies.id, replies.comment_id, replies.content, replies.date, replies.is_delete, users.username").
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment_id IN ?", commentIDs).
		Order("replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
