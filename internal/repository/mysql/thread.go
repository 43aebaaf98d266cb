package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB *gorm.DB
}

var _ domain.ThreadDBRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{
		DB: db,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, t domain.NewThread) (domain.AddedThread, error) {
	record := model.NewThreadFromDomain("thread-"+uuid.NewString(), t)

	if err := m.DB.WithContext(ctx).Create(record).Error; err != nil {
		return domain.AddedThread{}, err
	}

	return domain.NewAddedThread(record.ID, record.Title, record.Owner)
}

func (m *threadRepository) CheckThreadAvailability(ctx context.Context, threadID string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).
		Where("id = ?", threadID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *threadRepository) GetThreadRow(ctx context.Context, threadID string) (domain.ThreadRow, error) {
	var row domain.ThreadRow
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Scan(&row).Error
	if err != nil {
		return domain.ThreadRow{}, err
	}
	if row.ID == "" {
		return domain.ThreadRow{}, domain.ErrNotFound
	}
	return row, nil
}

func (m *threadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
