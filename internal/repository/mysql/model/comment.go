package model

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;type:varchar(50)"`
	ThreadID string    `gorm:"column:thread_id;type:varchar(50);not null"`
	Content  string    `gorm:"type:text;not null"`
	Owner    string    `gorm:"column:owner;type:varchar(50);not null"`
	Date     time.Time `gorm:"type:datetime;not null"`
	IsDelete bool      `gorm:"column:is_delete;default:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(id string, c domain.NewComment) *Comment {
	return &Comment{
		ID:       id,
		ThreadID: c.ThreadID,
		Content:  c.Content,
		Owner:    c.Owner,
		Date:     c.Date,
	}
}
