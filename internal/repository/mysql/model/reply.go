package model

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null"`
	Date      time.Time `gorm:"type:datetime;not null"`
	IsDelete  bool      `gorm:"column:is_delete;default:false"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(id string, r domain.NewReply) *Reply {
	return &Reply{
		ID:        id,
		CommentID: r.CommentID,
		Content:   r.Content,
		Owner:     r.Owner,
		Date:      r.Date,
	}
}
