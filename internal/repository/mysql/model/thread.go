package model

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Title string    `gorm:"type:varchar(255);not null"`
	Body  string    `gorm:"type:text;not null"`
	Owner string    `gorm:"column:owner;type:varchar(50);not null"`
	Date  time.Time `gorm:"type:datetime;not null"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(id string, t domain.NewThread) *Thread {
	return &Thread{
		ID:    id,
		Title: t.Title,
		Body:  t.Body,
		Owner: t.Owner,
		Date:  t.Date,
	}
}
