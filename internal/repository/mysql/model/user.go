package model

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

type User struct {
	ID       string    `gorm:"primaryKey;type:varchar(50)"`
	Username string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Fullname string    `gorm:"type:varchar(100);not null"`
	Password string    `gorm:"type:varchar(100);not null"`
	Date     time.Time `gorm:"type:datetime;not null"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Password: u.Password,
		Date:     u.Date,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Username: m.Username,
		Fullname: m.Fullname,
		Password: m.Password,
		Date:     m.Date,
	}
}
