package model

type CommentLike struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	CommentID string `gorm:"column:comment_id;type:varchar(50);not null"`
	Owner     string `gorm:"column:owner;type:varchar(50);not null"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
