package request

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

// Comment is the creation request body, untyped for the same reason as
// request.Thread.
type Comment struct {
	Content any `json:"content"`
}

// ToPayload: Request -> Domain
func (r *Comment) ToPayload(owner string, date time.Time) domain.NewCommentPayload {
	return domain.NewCommentPayload{
		Content: r.Content,
		Owner:   owner,
		Date:    date,
	}
}
