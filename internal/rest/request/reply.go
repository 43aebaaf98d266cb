package request

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

// Reply is the creation request body, untyped for the same reason as
// request.Thread.
type Reply struct {
	Content any `json:"content"`
}

// ToPayload: Request -> Domain
func (r *Reply) ToPayload(owner string, date time.Time) domain.NewReplyPayload {
	return domain.NewReplyPayload{
		Content: r.Content,
		Owner:   owner,
		Date:    date,
	}
}
