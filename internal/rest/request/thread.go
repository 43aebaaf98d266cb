package request

import (
	"time"

	"github.com/natylliB/forum-api/domain"
)

// Thread is the creation request body. Fields stay untyped so that an
// absent property and a property of the wrong JSON type reach the domain
// validation as distinct inputs instead of failing at bind time.
type Thread struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

// ToPayload: Request -> Domain
func (r *Thread) ToPayload(owner string, date time.Time) domain.NewThreadPayload {
	return domain.NewThreadPayload{
		Title: r.Title,
		Body:  r.Body,
		Owner: owner,
		Date:  date,
	}
}
