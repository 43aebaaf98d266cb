package response

import "github.com/natylliB/forum-api/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

type Comment struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	Replies   []Reply `json:"replies"`
	LikeCount int64   `json:"likeCount"`
}

type Reply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewThreadFromDomain: Domain -> Response. Comment and reply lists are
// always arrays in the body, never null.
func NewThreadFromDomain(t *domain.Thread) Thread {
	comments := make([]Comment, 0, len(t.Comments))
	for i := range t.Comments {
		comments = append(comments, newCommentFromDomain(&t.Comments[i]))
	}
	return Thread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date.Format(DateTimeFormat),
		Username: t.Username,
		Comments: comments,
	}
}

func newCommentFromDomain(c *domain.Comment) Comment {
	replies := make([]Reply, 0, len(c.Replies))
	for _, r := range c.Replies {
		replies = append(replies, Reply{
			ID:       r.ID,
			Content:  r.Content,
			Date:     r.Date.Format(DateTimeFormat),
			Username: r.Username,
		})
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date.Format(DateTimeFormat),
		Content:   c.Content,
		Replies:   replies,
		LikeCount: c.LikeCount,
	}
}
