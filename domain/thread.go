package domain

import (
	"context"
	"sort"
	"time"
)

// NewThreadPayload carries the raw fields of a thread-creation request.
// Fields stay untyped so that an absent field and a field of the wrong
// type remain distinguishable violations.
type NewThreadPayload struct {
	Title any
	Body  any
	Owner any
	Date  any
}

// NewThread is a validated thread-creation record, ready to persist.
type NewThread struct {
	Title string
	Body  string
	Owner string
	Date  time.Time
}

// ValidateNewThread normalizes a creation payload into a NewThread.
// Threads use only the generic sweeps: a required-property pass first,
// then a data-type pass. Unlike comments and replies there is no
// content-specific precedence for title or body; that asymmetry is an
// intentional per-entity contract.
func ValidateNewThread(p NewThreadPayload) (NewThread, error) {
	for _, prop := range []any{p.Title, p.Body, p.Owner, p.Date} {
		if prop == nil {
			return NewThread{}, &ValidationError{Code: CodeNewThreadMissingProperty}
		}
	}

	title, titleOk := p.Title.(string)
	body, bodyOk := p.Body.(string)
	owner, ownerOk := p.Owner.(string)
	date, dateOk := p.Date.(time.Time)
	if !titleOk || !bodyOk || !ownerOk || !dateOk {
		return NewThread{}, &ValidationError{Code: CodeNewThreadWrongDataType}
	}

	return NewThread{Title: title, Body: body, Owner: owner, Date: date}, nil
}

// AddedThread is the minimal projection returned after a thread has been
// persisted.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// NewAddedThread wraps a persistence-returned thread projection. An empty
// field here means the row came back corrupt, not that the user sent bad
// input.
func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return AddedThread{}, &ShapeError{Code: CodeAddedThreadMissingProperty}
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// Thread is the request-scoped presentation form of one thread row and
// the root of a composed thread detail. It is rebuilt from fresh rows on
// every read and never cached.
type Thread struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
	Comments []Comment
}

// NewThreadFromRow builds the thread view from a raw row.
func NewThreadFromRow(row ThreadRow) (Thread, error) {
	if row.ID == "" || row.Title == "" || row.Username == "" {
		return Thread{}, &ShapeError{Code: CodeThreadMissingProperty}
	}
	if row.Date.IsZero() {
		return Thread{}, &ShapeError{Code: CodeThreadWrongDataType}
	}

	return Thread{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
		Comments: []Comment{},
	}, nil
}

// SetComments replaces the comment list with val sorted ascending by
// creation time. A nil list is a wiring defect; the prior collection is
// left untouched.
func (t *Thread) SetComments(val []Comment) error {
	if val == nil {
		return &CompositionError{Code: CodeThreadCommentsNotList}
	}

	sort.SliceStable(val, func(i, j int) bool { return val[i].Date.Before(val[j].Date) })
	t.Comments = val
	return nil
}

// ThreadUsecase defines the business logic contract for thread operations.
type ThreadUsecase interface {
	// Store validates the payload and persists a new thread.
	Store(ctx context.Context, p NewThreadPayload) (AddedThread, error)

	// GetDetail returns the fully composed thread view: comments in
	// chronological order, each with its replies and like count.
	// Returns ErrNotFound if the thread doesn't exist.
	GetDetail(ctx context.Context, threadID string) (Thread, error)

	// InitBloomFilter seeds the existence filter with every known
	// thread id. Called once at startup.
	InitBloomFilter(ctx context.Context) error
}

// ThreadRepository defines the contract for thread persistence as seen by
// the usecases. The implementation may front the database with caches.
type ThreadRepository interface {
	// AddThread persists a validated thread and returns its projection.
	AddThread(ctx context.Context, t NewThread) (AddedThread, error)

	// CheckThreadAvailability returns ErrNotFound if the thread doesn't exist.
	CheckThreadAvailability(ctx context.Context, threadID string) error

	// GetThreadRow fetches the raw thread row joined with its author's
	// username. Returns ErrNotFound if the thread doesn't exist.
	GetThreadRow(ctx context.Context, threadID string) (ThreadRow, error)

	// FetchIDs returns every thread id, used to seed the bloom filter.
	FetchIDs(ctx context.Context) ([]string, error)
}

// ThreadDBRepository is the database-only part of ThreadRepository,
// implemented by the mysql layer and coordinated with the bloom filter
// above it.
type ThreadDBRepository interface {
	AddThread(ctx context.Context, t NewThread) (AddedThread, error)
	CheckThreadAvailability(ctx context.Context, threadID string) error
	GetThreadRow(ctx context.Context, threadID string) (ThreadRow, error)
	FetchIDs(ctx context.Context) ([]string, error)
}

// ThreadBloomRepository is a probabilistic index of existing thread ids.
// Exists == false means the thread definitely does not exist; true means
// it must still be confirmed against the database.
type ThreadBloomRepository interface {
	Add(ctx context.Context, threadID string) error
	Exists(ctx context.Context, threadID string) (bool, error)
	BulkAdd(ctx context.Context, threadIDs []string) error
}

// ThreadBloomWorker feeds freshly created thread ids to the bloom filter
// in batches.
type ThreadBloomWorker interface {
	Start(ctx context.Context)

	// Send enqueues a thread id; it never blocks the caller.
	Send(threadID string)
}
