package cache

import "time"

// DataWithLogicalExpire wraps a cached value with a logical expiry that
// is independent of the key's physical TTL. Readers treat a logically
// expired entry as a miss and rebuild it, while the physical TTL keeps
// the key from lingering forever.
type DataWithLogicalExpire struct {
	Data      any       `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *DataWithLogicalExpire) IsLogicalExpired() bool {
	return time.Now().After(d.ExpireAt)
}

func NewDataWithLogicalExpire(data any, ttl time.Duration) *DataWithLogicalExpire {
	now := time.Now()
	return &DataWithLogicalExpire{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
