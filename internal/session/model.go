package session

import "time"

// Session is one contiguous span of play. A user has at most one session
// with a null EndTime; the partial unique index backs that invariant even
// when two starts race past the service-level check.
type Session struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index;uniqueIndex:idx_sessions_one_active,where:end_time IS NULL" json:"userId"`
	StartTime time.Time  `gorm:"not null" json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}
