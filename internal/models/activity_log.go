package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is an append-only audit entry. UserID is nil for
// system-originated events such as email dispatch attempts.
type ActivityLog struct {
	ID      string  `gorm:"primaryKey" json:"id"`
	UserID  *string `json:"user_id"`
	Action  string  `gorm:"index" json:"action"`
	Details JSONMap `json:"details"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}
