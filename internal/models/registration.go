package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration is a public signup for a course. Email is optional; phone and
// telegram are the primary contact channels.
type Registration struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Telegram string `json:"telegram"`
	CourseID string `gorm:"index" json:"course_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
