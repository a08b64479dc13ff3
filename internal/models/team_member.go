package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is a person shown on the public team page.
type TeamMember struct {
	ID            string `gorm:"primaryKey" json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	OrderPosition int    `json:"order_position"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
