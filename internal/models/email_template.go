package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailTemplate is a named subject/body pair with declared {{placeholder}}
// variables, selected by name when dispatching notifications.
type EmailTemplate struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"uniqueIndex" json:"name"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Variables StringList `json:"variables"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *EmailTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}
