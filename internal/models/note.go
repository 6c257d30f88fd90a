package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerNote is a free-text note attached to a customer, bounded at 512
// characters.
type CustomerNote struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID string    `gorm:"type:uuid;not null;index" json:"-"`
	Note       string    `gorm:"size:512;not null" json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (CustomerNote) TableName() string { return "customer_notes" }

func (n *CustomerNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
