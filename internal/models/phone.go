package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerPhone is a phone number attached to a customer. Whether a customer
// may hold the same number twice is a configurable invariant enforced at the
// store layer (see store.PhoneStore).
type CustomerPhone struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  string    `gorm:"type:uuid;not null;index" json:"-"`
	PhoneNumber string    `gorm:"not null" json:"phoneNumber"`
	Designation string    `gorm:"not null" json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CustomerPhone) TableName() string { return "customer_phones" }

func (p *CustomerPhone) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
