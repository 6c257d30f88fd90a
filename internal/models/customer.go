package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer belongs to exactly one User. The (email, user_id) pair is unique:
// a user cannot hold two customers with the same email, but different users
// may each track a customer with the same email.
//
// search_vector and search_text are STORED generated columns maintained by
// Postgres (see migration 000004); the "->" tag keeps GORM from ever writing
// them.
type Customer struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index;uniqueIndex:idx_customers_email_user" json:"-"`
	FirstName string    `gorm:"size:128;not null" json:"firstName"`
	LastName  string    `gorm:"size:128;not null" json:"lastName"`
	Email     string    `gorm:"size:128;not null;uniqueIndex:idx_customers_email_user" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	SearchVector string `gorm:"->;column:search_vector" json:"-"`
	SearchText   string `gorm:"->;column:search_text" json:"-"`

	Phones    []CustomerPhone    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"phones,omitempty"`
	Addresses []CustomerAddress  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Notes     []CustomerNote     `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	Reminders []CustomerReminder `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
