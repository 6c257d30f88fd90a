package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerAddress is a postal address attached to a customer. State/province
// and postal code are optional: country-specific addressing schemes vary, and
// several countries use regions or districts instead.
type CustomerAddress struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID    string    `gorm:"type:uuid;not null;index" json:"-"`
	AddressLine1  string    `gorm:"size:128;not null" json:"addressLine1"`
	AddressLine2  *string   `gorm:"size:128" json:"addressLine2,omitempty"`
	City          string    `gorm:"size:128;not null" json:"city"`
	StateProvince *string   `gorm:"size:128" json:"stateProvince,omitempty"`
	PostalCode    *string   `gorm:"size:128" json:"postalCode,omitempty"`
	Region        *string   `gorm:"size:128" json:"region,omitempty"`
	District      *string   `gorm:"size:128" json:"district,omitempty"`
	Country       string    `gorm:"size:128;not null" json:"country"`
	AddressType   *string   `gorm:"size:128" json:"addressType,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (CustomerAddress) TableName() string { return "customer_addresses" }

func (a *CustomerAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
