package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Priorities lists the accepted priority values in ascending order of urgency.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// CustomerReminder is a dated follow-up attached to a customer. UserID is
// denormalized from the owning customer so the cross-customer reminder
// listing can query by owner directly. A nil DateCompleted means the reminder
// is still open.
type CustomerReminder struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID    string     `gorm:"type:uuid;not null;index" json:"customerId"`
	UserID        string     `gorm:"not null;index" json:"-"`
	Description   *string    `json:"description,omitempty"`
	DueDate       time.Time  `gorm:"not null;index" json:"dueDate"`
	DateCompleted *time.Time `gorm:"index" json:"dateCompleted"`
	Priority      string     `gorm:"not null;default:'medium'" json:"priority"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Customer *CustomerSummary `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// CustomerSummary is the owning customer's identity, embedded in reminder
// listings when the caller asks for it. It reads the customers table but
// carries only the identifying columns.
type CustomerSummary struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (CustomerSummary) TableName() string { return "customers" }

func (CustomerReminder) TableName() string { return "customer_reminders" }

func (r *CustomerReminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	return nil
}
