package models

import "time"

// User mirrors the Firebase Auth user record. The primary key is the
// Firebase UID, so rows are created lazily on first login or customer
// creation and are never hard-deleted by this service.
type User struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName   string     `gorm:"not null" json:"displayName"`
	EmailVerified bool       `gorm:"not null;default:false" json:"emailVerified"`
	PhotoURL      *string    `json:"photoURL,omitempty"`
	Disabled      bool       `gorm:"not null;default:false" json:"disabled"`
	LastSignInAt  *time.Time `gorm:"column:last_sign_in_at" json:"lastSignInTime,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Customers []Customer `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }
