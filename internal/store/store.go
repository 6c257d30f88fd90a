// Package store is the data access layer. Each entity gets a small interface
// implemented on GORM, so handlers receive explicit store dependencies and
// tests can substitute fakes without a live database.
//
// Every child-entity query filters by the parent customer id in addition to
// the child id, so a correctly owned customer cannot be used to reach another
// customer's children through a mismatched child id.
package store

import (
	"context"
	"errors"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicatePhone is returned by PhoneStore.Create when phone-number
// uniqueness per customer is enabled and the number already exists.
var ErrDuplicatePhone = errors.New("phone number already exists for this customer")

// UserStore persists the local mirror of auth provider user records. Upsert
// is the only write path; it runs read-apply-write in one transaction.
type UserStore interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, id string, apply func(*models.User)) (*models.User, error)
}

// CustomerStore persists customers. Reads are always scoped by owner: a
// missing customer and another user's customer are indistinguishable, both
// surface gorm.ErrRecordNotFound.
type CustomerStore interface {
	ListByOwner(ctx context.Context, userID string) ([]models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	ResolveOwned(ctx context.Context, customerID, userID string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, customer *models.Customer) error
	Search(ctx context.Context, userID, query string) ([]models.Customer, error)
}

// PhoneStore persists customer phone numbers.
type PhoneStore interface {
	ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerPhone, error)
	Create(ctx context.Context, phone *models.CustomerPhone) error
	Get(ctx context.Context, id, customerID string) (*models.CustomerPhone, error)
	Update(ctx context.Context, phone *models.CustomerPhone) error
	Delete(ctx context.Context, phone *models.CustomerPhone) error
}

// AddressStore persists customer addresses.
type AddressStore interface {
	ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerAddress, error)
	Create(ctx context.Context, address *models.CustomerAddress) error
	Get(ctx context.Context, id, customerID string) (*models.CustomerAddress, error)
	Update(ctx context.Context, address *models.CustomerAddress) error
	Delete(ctx context.Context, address *models.CustomerAddress) error
}

// NoteStore persists customer notes.
type NoteStore interface {
	ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerNote, error)
	Create(ctx context.Context, note *models.CustomerNote) error
	Get(ctx context.Context, id, customerID string) (*models.CustomerNote, error)
	Update(ctx context.Context, note *models.CustomerNote) error
	Delete(ctx context.Context, note *models.CustomerNote) error
}

// ReminderStore persists customer reminders. Reminder reads are scoped by
// customer and owner; ListByOwner and Analytics span all of a user's
// customers.
type ReminderStore interface {
	ListByCustomer(ctx context.Context, customerID, userID string) ([]models.CustomerReminder, error)
	ListByOwner(ctx context.Context, userID, status string, includeCustomer bool) ([]models.CustomerReminder, error)
	Analytics(ctx context.Context, userID string) (*ReminderAnalytics, error)
	Create(ctx context.Context, reminder *models.CustomerReminder) error
	Get(ctx context.Context, id, customerID, userID string) (*models.CustomerReminder, error)
	Update(ctx context.Context, reminder *models.CustomerReminder) error
	Delete(ctx context.Context, reminder *models.CustomerReminder) error
}

// Stores bundles the per-entity stores for injection into handlers.
type Stores struct {
	Users     UserStore
	Customers CustomerStore
	Phones    PhoneStore
	Addresses AddressStore
	Notes     NoteStore
	Reminders ReminderStore
}

// New builds GORM-backed stores. uniquePhones toggles the per-customer
// phone-number uniqueness invariant.
func New(db *gorm.DB, uniquePhones bool) *Stores {
	return &Stores{
		Users:     &userStore{db: db},
		Customers: &customerStore{db: db, uniquePhones: uniquePhones},
		Phones:    &phoneStore{db: db, unique: uniquePhones},
		Addresses: &addressStore{db: db},
		Notes:     &noteStore{db: db},
		Reminders: &reminderStore{db: db},
	}
}
