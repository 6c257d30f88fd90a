package store

import (
	"context"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

type customerStore struct {
	db           *gorm.DB
	uniquePhones bool
}

func (s *customerStore) ListByOwner(ctx context.Context, userID string) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Phones").
		Preload("Addresses").
		Preload("Notes").
		Order("last_name ASC, first_name ASC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Create persists the customer together with any nested phones and addresses
// in one transaction. The (email, user_id) unique index is the final arbiter
// for duplicates; concurrent inserts surface as a unique violation here.
// Nested phones go through the same uniqueness invariant as single phone
// inserts: with uniqueness on, a payload repeating a number is rejected.
func (s *customerStore) Create(ctx context.Context, customer *models.Customer) error {
	if s.uniquePhones {
		seen := make(map[string]struct{}, len(customer.Phones))
		for _, p := range customer.Phones {
			if _, dup := seen[p.PhoneNumber]; dup {
				return ErrDuplicatePhone
			}
			seen[p.PhoneNumber] = struct{}{}
		}
	}
	return s.db.WithContext(ctx).Create(customer).Error
}

// ResolveOwned looks the customer up by id and owner in a single query so
// that found-but-not-yours and not-found are indistinguishable.
func (s *customerStore) ResolveOwned(ctx context.Context, customerID, userID string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", customerID, userID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerStore) Update(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).
		Model(customer).
		Select("FirstName", "LastName", "Email").
		Updates(customer).Error
}

func (s *customerStore) Delete(ctx context.Context, customer *models.Customer) error {
	// Children are removed by the ON DELETE CASCADE foreign keys.
	return s.db.WithContext(ctx).Delete(customer).Error
}

func (s *customerStore) Search(ctx context.Context, userID, query string) ([]models.Customer, error) {
	sql, args := buildSearchQuery(userID, query)
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
