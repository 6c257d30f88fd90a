package store

import (
	"context"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

type addressStore struct {
	db *gorm.DB
}

func (s *addressStore) ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerAddress, error) {
	var addresses []models.CustomerAddress
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *addressStore) Create(ctx context.Context, address *models.CustomerAddress) error {
	return s.db.WithContext(ctx).Create(address).Error
}

func (s *addressStore) Get(ctx context.Context, id, customerID string) (*models.CustomerAddress, error) {
	var address models.CustomerAddress
	err := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *addressStore) Update(ctx context.Context, address *models.CustomerAddress) error {
	return s.db.WithContext(ctx).
		Model(address).
		Select("AddressLine1", "AddressLine2", "City", "StateProvince",
			"PostalCode", "Region", "District", "Country", "AddressType").
		Updates(address).Error
}

func (s *addressStore) Delete(ctx context.Context, address *models.CustomerAddress) error {
	return s.db.WithContext(ctx).Delete(address).Error
}
