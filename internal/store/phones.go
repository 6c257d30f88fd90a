package store

import (
	"context"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

type phoneStore struct {
	db     *gorm.DB
	unique bool
}

func (s *phoneStore) ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerPhone, error) {
	var phones []models.CustomerPhone
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&phones).Error
	if err != nil {
		return nil, err
	}
	return phones, nil
}

func (s *phoneStore) Create(ctx context.Context, phone *models.CustomerPhone) error {
	if s.unique {
		var count int64
		err := s.db.WithContext(ctx).
			Model(&models.CustomerPhone{}).
			Where("customer_id = ? AND phone_number = ?", phone.CustomerID, phone.PhoneNumber).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicatePhone
		}
	}
	return s.db.WithContext(ctx).Create(phone).Error
}

func (s *phoneStore) Get(ctx context.Context, id, customerID string) (*models.CustomerPhone, error) {
	var phone models.CustomerPhone
	err := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&phone).Error
	if err != nil {
		return nil, err
	}
	return &phone, nil
}

func (s *phoneStore) Update(ctx context.Context, phone *models.CustomerPhone) error {
	return s.db.WithContext(ctx).
		Model(phone).
		Select("PhoneNumber", "Designation").
		Updates(phone).Error
}

func (s *phoneStore) Delete(ctx context.Context, phone *models.CustomerPhone) error {
	return s.db.WithContext(ctx).Delete(phone).Error
}
