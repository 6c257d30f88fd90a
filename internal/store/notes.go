package store

import (
	"context"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

type noteStore struct {
	db *gorm.DB
}

func (s *noteStore) ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerNote, error) {
	var notes []models.CustomerNote
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *noteStore) Create(ctx context.Context, note *models.CustomerNote) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *noteStore) Get(ctx context.Context, id, customerID string) (*models.CustomerNote, error) {
	var note models.CustomerNote
	err := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *noteStore) Update(ctx context.Context, note *models.CustomerNote) error {
	return s.db.WithContext(ctx).
		Model(note).
		Select("Note").
		Updates(note).Error
}

func (s *noteStore) Delete(ctx context.Context, note *models.CustomerNote) error {
	return s.db.WithContext(ctx).Delete(note).Error
}
