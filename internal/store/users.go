package store

import (
	"context"
	"errors"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert reads the row for id, applies the mutation, and writes it back,
// creating the row when absent. The read and write run in one transaction so
// a concurrent first sign-in cannot race the insert.
func (s *userStore) Upsert(ctx context.Context, id string, apply func(*models.User)) (*models.User, error) {
	user := &models.User{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(user, "id = ?", id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			*user = models.User{ID: id}
			apply(user)
			return tx.Create(user).Error
		case err != nil:
			return err
		}
		apply(user)
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
