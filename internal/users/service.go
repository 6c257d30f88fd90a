// Package users maintains the local mirror of auth provider user records.
// Rows are created lazily on first use and refreshed on login; the provider
// remains the source of truth for identity.
package users

import (
	"context"
	"errors"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"gorm.io/gorm"
)

// Service implements auth.UserMirror on the user store and auth provider.
type Service struct {
	store    store.UserStore
	provider auth.Provider
}

func NewService(userStore store.UserStore, provider auth.Provider) *Service {
	return &Service{store: userStore, provider: provider}
}

// Ensure returns the local user row for uid, creating it from the provider's
// record when absent. If the provider is unreachable the local row is the
// fallback; when neither side knows the subject the provider error surfaces.
func (s *Service) Ensure(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.store.Get(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile, err := s.provider.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.SyncProfile(ctx, profile)
}

// SyncProfile upserts the local mirror row from a provider profile. The
// store runs the read-apply-write in one transaction.
func (s *Service) SyncProfile(ctx context.Context, profile *auth.Profile) (*models.User, error) {
	return s.store.Upsert(ctx, profile.UID, func(user *models.User) {
		applyProfile(user, profile)
	})
}

func applyProfile(user *models.User, profile *auth.Profile) {
	user.Email = profile.Email
	user.DisplayName = profile.DisplayName
	if user.DisplayName == "" {
		user.DisplayName = "Unknown User"
	}
	user.EmailVerified = profile.EmailVerified
	user.Disabled = profile.Disabled
	if profile.PhotoURL != "" {
		photo := profile.PhotoURL
		user.PhotoURL = &photo
	}
	if profile.LastSignInAt != nil {
		user.LastSignInAt = profile.LastSignInAt
	}
}
