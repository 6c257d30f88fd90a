package users_test

import (
	"context"
	"testing"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryUserStore struct {
	users    map[string]*models.User
	getCalls int
}

func (m *memoryUserStore) Get(ctx context.Context, id string) (*models.User, error) {
	m.getCalls++
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUserStore) Upsert(ctx context.Context, id string, apply func(*models.User)) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		user = &models.User{ID: id}
		m.users[id] = user
	}
	apply(user)
	return user, nil
}

type profileProvider struct {
	profiles map[string]*auth.Profile
	calls    int
}

func (p *profileProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	return "", nil
}

func (p *profileProvider) GetUser(ctx context.Context, uid string) (*auth.Profile, error) {
	p.calls++
	if profile, ok := p.profiles[uid]; ok {
		return profile, nil
	}
	return nil, auth.ErrUserNotFound
}

func (p *profileProvider) GetUserByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	return nil, auth.ErrUserNotFound
}

func (p *profileProvider) CreateUser(ctx context.Context, email, password string) (*auth.Profile, error) {
	return nil, nil
}

func (p *profileProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	return "", nil
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()

	t.Run("local row wins without touching the provider", func(t *testing.T) {
		store := &memoryUserStore{users: map[string]*models.User{
			"uid-1": {ID: "uid-1", Email: "jon@example.com"},
		}}
		provider := &profileProvider{}
		svc := users.NewService(store, provider)

		user, err := svc.Ensure(ctx, "uid-1")

		require.NoError(t, err)
		assert.Equal(t, "jon@example.com", user.Email)
		assert.Zero(t, provider.calls)
	})

	t.Run("missing row is created from the provider record", func(t *testing.T) {
		store := &memoryUserStore{users: map[string]*models.User{}}
		provider := &profileProvider{profiles: map[string]*auth.Profile{
			"uid-2": {UID: "uid-2", Email: "new@example.com", DisplayName: "New User"},
		}}
		svc := users.NewService(store, provider)

		user, err := svc.Ensure(ctx, "uid-2")

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Contains(t, store.users, "uid-2")
	})

	t.Run("unknown on both sides surfaces the provider error", func(t *testing.T) {
		store := &memoryUserStore{users: map[string]*models.User{}}
		svc := users.NewService(store, &profileProvider{})

		_, err := svc.Ensure(ctx, "ghost")

		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}

func TestSyncProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes an existing row", func(t *testing.T) {
		store := &memoryUserStore{users: map[string]*models.User{
			"uid-1": {ID: "uid-1", Email: "old@example.com", DisplayName: "Old"},
		}}
		svc := users.NewService(store, &profileProvider{})

		user, err := svc.SyncProfile(ctx, &auth.Profile{
			UID: "uid-1", Email: "new@example.com", DisplayName: "New", EmailVerified: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.True(t, user.EmailVerified)
	})

	t.Run("blank display name gets the placeholder", func(t *testing.T) {
		store := &memoryUserStore{users: map[string]*models.User{}}
		svc := users.NewService(store, &profileProvider{})

		user, err := svc.SyncProfile(ctx, &auth.Profile{UID: "uid-3", Email: "x@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "Unknown User", user.DisplayName)
	})
}
