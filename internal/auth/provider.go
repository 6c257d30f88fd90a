// Package auth handles bearer-token authentication against Firebase Auth and
// exposes the signup/login/me endpoints. The rest of the service only sees
// the Provider interface and the resolved subject id.
package auth

import (
	"context"
	"errors"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Provider failure sentinels. Callers distinguish only these two cases; every
// other provider failure is opaque.
var (
	ErrEmailExists  = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")
)

// Profile is the provider's view of a user record.
type Profile struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	Disabled      bool
	LastSignInAt  *time.Time
}

// Provider is the auth collaborator contract: token verification, account
// lookup, and account creation are all delegated to it.
type Provider interface {
	// VerifyToken checks a bearer token and returns the stable subject id.
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUser(ctx context.Context, uid string) (*Profile, error)
	GetUserByEmail(ctx context.Context, email string) (*Profile, error)
	CreateUser(ctx context.Context, email, password string) (*Profile, error)
	// CustomToken mints a sign-in token for the given subject.
	CustomToken(ctx context.Context, uid string) (string, error)
}

// FirebaseProvider implements Provider on the Firebase Admin SDK.
type FirebaseProvider struct {
	client *fbauth.Client
}

// NewFirebaseProvider initializes the Firebase app and auth client. An empty
// credentialsFile falls back to application default credentials.
func NewFirebaseProvider(ctx context.Context, credentialsFile string) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return decoded.UID, nil
}

func (p *FirebaseProvider) GetUser(ctx context.Context, uid string) (*Profile, error) {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profileFromRecord(record), nil
}

func (p *FirebaseProvider) GetUserByEmail(ctx context.Context, email string) (*Profile, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profileFromRecord(record), nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password string) (*Profile, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return profileFromRecord(record), nil
}

func (p *FirebaseProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	return p.client.CustomToken(ctx, uid)
}

func profileFromRecord(record *fbauth.UserRecord) *Profile {
	profile := &Profile{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		PhotoURL:      record.PhotoURL,
		EmailVerified: record.EmailVerified,
		Disabled:      record.Disabled,
	}
	if record.UserMetadata != nil && record.UserMetadata.LastLogInTimestamp > 0 {
		t := time.UnixMilli(record.UserMetadata.LastLogInTimestamp).UTC()
		profile.LastSignInAt = &t
	}
	return profile
}
