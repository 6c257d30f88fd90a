package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

// UserMirror maintains the local copy of provider user records. Implemented
// by the users package; declared here so auth does not depend on it.
type UserMirror interface {
	Ensure(ctx context.Context, uid string) (*models.User, error)
	SyncProfile(ctx context.Context, profile *Profile) (*models.User, error)
}

const minPasswordLength = 6

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *credentialsRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Email("email", r.Email); v != nil {
		violations = append(violations, *v)
	}
	if len(r.Password) < minPasswordLength {
		violations = append(violations, httperr.FieldError{
			Field:   "password",
			Message: "Password must be at least 6 characters long",
		})
	}
	return violations
}

type tokenResponse struct {
	Message string `json:"message,omitempty"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

// HandleSignup creates the account with the auth provider, persists the
// local mirror row, and returns a custom token for immediate sign-in.
//
// The provider-side creation cannot be rolled back transactionally: if the
// local persist fails afterwards, the provider record is orphaned until the
// user's next login recreates the mirror. Known limitation.
func HandleSignup(provider Provider, mirror UserMirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		profile, err := provider.CreateUser(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrEmailExists) {
				httperr.Write(c, httperr.Conflict(httperr.CodeEmailExists, "Email already in use"))
				return
			}
			httperr.Write(c, httperr.Internal(err))
			return
		}

		if _, err := mirror.SyncProfile(ctx, profile); err != nil {
			slog.Error("signup: provider account created but local mirror failed",
				"uid", profile.UID, "error", err.Error())
			httperr.Write(c, httperr.Internal(err))
			return
		}

		token, err := provider.CustomToken(ctx, profile.UID)
		if err != nil {
			httperr.Write(c, httperr.Internal(err))
			return
		}

		c.JSON(http.StatusCreated, tokenResponse{
			Message: "User created successfully",
			UserID:  profile.UID,
			Token:   token,
		})
	}
}

// HandleLogin resolves the account by email and returns a custom token.
//
// The submitted password is not checked here: password verification is
// delegated entirely to the client-side provider SDK exchanging the custom
// token, which matches the upstream behavior this service mirrors.
func HandleLogin(provider Provider, mirror UserMirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		profile, err := provider.GetUserByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				httperr.Write(c, httperr.NotFound("User"))
				return
			}
			httperr.Write(c, httperr.Internal(err))
			return
		}

		// Keep the mirror current; a stale mirror is not worth failing login.
		if _, err := mirror.SyncProfile(ctx, profile); err != nil {
			slog.Warn("login: user mirror sync failed", "uid", profile.UID, "error", err.Error())
		}

		token, err := provider.CustomToken(ctx, profile.UID)
		if err != nil {
			httperr.Write(c, httperr.Internal(err))
			return
		}

		c.JSON(http.StatusOK, tokenResponse{UserID: profile.UID, Token: token})
	}
}

// HandleMe returns the authenticated user's profile, creating the local
// mirror row lazily if this is the first request for the subject.
func HandleMe(mirror UserMirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := mirror.Ensure(c.Request.Context(), Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "User"))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
