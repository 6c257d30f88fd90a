package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/httperr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	uid       string
	verifyErr error
	profiles  map[string]*auth.Profile // keyed by email
}

func (f *fakeProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.uid, nil
}

func (f *fakeProvider) GetUser(ctx context.Context, uid string) (*auth.Profile, error) {
	for _, p := range f.profiles {
		if p.UID == uid {
			return p, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (f *fakeProvider) GetUserByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	if p, ok := f.profiles[email]; ok {
		return p, nil
	}
	return nil, auth.ErrUserNotFound
}

func (f *fakeProvider) CreateUser(ctx context.Context, email, password string) (*auth.Profile, error) {
	if _, ok := f.profiles[email]; ok {
		return nil, auth.ErrEmailExists
	}
	return &auth.Profile{UID: f.uid, Email: email}, nil
}

func (f *fakeProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	return "custom-token-" + uid, nil
}

func newAuthedRouter(provider auth.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", auth.RequireAuth(provider), func(c *gin.Context) {
		c.String(http.StatusOK, auth.Subject(c))
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	provider := &fakeProvider{uid: "firebase-uid-1"}

	t.Run("valid token binds subject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()

		newAuthedRouter(provider).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "firebase-uid-1", w.Body.String())
	})

	// Every failure mode must produce the same generic response so callers
	// cannot distinguish missing from malformed from rejected tokens.
	failures := []struct {
		name     string
		header   string
		provider *fakeProvider
	}{
		{"missing header", "", provider},
		{"no bearer prefix", "good-token", provider},
		{"basic scheme", "Basic Zm9vOmJhcg==", provider},
		{"rejected token", "Bearer expired", &fakeProvider{verifyErr: errors.New("token expired")}},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			newAuthedRouter(tc.provider).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, httperr.CodeUnauthorized, body.Error.Code)
			assert.Equal(t, "Authentication required", body.Error.Message)
			assert.NotContains(t, w.Body.String(), "expired")
		})
	}
}
