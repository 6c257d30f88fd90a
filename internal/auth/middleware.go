package auth

import (
	"log/slog"
	"strings"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/gin-gonic/gin"
)

const subjectKey = "auth_subject"

// RequireAuth extracts the bearer token, verifies it against the provider,
// and binds the resolved subject id to the request context. Missing,
// malformed, expired, and revoked tokens all produce the same generic 401 so
// verification internals never leak to the caller.
func RequireAuth(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httperr.Write(c, httperr.Unauthenticated(nil))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		uid, err := provider.VerifyToken(c.Request.Context(), token)
		if err != nil {
			slog.Debug("token verification failed", "error", err.Error())
			httperr.Write(c, httperr.Unauthenticated(err))
			return
		}

		c.Set(subjectKey, uid)
		c.Next()
	}
}

// Subject returns the authenticated subject id bound by RequireAuth, or ""
// when the request is unauthenticated.
func Subject(c *gin.Context) string {
	return c.GetString(subjectKey)
}
