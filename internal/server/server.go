// Package server is the composition root: it wires configuration, the
// database, the auth provider, the stores, and every route into one engine.
package server

import (
	"log/slog"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/config"
	"github.com/clienthub/backend/internal/customers"
	"github.com/clienthub/backend/internal/health"
	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/users"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the router needs, assembled in main.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       *gorm.DB
	Provider auth.Provider
	Stores   *store.Stores
	Users    *users.Service
}

// NewRouter builds the engine with all middleware and routes attached.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(deps.Logger), Recovery(deps.Logger))

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, err
	}
	r.GET("/health", health.Handler(sqlDB))

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", auth.HandleSignup(deps.Provider, deps.Users))
	authGroup.POST("/login", auth.HandleLogin(deps.Provider, deps.Users))
	authGroup.GET("/me", auth.RequireAuth(deps.Provider), auth.HandleMe(deps.Users))

	authed := r.Group("", auth.RequireAuth(deps.Provider))
	customers.Register(authed, deps.Stores, deps.Users)
	customers.RegisterReminderList(authed, deps.Stores.Reminders)

	r.NoRoute(func(c *gin.Context) {
		httperr.Write(c, httperr.NotFound("Route"))
	})

	return r, nil
}
