package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector-api/internal/container"
	handlers "github.com/devconnector/devconnector-api/internal/interface/http"
	"github.com/devconnector/devconnector-api/internal/interface/middleware"
	"github.com/devconnector/devconnector-api/pkg/helpers"
)

// AuthModule wires registration, login and the authenticated-user lookup.
// Public: POST /api/users, POST /api/auth
// Protected: GET /api/auth

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/auth", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth", m.Handler.GetUser)
	}
}
