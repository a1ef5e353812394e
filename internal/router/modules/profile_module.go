package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector-api/internal/container"
	handlers "github.com/devconnector/devconnector-api/internal/interface/http"
	"github.com/devconnector/devconnector-api/internal/interface/middleware"
	"github.com/devconnector/devconnector-api/pkg/helpers"
)

// ProfileModule wires the profile endpoints.
// Public: GET /api/profile, GET /api/profile/user/:user_id, GET /api/profile/github/:username
// Protected: GET /api/profile/me, POST /api/profile, DELETE /api/profile,
// PUT/DELETE experience and education

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	// GitHub lookups are throttled harder: every miss costs an upstream call
	githubLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/profile", publicLimiter, m.Handler.List)
	rg.GET("/profile/user/:user_id", publicLimiter, m.Handler.GetByUser)
	rg.GET("/profile/github/:username", githubLimiter, m.Handler.GithubRepos)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile/me", m.Handler.GetMe)
		auth.POST("/profile", m.Handler.Upsert)
		auth.DELETE("/profile", m.Handler.DeleteAccount)
		auth.PUT("/profile/experience", m.Handler.AddExperience)
		auth.DELETE("/profile/experience/:exp_id", m.Handler.RemoveExperience)
		auth.PUT("/profile/education", m.Handler.AddEducation)
		auth.DELETE("/profile/education/:edu_id", m.Handler.RemoveEducation)
	}
}
