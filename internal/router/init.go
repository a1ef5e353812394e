package router

import (
	"github.com/devconnector/devconnector-api/internal/application"
	"github.com/devconnector/devconnector-api/internal/container"
	pginfra "github.com/devconnector/devconnector-api/internal/infrastructure/postgres"
	handlers "github.com/devconnector/devconnector-api/internal/interface/http"
	"github.com/devconnector/devconnector-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(pool)
	profiles := pginfra.NewProfileRepository(pool)
	posts := pginfra.NewPostRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetRabbitPub(), logger)
	profileSvc := application.NewProfileService(profiles, users, container.GetGithub(), logger)
	postSvc := application.NewPostService(posts, users, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), container.GetJWT()))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
