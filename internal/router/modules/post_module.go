package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector-api/internal/container"
	handlers "github.com/devconnector/devconnector-api/internal/interface/http"
	"github.com/devconnector/devconnector-api/internal/interface/middleware"
	"github.com/devconnector/devconnector-api/pkg/helpers"
)

// PostModule wires the post endpoints; all of them require auth.

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.GET("/posts", m.Handler.List)
		auth.GET("/posts/:post_id", m.Handler.Get)
		auth.DELETE("/posts/:post_id", m.Handler.Delete)
		auth.PUT("/posts/like/:post_id", m.Handler.Like)
		auth.PUT("/posts/unlike/:post_id", m.Handler.Unlike)
		auth.POST("/posts/comment/:post_id", m.Handler.AddComment)
		auth.DELETE("/posts/comment/:post_id/:comment_id", m.Handler.DeleteComment)
	}
}
