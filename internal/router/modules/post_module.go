package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
	"github.com/triptales/triptales-api/pkg/helpers"
)

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
		// Guests can read posts, only registered users write them
		auth.GET("/posts", m.Handler.List)
		auth.GET("/posts/:id", m.Handler.GetByID)

		user := auth.Group("/")
		user.Use(middleware.RequireUser())
		{
			user.POST("/posts", m.Handler.Create)
			uploadLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil)
			user.POST("/posts/upload-image", uploadLimiter, m.Handler.UploadImage)
		}
	}
}
