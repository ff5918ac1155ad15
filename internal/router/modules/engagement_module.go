package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
	"github.com/triptales/triptales-api/pkg/helpers"
)

// EngagementModule wires ratings, comments, and likes. Reading comments is
// open to guests; every mutation needs a registered user.
type EngagementModule struct {
	Handler *handlers.EngagementHandler
	JWT     *helpers.JWTManager
}

func NewEngagementModule(h *handlers.EngagementHandler, jwt *helpers.JWTManager) *EngagementModule {
	return &EngagementModule{Handler: h, JWT: jwt}
}

func (m *EngagementModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/comments/:target/:id", m.Handler.ListComments)

		user := auth.Group("/")
		user.Use(middleware.RequireUser())
		{
			user.POST("/ratings", m.Handler.RatePromotion)
			user.POST("/comments", m.Handler.CreateComment)
			user.POST("/likes/toggle", m.Handler.ToggleLike)
		}
	}
}
