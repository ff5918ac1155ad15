package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
	"github.com/triptales/triptales-api/pkg/helpers"
)

// ReportModule wires the moderation report routes. Filing requires a
// registered user; everything else is admin-only.
type ReportModule struct {
	Handler *handlers.ReportHandler
	JWT     *helpers.JWTManager
}

func NewReportModule(h *handlers.ReportHandler, jwt *helpers.JWTManager) *ReportModule {
	return &ReportModule{Handler: h, JWT: jwt}
}

func (m *ReportModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		user := auth.Group("/")
		user.Use(middleware.RequireUser())
		user.Use(middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil))
		{
			user.POST("/reports", m.Handler.Create)
		}

		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/reports", m.Handler.List)
			admin.GET("/reports/:item_id/:item_type", m.Handler.ListByTarget)
			admin.PATCH("/reports/:id", m.Handler.UpdateStatus)
		}
	}
}
