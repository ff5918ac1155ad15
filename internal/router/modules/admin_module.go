package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
	"github.com/triptales/triptales-api/pkg/helpers"
)

// AdminModule wires user restriction, category management, and post
// visibility. Category listing is public; the rest is admin-only.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.ListCategories)

	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.PUT("/users/:id/restrict", m.Handler.RestrictUser)
		admin.PUT("/users/:id/unrestrict", m.Handler.UnrestrictUser)

		admin.POST("/categories", m.Handler.CreateCategory)
		admin.DELETE("/categories/:id", m.Handler.DeleteCategory)

		admin.PUT("/posts/hide/:id", m.Handler.HidePost)
		admin.PUT("/posts/unhide/:id", m.Handler.UnhidePost)
	}
}
