package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
	"github.com/triptales/triptales-api/pkg/helpers"
)

// PromotionModule wires the promotion routes.
// Reads are public; submissions require a registered (non-guest) user and
// status moderation is admin-only.
type PromotionModule struct {
	Handler *handlers.PromotionHandler
	JWT     *helpers.JWTManager
}

func NewPromotionModule(h *handlers.PromotionHandler, jwt *helpers.JWTManager) *PromotionModule {
	return &PromotionModule{Handler: h, JWT: jwt}
}

func (m *PromotionModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/promotions/getallapprovedpromotions", readLimiter, m.Handler.ListApproved)
	rg.GET("/promotions/getallpromotions", readLimiter, m.Handler.List)
	rg.GET("/promotions/getallpromotions/:id", readLimiter, m.Handler.GetByID)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/promotions/author/:author_id", m.Handler.ListByAuthor)

		// Submissions are for registered users; uploads get a tighter limit
		user := auth.Group("/")
		user.Use(middleware.RequireUser())
		{
			uploadLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil)
			user.POST("/promotions/", uploadLimiter, m.Handler.Create)
			user.PUT("/promotions/updatepromotion/:id", uploadLimiter, m.Handler.Update)
			user.DELETE("/promotions/:id", m.Handler.Delete)
		}

		// Moderation
		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PUT("/promotions/updatepromotionstatus/:id", m.Handler.UpdateStatus)
		}
	}
}
