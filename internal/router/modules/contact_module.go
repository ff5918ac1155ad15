package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
)

type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Public form endpoint, tight per-IP limit
	rl := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/contact", rl, m.Handler.Send)
}
