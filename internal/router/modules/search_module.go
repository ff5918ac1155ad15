package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triptales/triptales-api/internal/container"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/interface/middleware"
)

type SearchModule struct {
	Handler *handlers.SearchHandler
}

func NewSearchModule(h *handlers.SearchHandler) *SearchModule {
	return &SearchModule{Handler: h}
}

func (m *SearchModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/search", rl, m.Handler.Search)
}
