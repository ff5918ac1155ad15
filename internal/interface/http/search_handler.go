package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/pkg/response"
)

type SearchHandler struct {
	Svc    *application.SearchService
	Logger *logrus.Logger
}

func NewSearchHandler(svc *application.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Logger: logger}
}

func (h *SearchHandler) Search(c *gin.Context) {
	res, err := h.Svc.Search(c.Request.Context(), c.Query("destination"))
	if err != nil {
		if errors.Is(err, application.ErrEmptyQuery) {
			response.Error[any](c, http.StatusBadRequest, "destination query parameter is required", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "search results", nil)
}
