package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/pkg/response"
	"github.com/triptales/triptales-api/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		switch {
		case errors.Is(err, application.ErrContactFieldsRequired):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrMailUnavailable):
			response.Error[any](c, http.StatusServiceUnavailable, "contact form is temporarily unavailable", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to send message", nil)
		}
		return
	}
	response.Success[any](c, http.StatusAccepted, gin.H{"queued": true}, "message received", nil)
}
