package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/pkg/response"
	"github.com/triptales/triptales-api/pkg/validation"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userPayload(&users[i]))
	}
	response.Success(c, http.StatusOK, out, "users", nil)
}

func (h *AdminHandler) RestrictUser(c *gin.Context) {
	h.setRestricted(c, true)
}

func (h *AdminHandler) UnrestrictUser(c *gin.Context) {
	h.setRestricted(c, false)
}

func (h *AdminHandler) setRestricted(c *gin.Context, restricted bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	var u *entity.User
	if restricted {
		u, err = h.Svc.RestrictUser(id)
	} else {
		u, err = h.Svc.UnrestrictUser(id)
	}
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update user", nil)
		return
	}
	msg := "user restricted"
	if !restricted {
		msg = "user unrestricted"
	}
	response.Success(c, http.StatusOK, userPayload(u), msg, nil)
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.Svc.ListCategories()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list categories", nil)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories", nil)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.CreateCategory(req.Name)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to create category", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"categoryId": id}, "category created", nil)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid category id", nil)
		return
	}
	if err := h.Svc.DeleteCategory(id); err != nil {
		if errors.Is(err, application.ErrCategoryNotFound) {
			response.Error[any](c, http.StatusNotFound, "category not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete category", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "category deleted", nil)
}

func (h *AdminHandler) HidePost(c *gin.Context) {
	h.setPostHidden(c, true)
}

func (h *AdminHandler) UnhidePost(c *gin.Context) {
	h.setPostHidden(c, false)
}

func (h *AdminHandler) setPostHidden(c *gin.Context, hidden bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	if err := h.Svc.SetPostHidden(id, hidden); err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update post visibility", nil)
		return
	}
	msg := "post hidden"
	if !hidden {
		msg = "post visible"
	}
	response.Success[any](c, http.StatusOK, gin.H{"postId": id, "hidden": hidden}, msg, nil)
}
