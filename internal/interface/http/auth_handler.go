package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/pkg/helpers"
	"github.com/triptales/triptales-api/pkg/response"
	"github.com/triptales/triptales-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=32"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,pwd"`
	ProfilePhoto string `json:"profile_photo"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Username == application.GuestUsername {
		response.Error[any](c, http.StatusBadRequest, "username is reserved", nil)
		return
	}
	u, err := h.Svc.Register(req.Username, req.Email, req.Password, req.ProfilePhoto)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, userPayload(u), "registration successful", nil)
}

// Login issues a token. Username "Guest" yields a short-lived read-only
// identity without a password check.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAccountRestricted):
			response.Error[any](c, http.StatusForbidden, "account is restricted", nil)
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "invalid username or password", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}
	h.Cookies.SetAccess(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  userPayload(u),
	}, "login successful", map[string]any{"expires_at": exp})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.GetInt64("userID")
	if uid == helpers.GuestUserID {
		response.Success(c, http.StatusOK, gin.H{
			"id":            helpers.GuestUserID,
			"username":      application.GuestUsername,
			"role":          string(entity.RoleGuest),
			"profile_photo": "https://via.placeholder.com/150",
		}, "profile", nil)
		return
	}
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, userPayload(u), "profile", nil)
}

func userPayload(u *entity.User) gin.H {
	photo := u.ProfilePhoto
	if photo == "" {
		photo = entity.DefaultProfilePhoto
	}
	return gin.H{
		"id":            u.ID,
		"username":      u.Username,
		"email":         u.Email,
		"profile_photo": photo,
		"role":          string(u.Role),
		"is_restricted": u.IsRestricted,
		"created_at":    u.CreatedAt,
	}
}
