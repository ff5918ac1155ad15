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

type EngagementHandler struct {
	Svc    *application.EngagementService
	Logger *logrus.Logger
}

func NewEngagementHandler(svc *application.EngagementService, logger *logrus.Logger) *EngagementHandler {
	return &EngagementHandler{Svc: svc, Logger: logger}
}

type rateRequest struct {
	PromotionID int64 `json:"promotion_id" binding:"required"`
	Value       int   `json:"rating_value" binding:"required,gte=1,lte=5"`
}

func (h *EngagementHandler) RatePromotion(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.RatePromotion(req.PromotionID, c.GetInt64("userID"), req.Value); err != nil {
		if errors.Is(err, application.ErrInvalidRatingValue) {
			response.Error[any](c, http.StatusBadRequest, "rating_value must be between 1 and 5", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to save rating", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"promotionId": req.PromotionID, "rating": req.Value}, "rating saved", nil)
}

type createCommentRequest struct {
	PostID      *int64 `json:"post_id"`
	PromotionID *int64 `json:"promotion_id"`
	Content     string `json:"content" binding:"required"`
}

func (h *EngagementHandler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "content is required", validation.ToDetails(err))
		return
	}
	comment := &entity.Comment{
		UserID:      c.GetInt64("userID"),
		PostID:      req.PostID,
		PromotionID: req.PromotionID,
		Content:     req.Content,
	}
	id, err := h.Svc.CreateComment(comment)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCommentNoTarget),
			errors.Is(err, application.ErrCommentBothTargets),
			errors.Is(err, application.ErrCommentBodyRequired):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to create comment", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"commentId": id}, "comment created", nil)
}

func (h *EngagementHandler) ListComments(c *gin.Context) {
	target := c.Param("target")
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid target id", nil)
		return
	}
	comments, err := h.Svc.ListComments(target, targetID)
	if err != nil {
		if errors.Is(err, application.ErrInvalidTarget) {
			response.Error[any](c, http.StatusBadRequest, "target must be post or promotion", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list comments", nil)
		return
	}
	if comments == nil {
		comments = []entity.Comment{}
	}
	response.Success(c, http.StatusOK, comments, "comments", nil)
}

type toggleLikeRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	TargetID   int64  `json:"target_id" binding:"required"`
}

func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	liked, err := h.Svc.ToggleLike(req.TargetType, req.TargetID, c.GetInt64("userID"))
	if err != nil {
		if errors.Is(err, application.ErrInvalidTarget) {
			response.Error[any](c, http.StatusBadRequest, "target must be post or promotion", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to toggle like", nil)
		return
	}
	msg := "like removed"
	if liked {
		msg = "like added"
	}
	response.Success[any](c, http.StatusOK, gin.H{"liked": liked}, msg, nil)
}
