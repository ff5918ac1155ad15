package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/pkg/response"
)

type ReportHandler struct {
	Svc    *application.ReportService
	Logger *logrus.Logger
}

func NewReportHandler(svc *application.ReportService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{Svc: svc, Logger: logger}
}

type createReportRequest struct {
	PostID      *int64 `json:"post_id"`
	CommentID   *int64 `json:"comment_id"`
	PromotionID *int64 `json:"promotion_id"`
	Reason      string `json:"reason" binding:"required"`
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "reason is required", nil)
		return
	}
	id, err := h.Svc.Create(application.CreateReportInput{
		ReporterID:  c.GetInt64("userID"),
		PostID:      req.PostID,
		CommentID:   req.CommentID,
		PromotionID: req.PromotionID,
		Reason:      req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrReportMultipleTargets):
			response.Error[any](c, http.StatusBadRequest, "Only one of post_id, comment_id, or promotion_id can be provided at a time.", nil)
		case errors.Is(err, application.ErrReportNoTarget):
			response.Error[any](c, http.StatusBadRequest, "At least one of post_id, comment_id, or promotion_id must be provided.", nil)
		case errors.Is(err, application.ErrReportReasonRequired):
			response.Error[any](c, http.StatusBadRequest, "reason is required", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to create report", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reportId": id}, "report submitted", nil)
}

func (h *ReportHandler) ListByTarget(c *gin.Context) {
	itemType := c.Param("item_type")
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid item id", nil)
		return
	}
	reports, err := h.Svc.ListByTarget(itemType, itemID)
	if err != nil {
		if errors.Is(err, application.ErrInvalidReportItemType) {
			response.Error[any](c, http.StatusBadRequest, "item type must be post, comment, or promotion", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list reports", nil)
		return
	}
	if len(reports) == 0 {
		response.Error[any](c, http.StatusNotFound, "no reports found for this item", nil)
		return
	}
	response.Success(c, http.StatusOK, reports, "reports", nil)
}

func (h *ReportHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	reports, pg, err := h.Svc.List(page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list reports", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"reports":     reports,
		"currentPage": pg.CurrentPage,
		"totalPages":  pg.TotalPages,
		"totalCount":  pg.TotalItems,
	}, "reports", nil)
}

type updateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid report id", nil)
		return
	}
	var req updateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "status is required", nil)
		return
	}
	if err := h.Svc.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidReportStatus):
			response.Error[any](c, http.StatusBadRequest, "status must be Pending, Resolved, or Ignored", nil)
		case errors.Is(err, application.ErrReportNotFound):
			response.Error[any](c, http.StatusNotFound, "report not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update report status", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"reportId": id, "status": req.Status}, "report status updated", nil)
}
