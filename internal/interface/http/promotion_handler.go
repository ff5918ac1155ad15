package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
	"github.com/triptales/triptales-api/pkg/response"
)

const defaultPageSize = 10

type PromotionHandler struct {
	Svc             *application.PromotionService
	Logger          *logrus.Logger
	Uploads         *uploader
	MaxGalleryFiles int
}

func NewPromotionHandler(svc *application.PromotionService, logger *logrus.Logger, gcs *storage.Client, bucket string, maxUploadBytes int64, maxGalleryFiles int) *PromotionHandler {
	return &PromotionHandler{
		Svc:             svc,
		Logger:          logger,
		Uploads:         &uploader{Client: gcs, Bucket: bucket, MaxBytes: maxUploadBytes},
		MaxGalleryFiles: maxGalleryFiles,
	}
}

// Create accepts a multipart form: text fields plus one business certificate
// and up to MaxGalleryFiles gallery images. Every file is validated before
// any of them is written to storage.
func (h *PromotionHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	destination := c.PostForm("destination")
	if title == "" || description == "" || destination == "" {
		response.Error[any](c, http.StatusBadRequest, "title, description, and destination are required", nil)
		return
	}

	startDate, err1 := time.Parse("2006-01-02", c.PostForm("start_date"))
	endDate, err2 := time.Parse("2006-01-02", c.PostForm("end_date"))
	if err1 != nil || err2 != nil {
		response.Error[any](c, http.StatusBadRequest, "start_date and end_date must be YYYY-MM-DD", nil)
		return
	}
	if endDate.Before(startDate) {
		response.Error[any](c, http.StatusBadRequest, "end_date must not be before start_date", nil)
		return
	}

	lat, errLat := strconv.ParseFloat(c.PostForm("latitude"), 64)
	lng, errLng := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		response.Error[any](c, http.StatusBadRequest, "Invalid latitude or longitude", nil)
		return
	}

	cert, err := c.FormFile("business_certificate_image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Business certificate is required", nil)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	images := form.File["images"]
	if len(images) > h.MaxGalleryFiles {
		response.Error[any](c, http.StatusBadRequest, "too many gallery images", nil)
		return
	}

	// Reject the whole batch before writing anything.
	if err := h.Uploads.validate(append([]*multipart.FileHeader{cert}, images...)...); err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx := c.Request.Context()
	certURL, err := h.Uploads.upload(ctx, "certificates", cert)
	if err != nil {
		h.storageError(c, err)
		return
	}
	imageURLs, err := h.Uploads.uploadAll(ctx, "promotions", images)
	if err != nil {
		h.storageError(c, err)
		return
	}

	p := &entity.Promotion{
		Title:                    title,
		Description:              description,
		StartDate:                startDate,
		EndDate:                  endDate,
		Destination:              destination,
		Latitude:                 lat,
		Longitude:                lng,
		AuthorID:                 c.GetInt64("userID"),
		BusinessCertificateImage: certURL,
		Status:                   entity.PromotionStatusPending,
	}
	id, err := h.Svc.Create(ctx, p, imageURLs)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create promotion", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"promotionId": id}, "promotion submitted for review", nil)
}

// List returns all promotions regardless of status, paginated. An empty page
// one means there is nothing at all, which reads as not found.
func (h *PromotionHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	views, pg, err := h.Svc.List(page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list promotions", nil)
		return
	}
	if len(views) == 0 && page == 1 {
		response.Error[any](c, http.StatusNotFound, "no promotions found", nil)
		return
	}
	if views == nil {
		views = []entity.PromotionView{}
	}
	response.Success(c, http.StatusOK, views, "promotions", pg)
}

func (h *PromotionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid promotion id", nil)
		return
	}
	v, err := h.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, application.ErrPromotionNotFound) {
			response.Error[any](c, http.StatusNotFound, "promotion not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch promotion", nil)
		return
	}
	response.Success(c, http.StatusOK, v, "promotion", nil)
}

func (h *PromotionHandler) ListByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid author id", nil)
		return
	}
	views, err := h.Svc.ListByAuthor(authorID)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list promotions", nil)
		return
	}
	if len(views) == 0 {
		response.Error[any](c, http.StatusNotFound, "no promotions found for this author", nil)
		return
	}
	response.Success(c, http.StatusOK, views, "promotions by author", nil)
}

func (h *PromotionHandler) ListApproved(c *gin.Context) {
	views, err := h.Svc.ListApproved(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list promotions", nil)
		return
	}
	response.Success(c, http.StatusOK, views, "approved promotions", nil)
}

// Update patches text fields and optionally replaces the gallery. Only the
// author or an admin may update; ownership is checked here, not in middleware.
func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid promotion id", nil)
		return
	}
	if !h.canModify(c, id) {
		return
	}

	var in repository.UpdatePromotionInput
	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	if v := c.PostForm("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "start_date must be YYYY-MM-DD", nil)
			return
		}
		in.StartDate = &t
	}
	if v := c.PostForm("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "end_date must be YYYY-MM-DD", nil)
			return
		}
		in.EndDate = &t
	}

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil {
		if images := form.File["images"]; len(images) > 0 {
			if len(images) > h.MaxGalleryFiles {
				response.Error[any](c, http.StatusBadRequest, "too many gallery images", nil)
				return
			}
			if err := h.Uploads.validate(images...); err != nil {
				response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
				return
			}
			imageURLs, err = h.Uploads.uploadAll(c.Request.Context(), "promotions", images)
			if err != nil {
				h.storageError(c, err)
				return
			}
		}
	}

	if err := h.Svc.Update(c.Request.Context(), id, in, imageURLs); err != nil {
		if errors.Is(err, application.ErrPromotionNotFound) {
			response.Error[any](c, http.StatusNotFound, "promotion not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update promotion", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"promotionId": id}, "promotion updated", nil)
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid promotion id", nil)
		return
	}
	if !h.canModify(c, id) {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrPromotionNotFound) {
			response.Error[any](c, http.StatusNotFound, "promotion not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete promotion", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "promotion deleted", nil)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *PromotionHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid promotion id", nil)
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "status is required", nil)
		return
	}
	if err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidPromotionStatus):
			response.Error[any](c, http.StatusBadRequest, "status must be pending, approved, or denied", nil)
		case errors.Is(err, application.ErrPromotionNotFound):
			response.Error[any](c, http.StatusNotFound, "promotion not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update status", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"promotionId": id, "status": req.Status}, "promotion status updated", nil)
}

// canModify allows the promotion's author and admins; writes the error
// response itself when access is denied.
func (h *PromotionHandler) canModify(c *gin.Context, id int64) bool {
	if c.GetString("role") == string(entity.RoleAdmin) {
		return true
	}
	ok, err := h.Svc.Owns(id, c.GetInt64("userID"))
	if err != nil {
		if errors.Is(err, application.ErrPromotionNotFound) {
			response.Error[any](c, http.StatusNotFound, "promotion not found", nil)
			return false
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to check ownership", nil)
		return false
	}
	if !ok {
		response.Error[any](c, http.StatusForbidden, "you do not own this promotion", nil)
		return false
	}
	return true
}

// storageError hides storage details from the client; the real error only
// goes to the log.
func (h *PromotionHandler) storageError(c *gin.Context, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error("file upload failed")
	}
	response.Error[any](c, http.StatusInternalServerError, "failed to store uploaded files", nil)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	return application.NormalizePage(page, limit, defaultPageSize)
}
