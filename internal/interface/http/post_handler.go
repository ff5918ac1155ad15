package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/pkg/response"
	"github.com/triptales/triptales-api/pkg/validation"
)

type PostHandler struct {
	Svc     *application.PostService
	Logger  *logrus.Logger
	Uploads *uploader
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger, gcs *storage.Client, bucket string, maxUploadBytes int64) *PostHandler {
	return &PostHandler{
		Svc:     svc,
		Logger:  logger,
		Uploads: &uploader{Client: gcs, Bucket: bucket, MaxBytes: maxUploadBytes},
	}
}

type createPostRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Content     string  `json:"content" binding:"required"`
	CategoryID  *int64  `json:"category_id"`
	ImageURL    string  `json:"image_url"`
	Destination string  `json:"destination" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"latitude"`
	Longitude   float64 `json:"longitude" binding:"longitude"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p := &entity.Post{
		UserID:      c.GetInt64("userID"),
		Title:       req.Title,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Destination: req.Destination,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	id, err := h.Svc.Create(c.Request.Context(), p)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"postId": id}, "post created", nil)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	p, err := h.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch post", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// UploadImage stores a single post image and returns its public URL; the
// client then passes that URL in the create payload.
func (h *PostHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	if err := h.Uploads.validate(file); err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	url, err := h.Uploads.upload(c.Request.Context(), "posts", file)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("post image upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to store uploaded file", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"image_url": url}, "image uploaded", nil)
}

func (h *PostHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	posts, pg, err := h.Svc.List(page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	if posts == nil {
		posts = []entity.Post{}
	}
	response.Success(c, http.StatusOK, posts, "posts", pg)
}
