package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promotionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// No storage client: every test here must be rejected before any upload.
	h := NewPromotionHandler(nil, nil, nil, "", 5*1024*1024, 5)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", int64(1)); c.Next() })
	r.POST("/api/promotions/", h.Create)
	return r
}

type multipartBody struct {
	buf *bytes.Buffer
	w   *multipart.Writer
}

func newMultipartBody() *multipartBody {
	buf := &bytes.Buffer{}
	return &multipartBody{buf: buf, w: multipart.NewWriter(buf)}
}

func (m *multipartBody) fields(kv map[string]string) *multipartBody {
	for k, v := range kv {
		_ = m.w.WriteField(k, v)
	}
	return m
}

func (m *multipartBody) file(t *testing.T, field, name string, size int) *multipartBody {
	t.Helper()
	fw, err := m.w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0xFF}, size))
	require.NoError(t, err)
	return m
}

func (m *multipartBody) request(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	require.NoError(t, m.w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/promotions/", m.buf)
	req.Header.Set("Content-Type", m.w.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validFields() map[string]string {
	return map[string]string{
		"title":       "Dive Week",
		"description": "Seven days of diving",
		"destination": "Bali",
		"start_date":  "2025-07-01",
		"end_date":    "2025-07-08",
		"latitude":    "-8.65",
		"longitude":   "115.21",
	}
}

func TestPromotionCreateRequiresCertificate(t *testing.T) {
	r := promotionRouter()

	w := newMultipartBody().
		fields(validFields()).
		file(t, "images", "one.jpg", 10).
		request(t, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Business certificate is required")
}

func TestPromotionCreateRejectsBadCoordinates(t *testing.T) {
	r := promotionRouter()

	f := validFields()
	f["latitude"] = "not-a-number"
	w := newMultipartBody().fields(f).file(t, "business_certificate_image", "cert.png", 10).request(t, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid latitude or longitude")

	f = validFields()
	f["latitude"] = "120.5"
	w = newMultipartBody().fields(f).file(t, "business_certificate_image", "cert.png", 10).request(t, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid latitude or longitude")
}

func TestPromotionCreateRejectsBadDates(t *testing.T) {
	r := promotionRouter()

	f := validFields()
	f["start_date"] = "July 1st"
	w := newMultipartBody().fields(f).file(t, "business_certificate_image", "cert.png", 10).request(t, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f = validFields()
	f["start_date"] = "2025-07-08"
	f["end_date"] = "2025-07-01"
	w = newMultipartBody().fields(f).file(t, "business_certificate_image", "cert.png", 10).request(t, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromotionCreateRejectsBadExtension(t *testing.T) {
	r := promotionRouter()

	w := newMultipartBody().
		fields(validFields()).
		file(t, "business_certificate_image", "cert.gif", 10).
		request(t, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only .jpg, .jpeg, and .png")
}

func TestPromotionCreateRejectsBadGalleryFileBeforeUpload(t *testing.T) {
	r := promotionRouter()

	// Valid certificate plus one bad gallery file: the whole batch is
	// rejected and nothing reaches storage (nil client would panic).
	w := newMultipartBody().
		fields(validFields()).
		file(t, "business_certificate_image", "cert.png", 10).
		file(t, "images", "one.jpg", 10).
		file(t, "images", "two.bmp", 10).
		request(t, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "two.bmp")
}

func TestPromotionCreateRejectsTooManyImages(t *testing.T) {
	r := promotionRouter()

	b := newMultipartBody().
		fields(validFields()).
		file(t, "business_certificate_image", "cert.png", 10)
	for i := 0; i < 6; i++ {
		b.file(t, "images", "img.jpg", 10)
	}
	w := b.request(t, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too many gallery images")
}

func TestPromotionCreateRejectsOversizedFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 1 KB cap so the test stays small
	h := NewPromotionHandler(nil, nil, nil, "", 1024, 5)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", int64(1)); c.Next() })
	r.POST("/api/promotions/", h.Create)

	w := newMultipartBody().
		fields(validFields()).
		file(t, "business_certificate_image", "cert.png", 2048).
		request(t, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "size limit")
}
