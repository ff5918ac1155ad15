package modules

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/pkg/helpers"
)

type stubPromotionRepo struct {
	views []entity.PromotionView
}

func (s *stubPromotionRepo) Create(p *entity.Promotion, imageURLs []string) (int64, error) {
	return 0, nil
}

func (s *stubPromotionRepo) Get(id int64) (*entity.Promotion, error) {
	return nil, repository.ErrNotFound
}

func (s *stubPromotionRepo) Update(id int64, in repository.UpdatePromotionInput, imageURLs []string) error {
	return nil
}

func (s *stubPromotionRepo) Delete(id int64) error { return nil }

func (s *stubPromotionRepo) UpdateStatus(id int64, status string) error { return nil }

func (s *stubPromotionRepo) GetView(id int64) (*entity.PromotionView, error) {
	for i := range s.views {
		if s.views[i].ID == id {
			return &s.views[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubPromotionRepo) ListViews(limit, offset int) ([]entity.PromotionView, int64, error) {
	return s.views, int64(len(s.views)), nil
}

func (s *stubPromotionRepo) ListApprovedViews() ([]entity.PromotionView, error) {
	return s.views, nil
}

func (s *stubPromotionRepo) ListViewsByAuthor(authorID int64) ([]entity.PromotionView, error) {
	return nil, nil
}

func (s *stubPromotionRepo) SearchViewsByDestination(q string) ([]entity.PromotionView, error) {
	return nil, nil
}

func promotionTestEngine(views ...entity.PromotionView) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewPromotionService(&stubPromotionRepo{views: views}, nil, nil, nil, nil, "", nil, false)
	h := handlers.NewPromotionHandler(svc, nil, nil, "", 5*1024*1024, 5)
	jwt := helpers.NewJWTManager("module-test-secret", time.Hour, time.Hour)

	r := gin.New()
	NewPromotionModule(h, jwt).Register(r.Group("/api"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPromotionReadRoutesNeedNoToken(t *testing.T) {
	view := entity.PromotionView{
		ID:            1,
		Title:         "Dive Week",
		Status:        entity.PromotionStatusApproved,
		Images:        []string{},
		AverageRating: "0.00",
	}
	r := promotionTestEngine(view)

	w := doRequest(t, r, http.MethodGet, "/api/promotions/getallpromotions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dive Week")

	w = doRequest(t, r, http.MethodGet, "/api/promotions/getallpromotions/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown id reads as missing, not as unauthorized
	w = doRequest(t, r, http.MethodGet, "/api/promotions/getallpromotions/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/promotions/getallapprovedpromotions", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPromotionWriteRoutesRequireToken(t *testing.T) {
	r := promotionTestEngine()

	w := doRequest(t, r, http.MethodPut, "/api/promotions/updatepromotionstatus/1", `{"status":"approved"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/promotions/1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
