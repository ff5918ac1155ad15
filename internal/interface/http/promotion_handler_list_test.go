package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/internal/domain/repository"
)

type memPromotionRepo struct {
	views []entity.PromotionView
}

func (m *memPromotionRepo) Create(p *entity.Promotion, imageURLs []string) (int64, error) {
	return 0, nil
}

func (m *memPromotionRepo) Get(id int64) (*entity.Promotion, error) {
	return nil, repository.ErrNotFound
}

func (m *memPromotionRepo) Update(id int64, in repository.UpdatePromotionInput, imageURLs []string) error {
	return nil
}

func (m *memPromotionRepo) Delete(id int64) error { return nil }

func (m *memPromotionRepo) UpdateStatus(id int64, status string) error { return nil }

func (m *memPromotionRepo) GetView(id int64) (*entity.PromotionView, error) {
	for i := range m.views {
		if m.views[i].ID == id {
			return &m.views[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memPromotionRepo) ListViews(limit, offset int) ([]entity.PromotionView, int64, error) {
	total := int64(len(m.views))
	if offset >= len(m.views) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(m.views) {
		end = len(m.views)
	}
	return m.views[offset:end], total, nil
}

func (m *memPromotionRepo) ListApprovedViews() ([]entity.PromotionView, error) {
	var out []entity.PromotionView
	for _, v := range m.views {
		if v.Status == entity.PromotionStatusApproved {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memPromotionRepo) ListViewsByAuthor(authorID int64) ([]entity.PromotionView, error) {
	return nil, nil
}

func (m *memPromotionRepo) SearchViewsByDestination(q string) ([]entity.PromotionView, error) {
	return nil, nil
}

func promotionView(id int64, title, status string) entity.PromotionView {
	return entity.PromotionView{
		ID:            id,
		Title:         title,
		Status:        status,
		Images:        []string{},
		AverageRating: "0.00",
	}
}

func promotionListRouter(views ...entity.PromotionView) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewPromotionService(&memPromotionRepo{views: views}, nil, nil, nil, nil, "", nil, false)
	h := NewPromotionHandler(svc, nil, nil, "", 5*1024*1024, 5)
	r := gin.New()
	r.GET("/api/promotions/getallpromotions", h.List)
	return r
}

func listRequest(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/promotions/getallpromotions"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPromotionListReturnsPage(t *testing.T) {
	r := promotionListRouter(
		promotionView(1, "Dive Week", entity.PromotionStatusApproved),
		promotionView(2, "Surf Camp", entity.PromotionStatusPending),
	)

	w := listRequest(t, r, "?page=1&limit=10")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dive Week")
	assert.Contains(t, w.Body.String(), `"totalItems":2`)
}

func TestPromotionListEmptyFirstPageNotFound(t *testing.T) {
	r := promotionListRouter()

	w := listRequest(t, r, "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no promotions found")
}

func TestPromotionListBeyondRangePageIsValid(t *testing.T) {
	r := promotionListRouter(
		promotionView(1, "Dive Week", entity.PromotionStatusApproved),
		promotionView(2, "Surf Camp", entity.PromotionStatusPending),
		promotionView(3, "City Walk", entity.PromotionStatusApproved),
	)

	// Past the last page: still a success, with an empty list and the
	// pagination meta intact.
	w := listRequest(t, r, "?page=2&limit=10")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"data":null`)
	assert.Contains(t, w.Body.String(), `"totalItems":3`)
	assert.Contains(t, w.Body.String(), `"currentPage":2`)
}
