package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
)

func newPromotionService(f *fakePromotionRepo) *PromotionService {
	return NewPromotionService(f, newFakeUserRepo(), nil, nil, nil, "", nil, false)
}

func seedPromotion(t *testing.T, svc *PromotionService, title string, images []string) int64 {
	t.Helper()
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	id, err := svc.Create(context.Background(), &entity.Promotion{
		Title:                    title,
		Description:              "desc",
		StartDate:                now,
		EndDate:                  now.AddDate(0, 0, 7),
		Destination:              "Bali",
		AuthorID:                 1,
		BusinessCertificateImage: "cert.png",
		Status:                   entity.PromotionStatusPending,
	}, images)
	require.NoError(t, err)
	return id
}

func TestPromotionCreateAndGet(t *testing.T) {
	f := newFakePromotionRepo()
	svc := newPromotionService(f)

	id := seedPromotion(t, svc, "Dive Week", []string{"a.jpg", "b.jpg"})

	v, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Dive Week", v.Title)
	assert.Equal(t, entity.PromotionStatusPending, v.Status)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, v.Images)
}

func TestPromotionGetMissing(t *testing.T) {
	svc := newPromotionService(newFakePromotionRepo())

	_, err := svc.GetByID(99)
	assert.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestPromotionUpdateStatusValidates(t *testing.T) {
	f := newFakePromotionRepo()
	svc := newPromotionService(f)
	id := seedPromotion(t, svc, "Dive Week", nil)

	ctx := context.Background()
	assert.ErrorIs(t, svc.UpdateStatus(ctx, id, "live"), ErrInvalidPromotionStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 99, entity.PromotionStatusApproved), ErrPromotionNotFound)

	require.NoError(t, svc.UpdateStatus(ctx, id, entity.PromotionStatusApproved))
	v, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.PromotionStatusApproved, v.Status)

	// Approved back to pending and on to denied are both allowed
	require.NoError(t, svc.UpdateStatus(ctx, id, entity.PromotionStatusPending))
	require.NoError(t, svc.UpdateStatus(ctx, id, entity.PromotionStatusDenied))
	assert.Equal(t, []string{"approved", "pending", "denied"}, f.statusSets)
}

func TestPromotionListPaginates(t *testing.T) {
	svc := newPromotionService(newFakePromotionRepo())
	for i := 0; i < 5; i++ {
		seedPromotion(t, svc, "p", nil)
	}

	views, pg, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, 1, pg.CurrentPage)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, int64(5), pg.TotalItems)
	assert.Equal(t, 2, pg.ItemsPerPage)

	views, _, err = svc.List(3, 2)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	views, pg, err = svc.List(4, 2)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Equal(t, 4, pg.CurrentPage)
}

func TestPromotionListApprovedFiltersStatus(t *testing.T) {
	f := newFakePromotionRepo()
	svc := newPromotionService(f)
	ctx := context.Background()

	a := seedPromotion(t, svc, "approved one", nil)
	seedPromotion(t, svc, "still pending", nil)
	require.NoError(t, svc.UpdateStatus(ctx, a, entity.PromotionStatusApproved))

	views, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "approved one", views[0].Title)
}

func TestPromotionListApprovedNeverNil(t *testing.T) {
	svc := newPromotionService(newFakePromotionRepo())

	views, err := svc.ListApproved(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestPromotionUpdateReplacesImagesOnlyWhenProvided(t *testing.T) {
	f := newFakePromotionRepo()
	svc := newPromotionService(f)
	id := seedPromotion(t, svc, "Dive Week", []string{"a.jpg"})
	ctx := context.Background()

	// nil imageURLs leaves the gallery alone
	require.NoError(t, svc.Update(ctx, id, repo.UpdatePromotionInput{Title: "New Title"}, nil))
	v, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "New Title", v.Title)
	assert.Equal(t, []string{"a.jpg"}, v.Images)

	// non-nil replaces it wholesale
	require.NoError(t, svc.Update(ctx, id, repo.UpdatePromotionInput{}, []string{"b.jpg", "c.jpg"}))
	v, err = svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, v.Images)
}

func TestPromotionDelete(t *testing.T) {
	svc := newPromotionService(newFakePromotionRepo())
	id := seedPromotion(t, svc, "Dive Week", nil)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, id))
	_, err := svc.GetByID(id)
	assert.ErrorIs(t, err, ErrPromotionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrPromotionNotFound)
}

func TestPromotionOwns(t *testing.T) {
	svc := newPromotionService(newFakePromotionRepo())
	id := seedPromotion(t, svc, "Dive Week", nil) // AuthorID 1

	ok, err := svc.Owns(id, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Owns(id, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Owns(42, 1)
	assert.ErrorIs(t, err, ErrPromotionNotFound)
}
