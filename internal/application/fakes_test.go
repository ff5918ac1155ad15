package application

import (
	"fmt"
	"time"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) List() ([]entity.User, error) {
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRestricted(id int64, restricted bool) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	u.IsRestricted = restricted
	cp := *u
	return &cp, nil
}

type fakePromotionRepo struct {
	promotions map[int64]*entity.Promotion
	images     map[int64][]string
	nextID     int64
	statusSets []string
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{
		promotions: make(map[int64]*entity.Promotion),
		images:     make(map[int64][]string),
		nextID:     1,
	}
}

func (f *fakePromotionRepo) Create(p *entity.Promotion, imageURLs []string) (int64, error) {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.promotions[p.ID] = &cp
	f.images[p.ID] = append([]string{}, imageURLs...)
	return p.ID, nil
}

func (f *fakePromotionRepo) Get(id int64) (*entity.Promotion, error) {
	p, ok := f.promotions[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePromotionRepo) Update(id int64, in repo.UpdatePromotionInput, imageURLs []string) error {
	p, ok := f.promotions[id]
	if !ok {
		return repo.ErrNotFound
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = *in.EndDate
	}
	if imageURLs != nil {
		f.images[id] = append([]string{}, imageURLs...)
	}
	return nil
}

func (f *fakePromotionRepo) Delete(id int64) error {
	if _, ok := f.promotions[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.promotions, id)
	delete(f.images, id)
	return nil
}

func (f *fakePromotionRepo) UpdateStatus(id int64, status string) error {
	p, ok := f.promotions[id]
	if !ok {
		return repo.ErrNotFound
	}
	p.Status = status
	f.statusSets = append(f.statusSets, status)
	return nil
}

func (f *fakePromotionRepo) view(p *entity.Promotion) entity.PromotionView {
	return entity.PromotionView{
		ID:                       p.ID,
		Title:                    p.Title,
		Description:              p.Description,
		StartDate:                p.StartDate,
		EndDate:                  p.EndDate,
		Destination:              p.Destination,
		Latitude:                 p.Latitude,
		Longitude:                p.Longitude,
		Status:                   p.Status,
		BusinessCertificateImage: p.BusinessCertificateImage,
		Images:                   append([]string{}, f.images[p.ID]...),
		Author:                   entity.Author{Username: "Unknown", ProfilePhoto: entity.DefaultProfilePhoto},
		AverageRating:            "0.00",
	}
}

func (f *fakePromotionRepo) GetView(id int64) (*entity.PromotionView, error) {
	p, ok := f.promotions[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	v := f.view(p)
	return &v, nil
}

func (f *fakePromotionRepo) sorted() []*entity.Promotion {
	out := make([]*entity.Promotion, 0, len(f.promotions))
	for id := f.nextID - 1; id >= 1; id-- {
		if p, ok := f.promotions[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePromotionRepo) ListViews(limit, offset int) ([]entity.PromotionView, int64, error) {
	all := f.sorted()
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]entity.PromotionView, 0, end-offset)
	for _, p := range all[offset:end] {
		out = append(out, f.view(p))
	}
	return out, total, nil
}

func (f *fakePromotionRepo) ListApprovedViews() ([]entity.PromotionView, error) {
	var out []entity.PromotionView
	for _, p := range f.sorted() {
		if p.Status == entity.PromotionStatusApproved {
			out = append(out, f.view(p))
		}
	}
	return out, nil
}

func (f *fakePromotionRepo) ListViewsByAuthor(authorID int64) ([]entity.PromotionView, error) {
	var out []entity.PromotionView
	for _, p := range f.sorted() {
		if p.AuthorID == authorID {
			out = append(out, f.view(p))
		}
	}
	return out, nil
}

func (f *fakePromotionRepo) SearchViewsByDestination(q string) ([]entity.PromotionView, error) {
	var out []entity.PromotionView
	for _, p := range f.sorted() {
		if p.Destination == q {
			out = append(out, f.view(p))
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	reports map[int64]*entity.Report
	nextID  int64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[int64]*entity.Report), nextID: 1}
}

func (f *fakeReportRepo) Create(r *entity.Report) error {
	r.ID = f.nextID
	f.nextID++
	r.CreatedAt = time.Now()
	cp := *r
	f.reports[r.ID] = &cp
	return nil
}

func (f *fakeReportRepo) ListByTarget(itemType string, itemID int64) ([]entity.Report, error) {
	var out []entity.Report
	for id := int64(1); id < f.nextID; id++ {
		r, ok := f.reports[id]
		if !ok {
			continue
		}
		switch itemType {
		case entity.ReportItemPost:
			if r.PostID != nil && *r.PostID == itemID {
				out = append(out, *r)
			}
		case entity.ReportItemComment:
			if r.CommentID != nil && *r.CommentID == itemID {
				out = append(out, *r)
			}
		case entity.ReportItemPromotion:
			if r.PromotionID != nil && *r.PromotionID == itemID {
				out = append(out, *r)
			}
		}
	}
	return out, nil
}

func (f *fakeReportRepo) List(limit, offset int) ([]entity.Report, int64, error) {
	var all []entity.Report
	for id := int64(1); id < f.nextID; id++ {
		if r, ok := f.reports[id]; ok {
			all = append(all, *r)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeReportRepo) UpdateStatus(id int64, status string) error {
	r, ok := f.reports[id]
	if !ok {
		return repo.ErrNotFound
	}
	r.Status = status
	return nil
}

type fakeEngagementRepo struct {
	ratings  map[[2]int64]int // (promotionID, userID) -> value
	comments []entity.Comment
	likes    map[string]bool // target:targetID:userID
	nextID   int64
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{
		ratings: make(map[[2]int64]int),
		likes:   make(map[string]bool),
		nextID:  1,
	}
}

func (f *fakeEngagementRepo) RatePromotion(promotionID, userID int64, value int) error {
	f.ratings[[2]int64{promotionID, userID}] = value
	return nil
}

func (f *fakeEngagementRepo) CreateComment(c *entity.Comment) (int64, error) {
	c.ID = f.nextID
	f.nextID++
	f.comments = append(f.comments, *c)
	return c.ID, nil
}

func (f *fakeEngagementRepo) ListComments(target string, targetID int64) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, c := range f.comments {
		if target == entity.TargetPost && c.PostID != nil && *c.PostID == targetID {
			out = append(out, c)
		}
		if target == entity.TargetPromotion && c.PromotionID != nil && *c.PromotionID == targetID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeEngagementRepo) ToggleLike(target string, targetID, userID int64) (bool, error) {
	key := fmt.Sprintf("%s:%d:%d", target, targetID, userID)
	if f.likes[key] {
		delete(f.likes, key)
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}
