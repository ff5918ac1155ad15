package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
	"github.com/triptales/triptales-api/pkg/helpers"
	"github.com/triptales/triptales-api/pkg/mailer"
)

var (
	ErrPromotionNotFound      = errors.New("promotion not found")
	ErrInvalidPromotionStatus = errors.New("invalid status value")
)

const approvedCacheKey = "promotions:approved"
const approvedCacheTTL = 5 * time.Minute

// PromotionService owns the promotion lifecycle and the aggregated read
// model. Mutations invalidate the Redis read cache, re-index the promotion
// in Elasticsearch, and (for status changes) notify the author by email.
type PromotionService struct {
	Repo        repo.PromotionRepository
	Users       repo.UserRepository
	Redis       *redis.Client
	Logger      *logrus.Logger
	ES          *elasticsearch.Client
	ESIndex     string
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewPromotionService(r repo.PromotionRepository, users repo.UserRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, pub *helpers.RabbitPublisher, mailEnabled bool) *PromotionService {
	return &PromotionService{
		Repo:        r,
		Users:       users,
		Redis:       rdb,
		Logger:      logger,
		ES:          es,
		ESIndex:     esIndex,
		Pub:         pub,
		MailEnabled: mailEnabled,
	}
}

func (s *PromotionService) Create(ctx context.Context, p *entity.Promotion, imageURLs []string) (int64, error) {
	id, err := s.Repo.Create(p, imageURLs)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	_ = s.indexPromotion(ctx, id)
	return id, nil
}

func (s *PromotionService) GetByID(id int64) (*entity.PromotionView, error) {
	v, err := s.Repo.GetView(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *PromotionService) List(page, limit int) ([]entity.PromotionView, Pagination, error) {
	views, total, err := s.Repo.ListViews(limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return views, NewPagination(page, limit, total), nil
}

// ListApproved serves the public landing listing through a short-lived Redis
// cache; every promotion mutation drops the key.
func (s *PromotionService) ListApproved(ctx context.Context) ([]entity.PromotionView, error) {
	if s.Redis != nil {
		var cached []entity.PromotionView
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, approvedCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	views, err := s.Repo.ListApprovedViews()
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []entity.PromotionView{}
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, approvedCacheKey, views, approvedCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("approved promotions cache write failed")
		}
	}
	return views, nil
}

func (s *PromotionService) ListByAuthor(authorID int64) ([]entity.PromotionView, error) {
	return s.Repo.ListViewsByAuthor(authorID)
}

func (s *PromotionService) Update(ctx context.Context, id int64, in repo.UpdatePromotionInput, imageURLs []string) error {
	if err := s.Repo.Update(id, in, imageURLs); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPromotionNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	_ = s.indexPromotion(ctx, id)
	return nil
}

func (s *PromotionService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPromotionNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	s.deleteIndexed(ctx, id)
	return nil
}

// UpdateStatus sets any of the allowed status values; transitions are
// permissive by design, the only gate is the admin-only route.
func (s *PromotionService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !entity.ValidPromotionStatus(status) {
		return ErrInvalidPromotionStatus
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPromotionNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	_ = s.indexPromotion(ctx, id)
	s.notifyStatus(ctx, id, status)
	return nil
}

// Owns reports whether the promotion belongs to the given author.
func (s *PromotionService) Owns(id, authorID int64) (bool, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrPromotionNotFound
		}
		return false, err
	}
	return p.AuthorID == authorID, nil
}

func (s *PromotionService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, approvedCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("approved promotions cache invalidation failed")
	}
}

func (s *PromotionService) notifyStatus(ctx context.Context, id int64, status string) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	p, err := s.Repo.Get(id)
	if err != nil {
		return
	}
	author, err := s.Users.GetByID(p.AuthorID)
	if err != nil || author.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:       author.Email,
		Template: mailer.TemplatePromotionStatus,
		Data: map[string]any{
			"Title":  p.Title,
			"Status": status,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("promotion_id", id).Warn("status email enqueue failed")
	}
}

func (s *PromotionService) indexPromotion(ctx context.Context, id int64) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	v, err := s.Repo.GetView(id)
	if err != nil {
		return err
	}
	doc := map[string]any{
		"id":          v.ID,
		"title":       v.Title,
		"description": v.Description,
		"destination": v.Destination,
		"status":      v.Status,
		"updated_at":  v.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(v.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("promotion_id", id).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("promotion_id", id).Warn("es index response error")
	}
	return nil
}

func (s *PromotionService) deleteIndexed(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if res, err := req.Do(c, s.ES); err == nil {
		_ = res.Body.Close()
	}
}
