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
	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
)

type PostService struct {
	Repo    repo.PostRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewPostService(r repo.PostRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PostService {
	return &PostService{Repo: r, Logger: logger, ES: es, ESIndex: esIndex}
}

func (s *PostService) Create(ctx context.Context, p *entity.Post) (int64, error) {
	id, err := s.Repo.Create(p)
	if err != nil {
		return 0, err
	}
	p.ID = id
	s.indexPost(ctx, p)
	return id, nil
}

// GetByID returns the post and bumps its view counter. The bump failing is
// not a reason to fail the read.
func (s *PostService) GetByID(id int64) (*entity.Post, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if err := s.Repo.IncrementViews(id); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("view counter bump failed")
		}
	} else {
		p.Views++
	}
	return p, nil
}

func (s *PostService) List(page, limit int) ([]entity.Post, Pagination, error) {
	posts, total, err := s.Repo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return posts, NewPagination(page, limit, total), nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"content":     p.Content,
		"destination": p.Destination,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       strings.NewReader(string(b)),
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return
	}
	_ = res.Body.Close()
}
