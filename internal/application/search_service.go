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

var ErrEmptyQuery = errors.New("search query is required")

// SearchResult bundles both result kinds of a destination search.
type SearchResult struct {
	Promotions []entity.PromotionView `json:"promotions"`
	Posts      []entity.Post          `json:"posts"`
}

// SearchService answers destination queries. With Elasticsearch configured it
// resolves matching ids there and hydrates them from Postgres; without it (or
// on any ES failure) it falls back to a plain ILIKE scan.
type SearchService struct {
	Promotions repo.PromotionRepository
	Posts      repo.PostRepository
	ES         *elasticsearch.Client
	PromoIndex string
	PostIndex  string
	Logger     *logrus.Logger
}

func NewSearchService(promotions repo.PromotionRepository, posts repo.PostRepository, es *elasticsearch.Client, promoIndex, postIndex string, logger *logrus.Logger) *SearchService {
	return &SearchService{
		Promotions: promotions,
		Posts:      posts,
		ES:         es,
		PromoIndex: promoIndex,
		PostIndex:  postIndex,
		Logger:     logger,
	}
}

func (s *SearchService) Search(ctx context.Context, destination string) (*SearchResult, error) {
	q := strings.TrimSpace(destination)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	res := &SearchResult{
		Promotions: []entity.PromotionView{},
		Posts:      []entity.Post{},
	}

	promos, err := s.searchPromotions(ctx, q)
	if err != nil {
		return nil, err
	}
	if promos != nil {
		res.Promotions = promos
	}

	posts, err := s.searchPosts(ctx, q)
	if err != nil {
		return nil, err
	}
	if posts != nil {
		res.Posts = posts
	}
	return res, nil
}

func (s *SearchService) searchPromotions(ctx context.Context, q string) ([]entity.PromotionView, error) {
	if s.ES != nil && s.PromoIndex != "" {
		ids, err := s.queryIDs(ctx, s.PromoIndex, q, []string{"destination", "title", "description"})
		if err == nil {
			views := make([]entity.PromotionView, 0, len(ids))
			for _, id := range ids {
				v, err := s.Promotions.GetView(id)
				if err != nil {
					if errors.Is(err, repo.ErrNotFound) {
						continue // stale index entry
					}
					return nil, err
				}
				views = append(views, *v)
			}
			return views, nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es promotion search failed, falling back to sql")
		}
	}
	return s.Promotions.SearchViewsByDestination(q)
}

func (s *SearchService) searchPosts(ctx context.Context, q string) ([]entity.Post, error) {
	if s.ES != nil && s.PostIndex != "" {
		ids, err := s.queryIDs(ctx, s.PostIndex, q, []string{"destination", "title", "content"})
		if err == nil {
			posts := make([]entity.Post, 0, len(ids))
			for _, id := range ids {
				p, err := s.Posts.GetByID(id)
				if err != nil {
					if errors.Is(err, repo.ErrNotFound) {
						continue
					}
					return nil, err
				}
				if p.Hidden {
					continue
				}
				posts = append(posts, *p)
			}
			return posts, nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es post search failed, falling back to sql")
		}
	}
	return s.Posts.SearchByDestination(q)
}

// queryIDs runs a multi_match and returns the hit ids in relevance order.
func (s *SearchService) queryIDs(ctx context.Context, index, q string, fields []string) ([]int64, error) {
	body := map[string]any{
		"_source": false,
		"size":    50,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    fields,
				"fuzziness": "AUTO",
			},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.SearchRequest{
		Index: []string{index},
		Body:  strings.NewReader(string(b)),
	}
	res, err := req.Do(c, s.ES)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.New("elasticsearch: " + res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
