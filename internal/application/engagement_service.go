package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
)

var (
	ErrInvalidRatingValue  = errors.New("rating value must be between 1 and 5")
	ErrInvalidTarget       = errors.New("invalid target type")
	ErrCommentNoTarget     = errors.New("either post_id or promotion_id must be provided")
	ErrCommentBothTargets  = errors.New("only one of post_id or promotion_id can be provided")
	ErrCommentBodyRequired = errors.New("comment content is required")
)

type EngagementService struct {
	Repo   repo.EngagementRepository
	Logger *logrus.Logger
}

func NewEngagementService(r repo.EngagementRepository, logger *logrus.Logger) *EngagementService {
	return &EngagementService{Repo: r, Logger: logger}
}

// RatePromotion records or replaces the caller's score. A second rating from
// the same user overwrites the first rather than stacking.
func (s *EngagementService) RatePromotion(promotionID, userID int64, value int) error {
	if value < 1 || value > 5 {
		return ErrInvalidRatingValue
	}
	return s.Repo.RatePromotion(promotionID, userID, value)
}

func (s *EngagementService) CreateComment(c *entity.Comment) (int64, error) {
	if c.PostID == nil && c.PromotionID == nil {
		return 0, ErrCommentNoTarget
	}
	if c.PostID != nil && c.PromotionID != nil {
		return 0, ErrCommentBothTargets
	}
	if c.Content == "" {
		return 0, ErrCommentBodyRequired
	}
	return s.Repo.CreateComment(c)
}

func (s *EngagementService) ListComments(target string, targetID int64) ([]entity.Comment, error) {
	if !entity.ValidTarget(target) {
		return nil, ErrInvalidTarget
	}
	return s.Repo.ListComments(target, targetID)
}

// ToggleLike flips the caller's like on the target and reports the new state.
func (s *EngagementService) ToggleLike(target string, targetID, userID int64) (bool, error) {
	if !entity.ValidTarget(target) {
		return false, ErrInvalidTarget
	}
	return s.Repo.ToggleLike(target, targetID, userID)
}
