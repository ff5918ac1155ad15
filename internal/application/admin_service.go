package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrPostNotFound         = errors.New("post not found")
)

// AdminService groups the moderation operations: user restriction, category
// management, and post visibility.
type AdminService struct {
	Users      repo.UserRepository
	Posts      repo.PostRepository
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewAdminService(users repo.UserRepository, posts repo.PostRepository, categories repo.CategoryRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Posts: posts, Categories: categories, Logger: logger}
}

func (s *AdminService) ListUsers() ([]entity.User, error) {
	return s.Users.List()
}

// RestrictUser blocks a user from logging in until unrestricted. Existing
// tokens keep working until expiry; only new logins are refused.
func (s *AdminService) RestrictUser(id int64) (*entity.User, error) {
	return s.setRestricted(id, true)
}

func (s *AdminService) UnrestrictUser(id int64) (*entity.User, error) {
	return s.setRestricted(id, false)
}

func (s *AdminService) setRestricted(id int64, restricted bool) (*entity.User, error) {
	u, err := s.Users.SetRestricted(id, restricted)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":    id,
			"restricted": restricted,
		}).Info("user restriction updated")
	}
	return u, nil
}

func (s *AdminService) ListCategories() ([]entity.Category, error) {
	return s.Categories.List()
}

func (s *AdminService) CreateCategory(name string) (int64, error) {
	if name == "" {
		return 0, ErrCategoryNameRequired
	}
	return s.Categories.Create(name)
}

func (s *AdminService) DeleteCategory(id int64) error {
	if err := s.Categories.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// SetPostHidden hides or unhides a post from the public listings without
// deleting it, so report resolution stays reversible.
func (s *AdminService) SetPostHidden(id int64, hidden bool) error {
	if err := s.Posts.SetHidden(id, hidden); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
