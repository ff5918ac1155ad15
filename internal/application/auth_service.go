package application

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/internal/domain/entity"
	repo "github.com/triptales/triptales-api/internal/domain/repository"
	"github.com/triptales/triptales-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountRestricted  = errors.New("account is restricted")
	ErrUserNotFound       = errors.New("user not found")
)

// GuestUsername triggers the synthetic guest login path: no credential is
// checked and a short-lived token with the guest sentinel id is issued.
const GuestUsername = "Guest"

const guestProfilePhoto = "https://via.placeholder.com/150"

type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

func (s *AuthService) Register(username, email, password, profilePhoto string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     username,
		Email:        email,
		Password:     hash,
		ProfilePhoto: profilePhoto,
		Role:         entity.RoleUser,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates by username and issues a token. Restricted accounts
// are denied before the password is even compared. The "Guest" username
// yields a synthetic identity without touching the store.
func (s *AuthService) Login(username, password string) (*entity.User, string, time.Time, error) {
	if username == GuestUsername {
		token, exp, err := s.JWT.GenerateGuestToken()
		if err != nil {
			return nil, "", time.Time{}, err
		}
		guest := &entity.User{
			ID:           helpers.GuestUserID,
			Username:     GuestUsername,
			Role:         entity.RoleGuest,
			ProfilePhoto: guestProfilePhoto,
		}
		return guest, token, exp, nil
	}

	u, err := s.Users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if u.IsRestricted {
		return nil, "", time.Time{}, ErrAccountRestricted
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

func (s *AuthService) GetProfile(userID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
