package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GuestUserID is the sentinel user id carried by guest tokens. Guests can
// read but every mutating handler rejects them.
const GuestUserID int64 = 0

// JWTManager handles generation and validation of JWT tokens
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
	GuestTTL  time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, accessTTL, guestTTL time.Duration) *JWTManager {
	m := &JWTManager{
		Secret:    []byte(secret),
		AccessTTL: accessTTL,
		GuestTTL:  guestTTL,
	}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues an access token for a registered user.
func (m *JWTManager) GenerateToken(userID int64, username, role string) (string, time.Time, error) {
	return m.generate(userID, username, role, m.AccessTTL)
}

// GenerateGuestToken issues a short-lived synthetic identity with the guest
// sentinel id. No credential is verified for these.
func (m *JWTManager) GenerateGuestToken() (string, time.Time, error) {
	return m.generate(GuestUserID, "Guest", "Guest", m.GuestTTL)
}

func (m *JWTManager) generate(userID int64, username, role string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
