package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/pkg/helpers"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	jwt := &helpers.JWTManager{
		Secret:    []byte("test-secret"),
		AccessTTL: time.Hour,
		GuestTTL:  time.Minute,
	}
	return NewAuthService(users, jwt, nil)
}

func TestRegisterHashesPasswordAndAssignsRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	u, err := svc.Register("made", "made@example.com", "password123", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "password123"))
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	_, err := svc.Register("made", "made@example.com", "password123", "")
	require.NoError(t, err)

	u, token, exp, err := svc.Login("made", "password123")
	require.NoError(t, err)
	assert.Equal(t, "made", u.Username)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	_, err := svc.Register("made", "made@example.com", "password123", "")
	require.NoError(t, err)

	_, _, _, err = svc.Login("made", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, _, err := svc.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRestrictedUserDenied(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	u, err := svc.Register("made", "made@example.com", "password123", "")
	require.NoError(t, err)
	_, err = users.SetRestricted(u.ID, true)
	require.NoError(t, err)

	// Restriction wins even with the correct password
	_, _, _, err = svc.Login("made", "password123")
	assert.ErrorIs(t, err, ErrAccountRestricted)

	_, err = users.SetRestricted(u.ID, false)
	require.NoError(t, err)
	_, _, _, err = svc.Login("made", "password123")
	assert.NoError(t, err)
}

func TestLoginGuestIssuesSentinelIdentity(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	u, token, exp, err := svc.Login(GuestUsername, "")
	require.NoError(t, err)
	assert.Equal(t, helpers.GuestUserID, u.ID)
	assert.Equal(t, entity.RoleGuest, u.Role)
	assert.NotEmpty(t, token)
	// Guest tokens use the short TTL
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	claims, err := svc.JWT.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, helpers.GuestUserID, claims.UserID)
	assert.Equal(t, "Guest", claims.Role)
}

func TestGetProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	u, err := svc.Register("made", "made@example.com", "password123", "")
	require.NoError(t, err)

	got, err := svc.GetProfile(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "made", got.Username)

	_, err = svc.GetProfile(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
