package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triptales/triptales-api/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return &helpers.JWTManager{
		Secret:    []byte("test-secret"),
		AccessTTL: time.Hour,
		GuestTTL:  time.Minute,
	}
}

func protectedRouter(jwt *helpers.JWTManager, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", Auth(jwt))
	grp.Use(extra...)
	grp.GET("/secret", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetInt64("userID"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := protectedRouter(testJWT())
	w := get(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := protectedRouter(testJWT())
	w := get(r, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	jwt := testJWT()
	token, _, err := jwt.GenerateToken(42, "made", "User")
	require.NoError(t, err)

	r := protectedRouter(jwt)
	w := get(r, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":42`)
}

func TestAuthAcceptsCookie(t *testing.T) {
	jwt := testJWT()
	token, _, err := jwt.GenerateToken(7, "made", "User")
	require.NoError(t, err)

	r := protectedRouter(jwt)
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireUserBlocksGuests(t *testing.T) {
	jwt := testJWT()
	r := protectedRouter(jwt, RequireUser())

	guestToken, _, err := jwt.GenerateGuestToken()
	require.NoError(t, err)
	w := get(r, map[string]string{"Authorization": "Bearer " + guestToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken, _, err := jwt.GenerateToken(3, "made", "User")
	require.NoError(t, err)
	w = get(r, map[string]string{"Authorization": "Bearer " + userToken})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminBlocksNonAdmins(t *testing.T) {
	jwt := testJWT()
	r := protectedRouter(jwt, RequireAdmin())

	userToken, _, err := jwt.GenerateToken(3, "made", "User")
	require.NoError(t, err)
	w := get(r, map[string]string{"Authorization": "Bearer " + userToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _, err := jwt.GenerateToken(1, "admin", "Admin")
	require.NoError(t, err)
	w = get(r, map[string]string{"Authorization": "Bearer " + adminToken})
	assert.Equal(t, http.StatusOK, w.Code)
}
