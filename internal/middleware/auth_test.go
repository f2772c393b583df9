package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/config"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

type fakeUserStatus struct {
	active map[uint]bool
}

func (f *fakeUserStatus) IsActive(userID uint) (bool, error) {
	return f.active[userID], nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func signToken(t *testing.T, userID uint, role authz.Role, ttl time.Duration) string {
	t.Helper()
	user := &model.User{Email: "a@b.c", Role: model.Role{Name: role}}
	user.ID = userID
	token, err := util.GenerateJWT(user, testSecret, ttl)
	require.NoError(t, err)
	return token
}

func newAuthRouter(users UserStatusRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testConfig(), users), func(c *gin.Context) {
		claims := util.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	users := &fakeUserStatus{active: map[uint]bool{1: true, 2: false}}
	router := newAuthRouter(users)

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, authz.User, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token via query parameter passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected?token="+signToken(t, 1, authz.User, time.Hour), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, authz.User, -time.Minute))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("disabled account rejected before expiry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 2, authz.User, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := &fakeUserStatus{active: map[uint]bool{1: true}}

	router := gin.New()
	router.DELETE("/courses/:id",
		AuthMiddleware(testConfig(), users),
		Authorize(authz.ResCourses, authz.ActionDelete),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	t.Run("admin may delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/courses/1", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, authz.Admin, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("instructor may not delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/courses/1", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, authz.Readit, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("user may not delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/courses/1", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, authz.User, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
