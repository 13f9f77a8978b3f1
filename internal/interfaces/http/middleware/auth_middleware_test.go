package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qrmenu.backend/internal/interfaces/http/middleware"
	"qrmenu.backend/pkg/jwt"
)

func newAuthRouter(t *testing.T, jwtSvc *jwt.JWTService, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(jwtSvc)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("secret", 15*time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := jwtSvc.GenerateTokenPair(userID, "user@mail.com", "user")
	require.NoError(t, err)

	r := newAuthRouter(t, jwtSvc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_MissingAndMalformedHeader(t *testing.T) {
	jwtSvc := jwt.NewJWTService("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(t, jwtSvc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthorizationHeader, "Basic abc123")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expiredSvc := jwt.NewJWTService("secret", -time.Minute, -time.Minute)
	pair, err := expiredSvc.GenerateTokenPair(uuid.New(), "user@mail.com", "user")
	require.NoError(t, err)

	r := newAuthRouter(t, jwt.NewJWTService("secret", 15*time.Minute, time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	otherSvc := jwt.NewJWTService("other-secret", 15*time.Minute, time.Hour)
	pair, err := otherSvc.GenerateTokenPair(uuid.New(), "user@mail.com", "user")
	require.NoError(t, err)

	r := newAuthRouter(t, jwt.NewJWTService("secret", 15*time.Minute, time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	jwtSvc := jwt.NewJWTService("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(t, jwtSvc, middleware.RequireAdmin())

	userPair, err := jwtSvc.GenerateTokenPair(uuid.New(), "user@mail.com", "user")
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+userPair.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminPair, err := jwtSvc.GenerateTokenPair(uuid.New(), "admin@mail.com", "admin")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+adminPair.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
