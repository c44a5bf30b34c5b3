package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:  "test-secret",
		SessionExp: time.Hour,
		Issuer:     "notesfind-test",
	})
}

func testRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)
	router := gin.New()

	router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		role, _ := CurrentRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	router.GET("/admin", m.RequireAuth(), RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/public", m.OptionalAuth(), func(c *gin.Context) {
		if id, ok := CurrentUserID(c); ok {
			c.JSON(http.StatusOK, gin.H{"id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})
	return router
}

func issueFor(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	token, err := jwtService.Issue(&models.User{ID: 42, Email: "user@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := testRouter(testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestRequireAuthValidCookie(t *testing.T) {
	jwtService := testJWTService()
	router := testRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: issueFor(t, jwtService, models.RoleUser)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAuthBearerHeader(t *testing.T) {
	jwtService := testJWTService()
	router := testRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, jwtService, models.RoleUser))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	router := testRouter(testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:  "test-secret",
		SessionExp: -time.Minute,
		Issuer:     "notesfind-test",
	})
	router := testRouter(testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: issueFor(t, expired, models.RoleUser)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestRequireRolesForbidden(t *testing.T) {
	jwtService := testJWTService()
	router := testRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: issueFor(t, jwtService, models.RolePublisher)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}

func TestRequireRolesAllowed(t *testing.T) {
	jwtService := testJWTService()
	router := testRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: issueFor(t, jwtService, models.RoleAdmin)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthAnonymous(t *testing.T) {
	router := testRouter(testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestOptionalAuthIdentified(t *testing.T) {
	jwtService := testJWTService()
	router := testRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: issueFor(t, jwtService, models.RoleUser)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
}
