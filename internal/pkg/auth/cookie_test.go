package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestTokenFromRequestCookie(t *testing.T) {
	c, _ := newTestContext(t)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	assert.Equal(t, "cookie-token", TokenFromRequest(c))
}

func TestTokenFromRequestBearerHeader(t *testing.T) {
	c, _ := newTestContext(t)
	c.Request.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "header-token", TokenFromRequest(c))
}

func TestTokenFromRequestCookieWinsOverHeader(t *testing.T) {
	c, _ := newTestContext(t)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "cookie-token", TokenFromRequest(c))
}

func TestTokenFromRequestMissing(t *testing.T) {
	c, _ := newTestContext(t)
	assert.Empty(t, TokenFromRequest(c))
}

func TestSessionCookieAttributes(t *testing.T) {
	c, w := newTestContext(t)
	SetSessionCookie(c, "abc", 168*time.Hour, false)

	res := w.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "abc", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((168 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestClearSessionCookie(t *testing.T) {
	c, w := newTestContext(t)
	ClearSessionCookie(c, false)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
