package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authEngine(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString(CtxUserIDKey),
			"role": c.GetString(CtxUserRoleKey),
		})
	})
	return r
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r := authEngine(helpers.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestRequireAuth_CookieToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authEngine(jwt)
	token, _, err := jwt.Issue("42", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"42","role":"user"}`, w.Body.String())
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authEngine(jwt)
	token, _, err := jwt.Issue("42", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_CookieWinsOverHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authEngine(jwt)
	cookieTok, _, err := jwt.Issue("42", "")
	require.NoError(t, err)
	headerTok, _, err := jwt.Issue("43", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: cookieTok})
	req.Header.Set("Authorization", "Bearer "+headerTok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"42"`)
}

func TestRequireAuth_ExpiredAndForgedLookAlike(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authEngine(jwt)

	expired, _, err := helpers.NewJWTManager("secret", -time.Minute).Issue("42", "")
	require.NoError(t, err)
	forged, _, err := helpers.NewJWTManager("wrong", time.Hour).Issue("42", "")
	require.NoError(t, err)

	// Both failure modes must produce the identical external outcome.
	for _, token := range []string{expired, forged} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
	}
}
