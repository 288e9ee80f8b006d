package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InduwaraRH/recipe-app-backend/internal/application"
	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
)

func TestUserGet_SelfOnly(t *testing.T) {
	repo := &fakeUserRepo{}
	u := &entity.User{Email: "a@b.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, repo.Create(context.Background(), u))

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	logger := quietLogger()
	svc := application.NewAuthService(repo, jwt, logger)
	h := NewUserHandler(svc, logger)

	r := gin.New()
	users := r.Group("/api/users")
	users.Use(middleware.RequireAuth(jwt))
	users.GET("/:id", middleware.RequireSelf("id"), h.Get)

	token, _, err := jwt.Issue(u.ID, "")
	require.NoError(t, err)

	get := func(path, tok string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if tok != "" {
			req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: tok})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// own record
	w := get("/api/users/"+u.ID, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)

	// someone else's record
	w = get("/api/users/other-id", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, w.Body.String())

	// no credential at all
	w = get("/api/users/"+u.ID, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
