package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
)

// Context keys for the trusted identity attached by RequireAuth.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// tokenExtractor pulls a candidate session token from a request; extractors
// are tried in order and the first non-empty result wins.
type tokenExtractor func(c *gin.Context) string

func fromCookie(c *gin.Context) string {
	t, err := c.Cookie(helpers.SessionCookieName)
	if err != nil {
		return ""
	}
	return t
}

func fromBearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

var extractors = []tokenExtractor{fromCookie, fromBearer}

// ExtractToken returns the session token from the cookie or, failing that,
// the Authorization header.
func ExtractToken(c *gin.Context) string {
	for _, ex := range extractors {
		if t := ex(c); t != "" {
			return t
		}
	}
	return ""
}

// RequireAuth verifies the session token and attaches the identity to the
// context, or rejects with 401. The response never distinguishes a missing
// token from an expired or forged one.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(CtxUserIDKey, claims.Subject)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}
