package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
)

// RequireSelf allows a request only when the authenticated identity matches
// the path parameter paramName (default "id"). A missing identity yields
// 401 — unreachable when RequireAuth ran first, kept as a defensive check —
// and a mismatch yields 403.
func RequireSelf(paramName string) gin.HandlerFunc {
	if paramName == "" {
		paramName = "id"
	}
	return func(c *gin.Context) {
		uid := c.GetString(CtxUserIDKey)
		if uid == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		target := c.Param(paramName)
		if target == "" || target != uid {
			response.AbortMessage(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}
