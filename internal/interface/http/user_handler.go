package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/application"
	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
)

// UserHandler serves the caller's own account record. The route sits behind
// RequireSelf, so the id parameter is already known to match the identity.
type UserHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Get GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Message(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": u.ID, "email": u.Email, "role": u.Role}})
}
