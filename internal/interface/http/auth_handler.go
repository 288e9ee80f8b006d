package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/application"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
	"github.com/InduwaraRH/recipe-app-backend/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userJSON(id, email string) gin.H {
	return gin.H{"id": id, "email": email}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Issues(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Message(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Registered", "user": userJSON(u.ID, u.Email)})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Issues(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Message(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	h.Cookies.SetSession(c, token, exp)
	c.JSON(http.StatusOK, gin.H{"user": userJSON(u.ID, u.Email)})
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me GET /api/auth/me
// Never errors: an absent or failed credential reports a nil user so the
// frontend can render the signed-out state without special-casing.
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	claims, err := h.JWT.Verify(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": claims.Subject}})
}
