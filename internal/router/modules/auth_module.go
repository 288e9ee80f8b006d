package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/InduwaraRH/recipe-app-backend/internal/container"
	handlers "github.com/InduwaraRH/recipe-app-backend/internal/interface/http"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints carry a tighter per-IP limit than the global one.
	auth := rg.Group("/auth")
	auth.Use(middleware.RateLimit(container.GetRedis(), 50, 10*time.Minute, middleware.KeyByIPAndPath(), nil))
	{
		auth.POST("/register", m.Handler.Register)
		auth.POST("/login", m.Handler.Login)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
