package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/InduwaraRH/recipe-app-backend/internal/interface/http"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
)

type FavoriteModule struct {
	Handler *handlers.FavoriteHandler
	JWT     *helpers.JWTManager
}

func NewFavoriteModule(h *handlers.FavoriteHandler, jwt *helpers.JWTManager) *FavoriteModule {
	return &FavoriteModule{Handler: h, JWT: jwt}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	favs := rg.Group("/favorites")
	favs.Use(middleware.RequireAuth(m.JWT))
	{
		favs.GET("", m.Handler.List)
		favs.POST("", m.Handler.Create)
		favs.DELETE("/:id", m.Handler.Delete)
	}
}
