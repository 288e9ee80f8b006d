package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/InduwaraRH/recipe-app-backend/internal/interface/http"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
)

type RecipeModule struct {
	Handler *handlers.RecipeHandler
	JWT     *helpers.JWTManager
}

func NewRecipeModule(h *handlers.RecipeHandler, jwt *helpers.JWTManager) *RecipeModule {
	return &RecipeModule{Handler: h, JWT: jwt}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	recipes.Use(middleware.RequireAuth(m.JWT))
	{
		// literal /categories takes precedence over :id
		recipes.GET("/categories", m.Handler.Categories)
		recipes.GET("", m.Handler.ByCategory)
		recipes.GET("/:id", m.Handler.ByID)
	}
}
