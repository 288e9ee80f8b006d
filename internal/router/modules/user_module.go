package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/InduwaraRH/recipe-app-backend/internal/interface/http"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
)

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAuth(m.JWT))
	{
		// users can only read their own record
		users.GET("/:id", middleware.RequireSelf("id"), m.Handler.Get)
	}
}
