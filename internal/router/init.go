package router

import (
	"github.com/InduwaraRH/recipe-app-backend/internal/application"
	"github.com/InduwaraRH/recipe-app-backend/internal/container"
	"github.com/InduwaraRH/recipe-app-backend/internal/infrastructure/postgres"
	handlers "github.com/InduwaraRH/recipe-app-backend/internal/interface/http"
	"github.com/InduwaraRH/recipe-app-backend/internal/router/modules"
)

// InitModules wires all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := postgres.NewUserRepository(container.GetPGPool())
	favRepo := postgres.NewFavoriteRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, jwt, logger)
	favSvc := application.NewFavoriteService(favRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, jwt, logger, cfg.CookieDomain, cfg.CookieSecure)
	recipeHandler := handlers.NewRecipeHandler(container.GetCatalog(), logger)
	favHandler := handlers.NewFavoriteHandler(favSvc, logger)
	userHandler := handlers.NewUserHandler(authSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewRecipeModule(recipeHandler, jwt))
	r.Add(modules.NewFavoriteModule(favHandler, jwt))
	r.Add(modules.NewUserModule(userHandler, jwt))
}
