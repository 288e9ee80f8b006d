package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/infrastructure/mealdb"
	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
	"github.com/InduwaraRH/recipe-app-backend/pkg/validation"
)

// RecipeHandler proxies the upstream recipe catalog.
type RecipeHandler struct {
	Catalog *mealdb.Client
	Logger  *logrus.Logger
}

func NewRecipeHandler(catalog *mealdb.Client, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Catalog: catalog, Logger: logger}
}

type categoryQuery struct {
	Category string `form:"category" binding:"required,max=50"`
}

type mealIDParams struct {
	ID string `uri:"id" binding:"required,numeric"`
}

// Categories GET /api/recipes/categories
func (h *RecipeHandler) Categories(c *gin.Context) {
	cats, err := h.Catalog.Categories(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Warn("catalog categories failed")
		response.Message(c, http.StatusBadGateway, "Error fetching categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// ByCategory GET /api/recipes?category=Beef
func (h *RecipeHandler) ByCategory(c *gin.Context) {
	var q categoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationFailed(c, validation.Issues(err))
		return
	}
	meals, err := h.Catalog.FilterByCategory(c.Request.Context(), q.Category)
	if err != nil {
		if errors.Is(err, mealdb.ErrNoMeals) {
			response.Message(c, http.StatusNotFound, "No meals found for this category")
			return
		}
		h.Logger.WithError(err).Warn("catalog filter failed")
		response.Message(c, http.StatusBadGateway, "Error fetching meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// ByID GET /api/recipes/:id
func (h *RecipeHandler) ByID(c *gin.Context) {
	var p mealIDParams
	if err := c.ShouldBindUri(&p); err != nil {
		response.ValidationFailed(c, validation.Issues(err))
		return
	}
	meal, err := h.Catalog.LookupByID(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, mealdb.ErrNoMeals) {
			response.Message(c, http.StatusNotFound, "Meal not found")
			return
		}
		h.Logger.WithError(err).Warn("catalog lookup failed")
		response.Message(c, http.StatusBadGateway, "Error fetching meal details")
		return
	}
	c.JSON(http.StatusOK, meal)
}
