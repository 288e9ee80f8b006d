package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/application"
	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
	"github.com/InduwaraRH/recipe-app-backend/internal/interface/middleware"
	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
	"github.com/InduwaraRH/recipe-app-backend/pkg/validation"
)

type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

type createFavoriteRequest struct {
	RecipeID  string `json:"recipeId" binding:"required,max=50"`
	Name      string `json:"name" binding:"required,max=200"`
	Thumbnail string `json:"thumbnail" binding:"required,max=500"`
}

func favoriteJSON(f *entity.Favorite) gin.H {
	return gin.H{
		"id":        f.ID,
		"recipeId":  f.RecipeID,
		"name":      f.Name,
		"thumbnail": f.Thumbnail,
	}
}

// List GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	favs, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list favorites failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	out := make([]gin.H, 0, len(favs))
	for i := range favs {
		out = append(out, favoriteJSON(&favs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create POST /api/favorites
func (h *FavoriteHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Issues(err))
		return
	}
	f, err := h.Svc.Add(c.Request.Context(), uid, req.RecipeID, req.Name, req.Thumbnail)
	if err != nil {
		h.Logger.WithError(err).Error("create favorite failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, favoriteJSON(f))
}

// Delete DELETE /api/favorites/:id
// Deleting a favorite that does not exist or is not owned by the caller is
// a deliberate no-op; the response is `{success:true}` either way.
func (h *FavoriteHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Remove(c.Request.Context(), c.Param("id"), uid); err != nil {
		h.Logger.WithError(err).Error("delete favorite failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
