package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
	"github.com/InduwaraRH/recipe-app-backend/internal/domain/repository"
)

// FavoriteService owns a user's favorites list. Every operation is scoped to
// the owner; there is no path that reads or deletes another user's rows.
type FavoriteService struct {
	Repo   repository.FavoriteRepository
	Logger *logrus.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, logger *logrus.Logger) *FavoriteService {
	return &FavoriteService{Repo: repo, Logger: logger}
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]entity.Favorite, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *FavoriteService) Add(ctx context.Context, userID, recipeID, name, thumbnail string) (*entity.Favorite, error) {
	f := &entity.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		Name:      name,
		Thumbnail: thumbnail,
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Remove deletes id when owned by userID. Deleting a missing or foreign row
// is a successful no-op; the ownership check is the query predicate.
func (s *FavoriteService) Remove(ctx context.Context, id, userID string) error {
	n, err := s.Repo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		s.Logger.WithFields(logrus.Fields{"favorite_id": id, "user_id": userID}).
			Debug("favorite delete matched no rows")
	}
	return nil
}
