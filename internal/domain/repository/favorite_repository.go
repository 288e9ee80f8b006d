package repository

import (
	"context"

	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
)

// FavoriteRepository defines the interface for favorite-related database
// operations. DeleteOwned scopes the delete to the owner in the predicate
// itself and reports how many rows matched; callers treat zero as a no-op.
type FavoriteRepository interface {
	Create(ctx context.Context, f *entity.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]entity.Favorite, error)
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
}
