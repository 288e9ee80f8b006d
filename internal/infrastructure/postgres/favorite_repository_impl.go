package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
	"github.com/InduwaraRH/recipe-app-backend/internal/domain/repository"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO favorites (user_id, recipe_id, name, thumbnail)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, f.UserID, f.RecipeID, f.Name, f.Thumbnail)

	return row.Scan(&f.ID, &f.CreatedAt)
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Favorite, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, recipe_id, name, thumbnail, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := make([]entity.Favorite, 0)
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.RecipeID, &f.Name,
			&f.Thumbnail, &f.CreatedAt); err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

// DeleteOwned deletes a favorite only when it belongs to userID. Ownership
// lives in the predicate, so a foreign or missing id matches zero rows.
func (r *FavoriteRepository) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	// A malformed id cannot match any row; short-circuit instead of letting
	// the uuid cast error surface as a server error.
	if _, err := uuid.Parse(id); err != nil {
		return 0, nil
	}
	res, err := r.pool.Exec(ctx, `
		DELETE FROM favorites
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
