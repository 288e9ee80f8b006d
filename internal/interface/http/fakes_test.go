package handlers

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
	"github.com/InduwaraRH/recipe-app-backend/internal/domain/repository"
	"github.com/InduwaraRH/recipe-app-backend/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeFavoriteRepo is an in-memory FavoriteRepository.
type fakeFavoriteRepo struct {
	favs []*entity.Favorite
}

func (r *fakeFavoriteRepo) Create(_ context.Context, f *entity.Favorite) error {
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now()
	r.favs = append(r.favs, f)
	return nil
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userID string) ([]entity.Favorite, error) {
	out := make([]entity.Favorite, 0)
	for _, f := range r.favs {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) DeleteOwned(_ context.Context, id, userID string) (int64, error) {
	for i, f := range r.favs {
		if f.ID == id && f.UserID == userID {
			r.favs = append(r.favs[:i], r.favs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

var _ repository.FavoriteRepository = (*fakeFavoriteRepo)(nil)
