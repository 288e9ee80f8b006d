package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/InduwaraRH/recipe-app-backend/internal/domain/entity"
	"github.com/InduwaraRH/recipe-app-backend/internal/domain/repository"
	"github.com/InduwaraRH/recipe-app-backend/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns registration and credential checks.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// NormalizeEmail lowercases and trims an address; the store only ever sees
// normalized emails, which is what makes the unique index meaningful.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user after checking the normalized email is free.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = NormalizeEmail(email)

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, PasswordHash: hash, Role: helpers.DefaultRole}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	return u, nil
}

// Authenticate validates email/password and returns the user.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues a session token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.Issue(u.ID, u.Role)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue session token failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
