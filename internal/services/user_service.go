package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/calc-backend/internal/auth"
	"github.com/baharkarakas/calc-backend/internal/metrics"
	"github.com/baharkarakas/calc-backend/internal/models"
	repo "github.com/baharkarakas/calc-backend/internal/repository"
)

type UserService struct {
	r repo.Users
	// compared against when the username is unknown so both login failures cost the same
	dummyHash string
}

func NewUserService(r repo.Users) *UserService {
	h, _ := auth.HashPassword("calc-backend-timing-guard")
	return &UserService{r: r, dummyHash: h}
}

// Register stores a new user. The store's unique constraints decide duplicates.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.r.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) || errors.Is(err, repo.ErrDuplicateEmail) {
			metrics.RegistrationsRejected.Inc()
		}
		return models.User{}, err
	}
	metrics.UsersRegistered.Inc()
	slog.InfoContext(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login checks credentials. Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.r.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		_ = auth.VerifyPassword(password, s.dummyHash)
		metrics.LoginsFailed.Inc()
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		metrics.LoginsFailed.Inc()
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}
