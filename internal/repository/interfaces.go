package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/calc-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	// ErrUnknownUser is returned when a calculation references a user id that does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

type Users interface {
	// Create inserts a user. A unique violation is reported as ErrDuplicateUsername
	// or ErrDuplicateEmail, username taking precedence.
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type Calculations interface {
	Create(ctx context.Context, c models.Calculation) (models.Calculation, error)
	GetByID(ctx context.Context, id int64) (models.Calculation, error)
	List(ctx context.Context, f models.CalculationFilter) ([]models.Calculation, error)
	// Update overwrites operation, operands and result and refreshes updated_at.
	Update(ctx context.Context, c models.Calculation) (models.Calculation, error)
	Delete(ctx context.Context, id int64) error
}

type Repositories struct {
	Users        Users
	Calculations Calculations
}
