package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/calc-backend/internal/models"
	"github.com/baharkarakas/calc-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

const userColumns = `id, username, email, password_hash, created_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users(username, email, password_hash) VALUES($1,$2,$3)
		 RETURNING `+userColumns,
		username, email, hash,
	))
	if err == nil {
		return u, nil
	}
	if isUniqueViolation(err) {
		return models.User{}, r.duplicate(ctx, username)
	}
	return models.User{}, fmt.Errorf("insert user: %w", err)
}

// duplicate names the taken field after a unique violation, username first.
func (r *usersRepo) duplicate(ctx context.Context, username string) error {
	var taken bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`, username).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return repository.ErrDuplicateUsername
	}
	return repository.ErrDuplicateEmail
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id,
	))
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username,
	))
}

func (r *usersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}
