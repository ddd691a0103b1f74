package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/calc-backend/internal/models"
	"github.com/baharkarakas/calc-backend/internal/repository"
)

type usersRepo struct{ db *sql.DB }

func NewUsers(db *sql.DB) repository.Users {
	return &usersRepo{db: db}
}

const userColumns = `id, username, email, password_hash, created_at`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users(username, email, password_hash, created_at) VALUES(?,?,?,?)`,
		username, email, hash, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, r.duplicate(ctx, username)
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("get last insert id: %w", err)
	}
	return models.User{ID: id, Username: username, Email: email, PasswordHash: hash, CreatedAt: now}, nil
}

// duplicate names the taken field after a unique violation. Username is reported
// first when both are taken, whichever constraint sqlite tripped.
func (r *usersRepo) duplicate(ctx context.Context, username string) error {
	var taken bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username=?)`, username).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return repository.ErrDuplicateUsername
	}
	return repository.ErrDuplicateEmail
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=?`, id,
	))
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=?`, username,
	))
}

func (r *usersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id=?)`, id).Scan(&exists)
	return exists, err
}
