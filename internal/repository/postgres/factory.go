package postgres

import (
	repo "github.com/baharkarakas/calc-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Users:        NewUsers(pool),
		Calculations: NewCalculations(pool),
	}
}
