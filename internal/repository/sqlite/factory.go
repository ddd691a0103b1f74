package sqlite

import (
	"database/sql"

	repo "github.com/baharkarakas/calc-backend/internal/repository"
)

func NewRepositories(db *sql.DB) repo.Repositories {
	return repo.Repositories{
		Users:        NewUsers(db),
		Calculations: NewCalculations(db),
	}
}
