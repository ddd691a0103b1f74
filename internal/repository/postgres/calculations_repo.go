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

type calculationsRepo struct{ pool *pgxpool.Pool }

func NewCalculations(pool *pgxpool.Pool) repository.Calculations {
	return &calculationsRepo{pool: pool}
}

const calculationColumns = `id, operation, operand1, operand2, result, user_id, created_at, updated_at`

func scanCalculation(row pgx.Row) (models.Calculation, error) {
	var c models.Calculation
	err := row.Scan(&c.ID, &c.Operation, &c.Operand1, &c.Operand2, &c.Result, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Calculation{}, repository.ErrNotFound
	}
	return c, err
}

func (r *calculationsRepo) Create(ctx context.Context, c models.Calculation) (models.Calculation, error) {
	out, err := scanCalculation(r.pool.QueryRow(ctx,
		`INSERT INTO calculations(operation, operand1, operand2, result, user_id)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING `+calculationColumns,
		c.Operation, c.Operand1, c.Operand2, c.Result, c.UserID,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Calculation{}, repository.ErrUnknownUser
		}
		return models.Calculation{}, fmt.Errorf("insert calculation: %w", err)
	}
	return out, nil
}

func (r *calculationsRepo) GetByID(ctx context.Context, id int64) (models.Calculation, error) {
	return scanCalculation(r.pool.QueryRow(ctx,
		`SELECT `+calculationColumns+` FROM calculations WHERE id=$1`, id,
	))
}

func (r *calculationsRepo) List(ctx context.Context, f models.CalculationFilter) ([]models.Calculation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+calculationColumns+`
		   FROM calculations
		  WHERE ($1::bigint IS NULL OR user_id = $1)
		  ORDER BY id
		  LIMIT $2 OFFSET $3`,
		f.UserID, f.Limit, f.Skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	out := make([]models.Calculation, 0)
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *calculationsRepo) Update(ctx context.Context, c models.Calculation) (models.Calculation, error) {
	return scanCalculation(r.pool.QueryRow(ctx,
		`UPDATE calculations
		    SET operation=$2, operand1=$3, operand2=$4, result=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+calculationColumns,
		c.ID, c.Operation, c.Operand1, c.Operand2, c.Result,
	))
}

func (r *calculationsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM calculations WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
