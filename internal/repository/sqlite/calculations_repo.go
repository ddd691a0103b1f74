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

type calculationsRepo struct{ db *sql.DB }

func NewCalculations(db *sql.DB) repository.Calculations {
	return &calculationsRepo{db: db}
}

const calculationColumns = `id, operation, operand1, operand2, result, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row scanner) (models.Calculation, error) {
	var c models.Calculation
	err := row.Scan(&c.ID, &c.Operation, &c.Operand1, &c.Operand2, &c.Result, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Calculation{}, repository.ErrNotFound
	}
	return c, err
}

func (r *calculationsRepo) Create(ctx context.Context, c models.Calculation) (models.Calculation, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations(operation, operand1, operand2, result, user_id, created_at, updated_at)
		 VALUES(?,?,?,?,?,?,?)`,
		c.Operation, c.Operand1, c.Operand2, c.Result, c.UserID, now, now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Calculation{}, repository.ErrUnknownUser
		}
		return models.Calculation{}, fmt.Errorf("insert calculation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Calculation{}, fmt.Errorf("get last insert id: %w", err)
	}
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	return c, nil
}

func (r *calculationsRepo) GetByID(ctx context.Context, id int64) (models.Calculation, error) {
	return scanCalculation(r.db.QueryRowContext(ctx,
		`SELECT `+calculationColumns+` FROM calculations WHERE id=?`, id,
	))
}

func (r *calculationsRepo) List(ctx context.Context, f models.CalculationFilter) ([]models.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calculationColumns+`
		   FROM calculations
		  WHERE (? IS NULL OR user_id = ?)
		  ORDER BY id
		  LIMIT ? OFFSET ?`,
		f.UserID, f.UserID, f.Limit, f.Skip,
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
	res, err := r.db.ExecContext(ctx,
		`UPDATE calculations
		    SET operation=?, operand1=?, operand2=?, result=?, updated_at=?
		  WHERE id=?`,
		c.Operation, c.Operand1, c.Operand2, c.Result, time.Now().UTC(), c.ID,
	)
	if err != nil {
		return models.Calculation{}, fmt.Errorf("update calculation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Calculation{}, err
	}
	if n == 0 {
		return models.Calculation{}, repository.ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *calculationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
