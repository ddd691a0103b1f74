package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/calc-backend/internal/calculator"
	"github.com/baharkarakas/calc-backend/internal/metrics"
	"github.com/baharkarakas/calc-backend/internal/models"
	repo "github.com/baharkarakas/calc-backend/internal/repository"
)

type CalculationService struct {
	calcs repo.Calculations
	users repo.Users
}

func NewCalculationService(c repo.Calculations, u repo.Users) *CalculationService {
	return &CalculationService{calcs: c, users: u}
}

func (s *CalculationService) List(ctx context.Context, f models.CalculationFilter) ([]models.Calculation, error) {
	if f.Limit <= 0 {
		f.Limit = models.DefaultLimit
	}
	if f.Limit > models.MaxLimit {
		f.Limit = models.MaxLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return s.calcs.List(ctx, f)
}

func (s *CalculationService) Get(ctx context.Context, id int64) (models.Calculation, error) {
	c, err := s.calcs.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Calculation{}, ErrCalculationNotFound
	}
	return c, err
}

// Create evaluates and stores a calculation owned by userID. Nothing is written
// when the user does not exist or the evaluation fails.
func (s *CalculationService) Create(ctx context.Context, userID int64, op string, a, b float64) (models.Calculation, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return models.Calculation{}, err
	}
	if !ok {
		return models.Calculation{}, ErrUserNotFound
	}

	result, err := calculator.Evaluate(op, a, b)
	if err != nil {
		metrics.CalculationsRejected.WithLabelValues(rejectReason(err)).Inc()
		return models.Calculation{}, err
	}

	c, err := s.calcs.Create(ctx, models.Calculation{
		Operation: op,
		Operand1:  a,
		Operand2:  b,
		Result:    result,
		UserID:    userID,
	})
	if errors.Is(err, repo.ErrUnknownUser) {
		return models.Calculation{}, ErrUserNotFound
	}
	if err != nil {
		return models.Calculation{}, err
	}
	metrics.CalculationsTotal.WithLabelValues(op, "create").Inc()
	return c, nil
}

// Update merges patch into the stored calculation and recomputes the result from
// the merged operation and operands, whichever fields changed.
func (s *CalculationService) Update(ctx context.Context, id int64, patch models.CalculationPatch) (models.Calculation, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Calculation{}, err
	}

	merged := patch.Apply(current)
	merged.Result, err = calculator.Evaluate(merged.Operation, merged.Operand1, merged.Operand2)
	if err != nil {
		metrics.CalculationsRejected.WithLabelValues(rejectReason(err)).Inc()
		return models.Calculation{}, err
	}

	out, err := s.calcs.Update(ctx, merged)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Calculation{}, ErrCalculationNotFound
	}
	if err != nil {
		return models.Calculation{}, err
	}
	metrics.CalculationsTotal.WithLabelValues(out.Operation, "update").Inc()
	return out, nil
}

func (s *CalculationService) Delete(ctx context.Context, id int64) error {
	err := s.calcs.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCalculationNotFound
	}
	return err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, calculator.ErrOutOfRange):
		return "out_of_range"
	}
	return "invalid_operation"
}
