package services

import (
	"errors"

	"github.com/baharkarakas/calc-backend/internal/calculator"
	"github.com/baharkarakas/calc-backend/internal/repository"
)

var (
	ErrUsernameTaken       = repository.ErrDuplicateUsername
	ErrEmailTaken          = repository.ErrDuplicateEmail
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrCalculationNotFound = errors.New("calculation not found")
	ErrDivisionByZero      = calculator.ErrDivisionByZero
	ErrInvalidOperation    = calculator.ErrInvalidOperation
	ErrResultOutOfRange    = calculator.ErrOutOfRange
)
