package calculator

import (
	"errors"
	"math"
)

type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrOutOfRange       = errors.New("result out of range")
)

// Operations returns the supported operations in declaration order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// Evaluate applies op to a and b. Division is floating point; no rounding is applied.
// Results that overflow float64 are rejected with ErrOutOfRange.
func Evaluate(op string, a, b float64) (float64, error) {
	var r float64
	switch Operation(op) {
	case Add:
		r = a + b
	case Subtract:
		r = a - b
	case Multiply:
		r = a * b
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		r = a / b
	default:
		return 0, ErrInvalidOperation
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, ErrOutOfRange
	}
	return r, nil
}
