package validate

import (
	"github.com/baharkarakas/calc-backend/internal/calculator"
	"github.com/baharkarakas/calc-backend/internal/models"
)

// Pointer fields distinguish an absent key from a zero value.

type RegisterRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	var errs Errs
	if ef := Present("username", r.Username); ef != nil {
		errs.Add(ef)
	} else {
		errs.Add(Length("username", *r.Username, 3, 50))
	}
	if ef := Present("email", r.Email); ef != nil {
		errs.Add(ef)
	} else {
		errs.Add(Email("email", *r.Email))
	}
	if ef := Present("password", r.Password); ef != nil {
		errs.Add(ef)
	} else {
		errs.Add(Length("password", *r.Password, 6, 100))
	}
	return errs.Err()
}

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs Errs
	errs.Add(Present("username", r.Username))
	errs.Add(Present("password", r.Password))
	return errs.Err()
}

type CalculationCreate struct {
	Operation *string  `json:"operation"`
	Operand1  *float64 `json:"operand1"`
	Operand2  *float64 `json:"operand2"`
}

func (r CalculationCreate) Validate() error {
	var errs Errs
	if ef := Present("operation", r.Operation); ef != nil {
		errs.Add(ef)
	} else {
		errs.Add(operation(*r.Operation))
	}
	errs.Add(Present("operand1", r.Operand1))
	errs.Add(Present("operand2", r.Operand2))
	errs.Add(divisionByZero(r.Operation, r.Operand2))
	return errs.Err()
}

type CalculationUpdate struct {
	Operation *string  `json:"operation"`
	Operand1  *float64 `json:"operand1"`
	Operand2  *float64 `json:"operand2"`
}

func (r CalculationUpdate) Validate() error {
	var errs Errs
	if r.Operation != nil {
		errs.Add(operation(*r.Operation))
	}
	errs.Add(divisionByZero(r.Operation, r.Operand2))
	return errs.Err()
}

func (r CalculationUpdate) Patch() models.CalculationPatch {
	return models.CalculationPatch{Operation: r.Operation, Operand1: r.Operand1, Operand2: r.Operand2}
}

func operation(op string) *ErrField {
	ops := calculator.Operations()
	allowed := make([]string, len(ops))
	for i, o := range ops {
		allowed[i] = string(o)
	}
	return OneOf("operation", op, allowed...)
}

// divisionByZero only sees one payload; a divide stored earlier is checked after the merge.
func divisionByZero(op *string, operand2 *float64) *ErrField {
	if op != nil && *op == string(calculator.Divide) && operand2 != nil && *operand2 == 0 {
		return &ErrField{Field: "operand2", Msg: "Division by zero is not allowed"}
	}
	return nil
}
