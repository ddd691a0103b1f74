package models

import "time"

type Calculation struct {
	ID        int64     `json:"id"`
	Operation string    `json:"operation"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Result    float64   `json:"result"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// CalculationFilter selects a page of calculations. A nil UserID matches every owner.
type CalculationFilter struct {
	UserID *int64
	Skip   int
	Limit  int
}

// CalculationPatch carries the fields of a partial update; nil fields keep their stored value.
type CalculationPatch struct {
	Operation *string
	Operand1  *float64
	Operand2  *float64
}

// Apply merges p into c. The result is not recomputed here.
func (p CalculationPatch) Apply(c Calculation) Calculation {
	if p.Operation != nil {
		c.Operation = *p.Operation
	}
	if p.Operand1 != nil {
		c.Operand1 = *p.Operand1
	}
	if p.Operand2 != nil {
		c.Operand2 = *p.Operand2
	}
	return c
}
