package physics

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for model evaluation.
var (
	// ErrParameterBounds indicates an input outside the model's domain.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")

	// ErrDivisionByZero indicates a zero denominator (density, angular velocity, collector radius).
	ErrDivisionByZero = errors.New("physics: division by zero")

	// ErrNonFinite indicates the formula produced NaN or Inf.
	ErrNonFinite = errors.New("physics: non-finite result (NaN or Inf)")

	// ErrNegativeRadius indicates the final radius came out negative.
	ErrNegativeRadius = errors.New("physics: negative final radius")
)

// ModelError wraps a domain error with the operation and its inputs.
type ModelError struct {
	Op      string
	Args    []Arg
	Wrapped error
}

// Arg is a named input of a model operation.
type Arg struct {
	Name  string
	Value float64
}

func (e *ModelError) Error() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = fmt.Sprintf("%s=%g", a.Name, a.Value)
	}
	return fmt.Sprintf("%s(%s): %v", e.Op, strings.Join(parts, ", "), e.Wrapped)
}

func (e *ModelError) Unwrap() error {
	return e.Wrapped
}

func modelErr(op string, err error, args ...Arg) error {
	return &ModelError{Op: op, Args: args, Wrapped: err}
}
