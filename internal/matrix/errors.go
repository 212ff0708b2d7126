package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by *ShapeError panics.
var (
	// ErrBadShape marks a request for a matrix or view with impossible
	// dimensions (non-positive sizes, out-of-range rows, wrong data length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch marks operands whose shapes are incompatible for
	// the requested operation.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
)

// ShapeError describes a fatal shape fault raised by an engine operation.
//
// Engine operations panic with a *ShapeError; recover it and use
// errors.Is against ErrBadShape or ErrShapeMismatch to classify it.
type ShapeError struct {
	Op      string // Operation that failed (e.g. "add", "matmul")
	Msg     string // Diagnostic (e.g. "invalid matrix to sum")
	Details string // Shapes involved
	Err     error  // ErrBadShape or ErrShapeMismatch
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s %s", e.Op, e.Msg, e.Details)
}

// Unwrap returns the sentinel.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapePanic(op, msg string, sentinel error, details string) {
	panic(&ShapeError{Op: op, Msg: msg, Details: details, Err: sentinel})
}

// mustSameShape panics with msg unless a and b have identical shapes.
func mustSameShape(op, msg string, a, b *Matrix) {
	if a.rows != b.rows || a.cols != b.cols {
		shapePanic(op, msg, ErrShapeMismatch, fmt.Sprintf("[%dx%d] vs [%dx%d]", a.rows, a.cols, b.rows, b.cols))
	}
}
