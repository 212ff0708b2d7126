// Package matrix implements the dense 2-D float64 engine used by the
// network trainer.
//
// A Matrix is a rows×cols buffer addressed through a row stride and a
// column stride. Owners are row-major; views produced by T, Row and
// SliceRows alias the owner's storage instead of copying it, so writes
// through a view are visible in the owner and the other way around.
// Views are meant to be used within the call that produced them.
//
// Every operation checks the shapes of its operands. A mismatch is a
// programming error and panics with a *ShapeError:
//
//	a := matrix.New(2, 3)
//	b := matrix.New(3, 2)
//	matrix.Add(a, b) // panics: add: invalid matrix to sum [2x3] vs [3x2]
//
// Randomness comes from one package-level source seeded once at start-up.
// Call Seed to make a run reproducible.
//
// *Matrix satisfies gonum.org/v1/gonum/mat.Matrix, so it can be handed to
// gonum for formatting or as a read-only operand.
package matrix
