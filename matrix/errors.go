package matrix

import "fmt"

// MalformedMatrixError reports a dimensional precondition violated by an
// algebraic operation. It names the mismatched shapes so a caller can
// diagnose which operand was wrong without re-deriving dimensions itself.
type MalformedMatrixError struct {
	Op                 string
	ARows, ACols       int
	BRows, BCols       int
}

func (e *MalformedMatrixError) Error() string {
	return fmt.Sprintf("matrix: %s: dimensions %dx%d incompatible with %dx%d",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

func shapeError(op string, a *Matrix, bRows, bCols int) error {
	return &MalformedMatrixError{Op: op, ARows: a.rows, ACols: a.cols, BRows: bRows, BCols: bCols}
}
