package filter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr/file"
)

// CompilationError is returned when an expression is rejected before any
// movie is seen: a syntax error, an unknown field or helper, or a result
// that is not a bool.
type CompilationError struct {
	Expression string
	Reason     string
	// Position is the byte offset of the offending token, or -1.
	Position int
	Err      error
}

// newCompilationError lifts the location out of an expr error when it has one.
func newCompilationError(expression string, err error) *CompilationError {
	ce := &CompilationError{
		Expression: expression,
		Reason:     "failed to compile expression",
		Position:   -1,
		Err:        err,
	}
	var fe *file.Error
	if errors.As(err, &fe) {
		ce.Position = fe.From
		ce.Reason += ": " + fe.Message
	}
	return ce
}

func (e *CompilationError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("movie filter %q, offset %d: %s", e.Expression, e.Position, e.Reason)
	}
	return fmt.Sprintf("movie filter %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error { return e.Err }

// EvaluationError is returned when a compiled filter fails on one movie,
// for example by indexing past the end of GenreIDs.
type EvaluationError struct {
	Expression string
	MovieID    int
	MovieTitle string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("movie filter %q failed on %d (%s): %v", e.Expression, e.MovieID, e.MovieTitle, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
