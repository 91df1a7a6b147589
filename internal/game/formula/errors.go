package formula

import (
	"errors"
	"fmt"
)

// ErrMissingFormula reports an empty or blank formula text. A stage asked
// to evaluate nothing is a configuration mistake; the error propagates so
// the author sees it instead of a silently defaulted number.
var ErrMissingFormula = errors.New("missing formula text")

// ErrorKind distinguishes how an evaluation failed.
type ErrorKind int

const (
	// KindRaised: the formula failed to compile or raised at runtime.
	KindRaised ErrorKind = iota
	// KindNonFinite: the formula ran but produced NaN, an infinity, or a
	// non-numeric value.
	KindNonFinite
)

func (k ErrorKind) String() string {
	if k == KindNonFinite {
		return "non-finite result"
	}
	return "raised"
}

// EvalError reports a failed formula evaluation. Callers classify with
// errors.As and apply their own recovery policy; the evaluator never
// substitutes a value on its own.
type EvalError struct {
	Formula string
	Kind    ErrorKind
	Err     error
}

func (e *EvalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("formula %q: %s: %v", e.Formula, e.Kind, e.Err)
	}
	return fmt.Sprintf("formula %q: %s", e.Formula, e.Kind)
}

func (e *EvalError) Unwrap() error { return e.Err }
