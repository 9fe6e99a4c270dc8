package grammar

import (
	"fmt"
)

// UsageError signals that arguments do not satisfy the Grammar.
// It carries the Grammar's own usage text, which should be shown to the user.
type UsageError struct {
	// Usage is the usage text of the Grammar which rejected the arguments.
	Usage   string
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}

	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates UsageError scoped to the Grammar `g`.
// The `format` and `args` parameters are passed to fmt.Errorf to create the underlying error.
func NewUsageError(g *Grammar, format string, args ...interface{}) error {
	return g.usageError(fmt.Errorf(format, args...))
}

func (g *Grammar) usageError(err error) error {
	return &UsageError{
		Usage:   g.Usage(),
		wrapped: err,
	}
}
