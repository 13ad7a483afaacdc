// Package scc defines tunable options and error values for the strongly
// connected component algorithms.
package scc

import (
	"context"
	"errors"
	"fmt"
)

// DefaultLimit is the number of leading entries TopSizes keeps after
// sorting the collected component sizes in descending order.
const DefaultLimit = 5

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("scc: invalid option supplied")

// Option configures algorithm behavior via functional arguments.
// An invalid Option (e.g. a non-positive limit) is recorded internally and
// surfaced as ErrOptionViolation when the algorithm is invoked.
type Option func(*Options)

// Options holds parameters shared by the scc entry points.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	// Cancelling the context aborts the traversal with ctx.Err().
	Ctx context.Context

	// Limit is the maximum number of size entries TopSizes returns.
	// Only TopSizes consults it; traversal functions ignore it.
	Limit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Limit == DefaultLimit (5)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Limit: DefaultLimit,
		err:   nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit caps the number of entries TopSizes returns.
//
//	n > 0:  keep the n largest sizes
//	n <= 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Limit must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Limit = n
	}
}

// resolve applies opts over the defaults and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
