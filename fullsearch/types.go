// Package fullsearch defines the state contract, tunable options and
// sentinel errors for the exhaustive reachability engine.
package fullsearch

import (
	"context"
	"errors"
)

// Sentinel errors for All execution.
var (
	// ErrNilStart is returned when the start state is nil.
	ErrNilStart = errors.New("fullsearch: start state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fullsearch: invalid option supplied")
)

// State is the minimal capability contract for exhaustive search: identity
// plus a successor relation. Two states with equal ID are the same state;
// the engine keys all visited bookkeeping on ID alone. No cost semantics.
//
// Successors may allocate new State values but must not mutate the receiver
// or any previously returned state.
type State interface {
	// ID uniquely identifies the represented state.
	ID() string
	// Successors enumerates all states directly reachable from this state.
	Successors() []State
}

// Option configures All behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing one All call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per distinct state, when it is first visited.
	OnVisit func(s State)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(State) {},
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run when a state is first visited.
func WithOnVisit(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
