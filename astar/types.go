// Package astar defines the node contract, tunable options and sentinel
// errors for the best-first search engine.
package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Search execution.
var (
	// ErrNilStart is returned when the start node is nil.
	ErrNilStart = errors.New("astar: start node is nil")

	// ErrNilGoal is returned when the goal predicate is nil.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrExhausted is returned when the frontier drains without any popped
	// node satisfying the goal predicate: the goal is unreachable from the
	// start under the supplied successor relation.
	ErrExhausted = errors.New("astar: search exhausted without reaching a goal node")

	// ErrNegativeCost is returned when a node reports g < 0 or h < 0.
	ErrNegativeCost = errors.New("astar: negative g or h cost")

	// ErrExpansionLimit is returned when the expansion budget set via
	// WithMaxExpansions is exceeded before a goal node is popped.
	ErrExpansionLimit = errors.New("astar: expansion limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Node is the capability contract any concrete search-node type must satisfy.
//
// Identity: two nodes with equal ID represent the same search-space state,
// regardless of the path that discovered them. The engine keys all visited
// and best-cost bookkeeping on ID alone.
//
// Costs: G is the accumulated cost from the start state along the discovery
// path; H estimates the remaining cost to any goal state. Both must be
// non-negative and fixed at construction. H should not overestimate the true
// remaining cost if the minimal-cost guarantee is required; the engine does
// not verify admissibility.
//
// Successors must return freshly allocated nodes carrying the receiver as
// Parent, and must not mutate the receiver or any previously returned node.
type Node interface {
	// ID uniquely identifies the represented state (not the discovery path).
	ID() string
	// G is the known cost from the start node to this node.
	G() float64
	// H estimates the cost from this node to a goal.
	H() float64
	// Successors enumerates all nodes directly reachable from this node.
	Successors() []Node
	// Parent is the predecessor on the discovery path, or nil for the start.
	Parent() Node
}

// GoalFunc reports whether a node represents an accepted solution.
// It must be pure: no mutation of the node or of shared state.
type GoalFunc func(Node) bool

// F is the frontier ordering key: the sum of known and estimated costs.
func F(n Node) float64 { return n.G() + n.H() }

// Lineage lists n followed by its recursive parents, from n back to the
// start node inclusive. It reconstructs the discovered path in reverse.
func Lineage(n Node) []Node {
	var line []Node
	for cur := n; cur != nil; cur = cur.Parent() {
		line = append(line, cur)
	}

	return line
}

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing one Search call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called after a node's successors have been generated
	// and registered, immediately before the node is marked visited.
	OnExpand func(n Node)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit
	// after that many expansions. A value of 0 disables the budget.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnExpand hook
//   - no expansion budget (MaxExpansions == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      func(Node) {},
		MaxExpansions: 0,
		err:           nil,
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

// WithOnExpand registers a callback to run on every expansion.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
