// Package fullsearch implements exhaustive reachability search over
// caller-defined states.
//
// All walks the successor relation from a start State and returns every
// distinct state reachable in zero or more steps, keyed by ID. Traversal
// order is unspecified and does not affect the result: the sweep keeps a
// pending stack and a visited set, so the relation may be explored depth-
// or breadth-first interchangeably.
//
// Termination assumes the reachable state space is finite; an unbounded
// successor relation will not terminate. That guard is the caller's
// responsibility, not a checked precondition.
//
// Complexity:
//
//   - Time:   O(V + E) for V reachable states and E successor edges.
//   - Memory: O(V) for the visited map plus the pending stack.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithOnVisit(fn)   hook invoked when a state is first visited.
//
// Errors:
//
//   - ErrNilStart        if the start state is nil.
//   - ErrOptionViolation if an invalid Option is supplied.
package fullsearch
