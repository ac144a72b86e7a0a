// Package astar implements best-first (A*) search over caller-defined nodes.
//
// The engine knows nothing about the search domain: callers supply a start
// Node and a GoalFunc, and the Node contract (ID, G, H, Successors, Parent)
// carries all domain logic. Nodes are expanded in non-decreasing f = g + h
// order, so with a non-overestimating heuristic the first node satisfying
// the goal carries the minimum-cost path from the start.
//
// Frontier policy ("lazy decrease-key"): when a cheaper path to an already
// queued state is discovered, a fresh entry is pushed instead of re-keying
// the heap. Stale entries are filtered at pop time against the visited set,
// and at insertion time against the best-known g cost per state ID.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V distinct states and E successor edges.
//   - Space: O(V + E) — best-cost map plus worst-case duplicated heap entries.
//
// Options:
//
//   - WithContext(ctx)       allows cancellation via context.Context.
//   - WithOnExpand(fn)       hook invoked after a node is expanded.
//   - WithMaxExpansions(n)   aborts after n expansions (0 = unlimited).
//
// Errors:
//
//   - ErrNilStart, ErrNilGoal  for invalid inputs.
//   - ErrNegativeCost          if any node reports g < 0 or h < 0.
//   - ErrExhausted             if the frontier drains without reaching a goal.
//   - ErrExpansionLimit        if WithMaxExpansions is exceeded.
//   - ErrOptionViolation       if an invalid Option is supplied.
//
// The heuristic's admissibility is the caller's responsibility: an
// overestimating h still terminates but may return a suboptimal node.
package astar
