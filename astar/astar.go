package astar

import (
	"container/heap"
	"fmt"
	"math"
)

// Search runs best-first search from start, expanding nodes in non-decreasing
// f = g + h order until a popped node satisfies goal.
//
// Returns:
//
//   - the first node popped from the frontier for which goal returns true;
//     with a non-overestimating heuristic its G() is the minimum cost over
//     all discovered paths to any satisfying state.
//   - ErrExhausted if the frontier empties without reaching a goal node.
//
// Preconditions and validation (in order):
//  1. start must be non-nil (ErrNilStart).
//  2. goal must be non-nil (ErrNilGoal).
//  3. Options must be valid (ErrOptionViolation).
//  4. start must report g ≥ 0 and h ≥ 0 (ErrNegativeCost); the same is
//     enforced for every generated successor.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(start Node, goal GoalFunc, opts ...Option) (Node, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if start == nil {
		return nil, ErrNilStart
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if start.G() < 0 || start.H() < 0 {
		return nil, fmt.Errorf("%w: start %q g=%v h=%v", ErrNegativeCost, start.ID(), start.G(), start.H())
	}

	// 3) Initialize the engine state: frontier seeded with start, best-cost
	//    map recording the start's g, empty visited set.
	r := &runner{
		opts:     cfg,
		goal:     goal,
		frontier: frontier{{node: start, f: F(start)}},
		visited:  make(map[string]bool),
		bestG:    map[string]float64{start.ID(): start.G()},
	}
	heap.Init(&r.frontier)

	// 4) Run the main loop.
	return r.process()
}

// runner holds the mutable state for a single Search execution.
// All of it is local to one invocation; independent searches may run
// concurrently with no coordination.
type runner struct {
	opts     Options
	goal     GoalFunc
	frontier frontier        // min-heap over f, with lazy decrease-key
	visited  map[string]bool // state IDs already expanded
	bestG    map[string]float64
	expanded int
}

// process is the core loop: pop the minimum-f node, test the goal, filter
// stale entries, register improving successors, mark the node expanded.
func (r *runner) process() (Node, error) {
	for r.frontier.Len() > 0 {
		// Cancellation check (once per pop).
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the minimum-f node.
		q := heap.Pop(&r.frontier).(frontierItem).node

		// 2) Goal test before the staleness check: a satisfying node is
		//    returned even when its state was already expanded.
		if r.goal(q) {
			return q, nil
		}

		// 3) Discard stale entries superseded by a cheaper rediscovery.
		if r.visited[q.ID()] {
			continue
		}

		// 4) Expansion budget.
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
		}
		r.expanded++

		// 5) Generate successors and register the improving ones.
		if err := r.expand(q); err != nil {
			return nil, err
		}

		// 6) Mark the state expanded and loop.
		r.opts.OnExpand(q)
		r.visited[q.ID()] = true
	}

	// Frontier drained: the goal is unreachable from the start.
	return nil, ErrExhausted
}

// expand pushes every successor of q that improves on the best recorded
// cost for its state. Successors of already-expanded states are skipped.
func (r *runner) expand(q Node) error {
	var s Node
	for _, s = range q.Successors() {
		if s == nil {
			continue
		}
		if s.G() < 0 || s.H() < 0 {
			return fmt.Errorf("%w: successor %q g=%v h=%v", ErrNegativeCost, s.ID(), s.G(), s.H())
		}
		if r.visited[s.ID()] {
			continue
		}
		// Skip unless strictly better than the best-known cost for this
		// state; an absent entry counts as +Inf.
		if s.G() >= r.best(s.ID()) {
			continue
		}
		heap.Push(&r.frontier, frontierItem{node: s, f: F(s)})
		r.bestG[s.ID()] = s.G()
	}

	return nil
}

// best returns the lowest g recorded for id, or +Inf when absent.
func (r *runner) best(id string) float64 {
	if g, ok := r.bestG[id]; ok {
		return g
	}

	return math.Inf(1)
}

// frontierItem pairs a node with its f cost, cached at push time so the
// heap never re-invokes G/H during sifts.
type frontierItem struct {
	node Node
	f    float64
}

// frontier is a min-heap of frontierItem ordered by ascending f.
// Lazy decrease-key: cheaper rediscoveries push fresh entries, and stale
// ones are ignored at pop time via the runner's visited set.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (fr frontier) Len() int { return len(fr) }

// Less defines the comparison: smaller f → higher priority.
// Ties resolve by whatever order the heap provides.
func (fr frontier) Less(i, j int) bool { return fr[i].f < fr[j].f }

// Swap swaps two elements in the heap.
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push adds a new element x onto the heap; x must be a frontierItem.
func (fr *frontier) Push(x interface{}) { *fr = append(*fr, x.(frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := len(old)
	item := old[n-1]
	*fr = old[:n-1]

	return item
}
