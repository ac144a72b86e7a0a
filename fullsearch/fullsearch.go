package fullsearch

// All returns every distinct state reachable from start via zero or more
// successor steps, keyed by ID. The result always contains start; a start
// with no successors yields a singleton map.
//
// The sweep is order-independent: states are taken from the pending pool
// in arbitrary order, their unvisited successors appended, and the state
// marked visited. Revisits are filtered by ID, so a state reachable via
// several paths appears exactly once.
//
// Complexity: O(V + E) time, O(V) memory.
func All(start State, opts ...Option) (map[string]State, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate input.
	if start == nil {
		return nil, ErrNilStart
	}

	// 3) Seed the pending pool and sweep until drained.
	w := &sweeper{
		opts:    cfg,
		pending: []State{start},
		visited: make(map[string]State),
	}
	if err := w.sweep(); err != nil {
		return nil, err
	}

	return w.visited, nil
}

// sweeper holds the mutable state for a single All execution.
type sweeper struct {
	opts    Options
	pending []State          // states discovered but not yet expanded
	visited map[string]State // states already expanded, keyed by ID
}

// sweep pops pending states one at a time, registers their unvisited
// successors, and marks each popped state visited.
func (w *sweeper) sweep() error {
	for len(w.pending) > 0 {
		// Cancellation check (once per pop).
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// Remove an arbitrary pending state; popping the tail keeps the
		// pool stack-like, but any removal order yields the same result.
		q := w.pending[len(w.pending)-1]
		w.pending = w.pending[:len(w.pending)-1]
		if _, seen := w.visited[q.ID()]; seen {
			continue
		}

		// Register unvisited successors for future expansion.
		for _, s := range q.Successors() {
			if s == nil {
				continue
			}
			if _, seen := w.visited[s.ID()]; !seen {
				w.pending = append(w.pending, s)
			}
		}

		// Mark the state visited.
		w.visited[q.ID()] = q
		w.opts.OnVisit(q)
	}

	return nil
}
