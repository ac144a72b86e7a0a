// Package grid treats a rectangular 2D slice of integer movement costs as a
// search space, providing ready-made node variants for both search engines:
//
//   - Cell implements astar.Node: entering a cell costs its grid value, the
//     heuristic is Manhattan distance under Conn4 (Chebyshev under Conn8),
//     and successors are the in-bounds, non-wall neighbors.
//   - Tile implements fullsearch.State: identity plus neighbor enumeration,
//     no cost semantics, for flood-fill style reachability.
//
// Cells with a negative cost are impassable walls.
//
// Convenience wrappers FindPath and Region run the two engines directly on
// grid coordinates.
//
// Complexity: construction is O(W×H) time and memory (the input is
// deep-copied); each successor enumeration is O(d) for d = 4 or 8.
package grid
