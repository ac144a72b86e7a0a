// Package grid defines core types, options, and sentinel errors for the
// grid search-space adapters.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrWallCell indicates a start or goal placed on an impassable cell.
	ErrWallCell = errors.New("grid: cell is an impassable wall")
	// ErrNoPath indicates no route exists between the given cells.
	ErrNoPath = errors.New("grid: no path between specified cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Option configures grid construction via functional arguments.
type Option func(*Options)

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with default settings: Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}
