package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/JaviLunes/AdventCodeTools/astar"
	"github.com/JaviLunes/AdventCodeTools/fullsearch"
)

// Grid is an immutable rectangular field of movement costs.
// costs[y][x] is the cost of entering cell (x,y); negative values are walls.
type Grid struct {
	Width, Height int
	costs         [][]int
	conn          Connectivity
	offsets       [][2]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs.
func New(costs [][]int, opts ...Option) (*Grid, error) {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate shape.
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// 3) Deep copy to prevent external mutation.
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], costs[y])
	}

	// 4) Precompute neighbor offsets based on connectivity.
	var offsets [][2]int
	if cfg.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{Width: w, Height: h, costs: cells, conn: cfg.Conn, offsets: offsets}, nil
}

// Uniform builds a width×height grid where every cell costs 1 to enter.
func Uniform(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	costs := make([][]int, height)
	for y := range costs {
		costs[y] = make([]int, width)
		for x := range costs[y] {
			costs[y][x] = 1
		}
	}

	return New(costs, opts...)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Wall reports whether (x,y) is impassable. Out-of-bounds cells count as walls.
func (g *Grid) Wall(x, y int) bool {
	return !g.InBounds(x, y) || g.costs[y][x] < 0
}

// CostAt returns the entry cost of cell (x,y), or ErrOutOfBounds.
func (g *Grid) CostAt(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return g.costs[y][x], nil
}

// cellID formats the unique state identifier for cell (x,y).
func cellID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Cell returns an astar.Node anchored at (x,y) and aiming at (goalX,goalY),
// with zero accumulated cost. Returns ErrOutOfBounds or ErrWallCell for an
// invalid anchor.
func (g *Grid) Cell(x, y, goalX, goalY int) (*Cell, error) {
	if !g.InBounds(x, y) || !g.InBounds(goalX, goalY) {
		return nil, fmt.Errorf("%w: start (%d,%d) goal (%d,%d)", ErrOutOfBounds, x, y, goalX, goalY)
	}
	if g.Wall(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrWallCell, x, y)
	}

	return &Cell{grid: g, x: x, y: y, goalX: goalX, goalY: goalY}, nil
}

// Cell is one grid position on a path toward a fixed goal cell.
// It satisfies astar.Node: G accumulates the entry costs along the
// discovery path and H estimates the remaining distance to the goal.
type Cell struct {
	grid         *Grid
	x, y         int
	g            float64
	goalX, goalY int
	parent       astar.Node
}

// X returns the cell's column.
func (c *Cell) X() int { return c.x }

// Y returns the cell's row.
func (c *Cell) Y() int { return c.y }

// ID identifies the cell's position, regardless of the path that found it.
func (c *Cell) ID() string { return cellID(c.x, c.y) }

// G is the accumulated entry cost from the start cell.
func (c *Cell) G() float64 { return c.g }

// H estimates the remaining cost to the goal cell: Manhattan distance under
// Conn4, Chebyshev distance under Conn8 (Manhattan would overestimate
// diagonal moves). Both are admissible when every entry cost is ≥ 1.
func (c *Cell) H() float64 {
	dx := math.Abs(float64(c.goalX - c.x))
	dy := math.Abs(float64(c.goalY - c.y))
	if c.grid.conn == Conn8 {
		return math.Max(dx, dy)
	}

	return dx + dy
}

// Parent is the predecessor cell on the discovery path, or nil for the start.
func (c *Cell) Parent() astar.Node { return c.parent }

// Successors enumerates the in-bounds, non-wall neighbor cells, each costed
// by its grid entry value and parented to the receiver.
func (c *Cell) Successors() []astar.Node {
	out := make([]astar.Node, 0, len(c.grid.offsets))
	for _, d := range c.grid.offsets {
		nx, ny := c.x+d[0], c.y+d[1]
		if c.grid.Wall(nx, ny) {
			continue
		}
		out = append(out, &Cell{
			grid:   c.grid,
			x:      nx,
			y:      ny,
			g:      c.g + float64(c.grid.costs[ny][nx]),
			goalX:  c.goalX,
			goalY:  c.goalY,
			parent: c,
		})
	}

	return out
}

// Tile returns a fullsearch.State anchored at (x,y).
// Returns ErrOutOfBounds or ErrWallCell for an invalid anchor.
func (g *Grid) Tile(x, y int) (*Tile, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if g.Wall(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrWallCell, x, y)
	}

	return &Tile{grid: g, x: x, y: y}, nil
}

// Tile is one grid position with no cost semantics.
// It satisfies fullsearch.State for flood-fill style reachability.
type Tile struct {
	grid *Grid
	x, y int
}

// X returns the tile's column.
func (t *Tile) X() int { return t.x }

// Y returns the tile's row.
func (t *Tile) Y() int { return t.y }

// ID identifies the tile's position.
func (t *Tile) ID() string { return cellID(t.x, t.y) }

// Successors enumerates the in-bounds, non-wall neighbor tiles.
func (t *Tile) Successors() []fullsearch.State {
	out := make([]fullsearch.State, 0, len(t.grid.offsets))
	for _, d := range t.grid.offsets {
		nx, ny := t.x+d[0], t.y+d[1]
		if t.grid.Wall(nx, ny) {
			continue
		}
		out = append(out, &Tile{grid: t.grid, x: nx, y: ny})
	}

	return out
}

// FindPath runs best-first search from (sx,sy) to (gx,gy) and returns the
// visited cells from start to goal plus the total cost.
// Returns ErrNoPath when the goal cell cannot be reached.
func (g *Grid) FindPath(sx, sy, gx, gy int) ([]*Cell, float64, error) {
	start, err := g.Cell(sx, sy, gx, gy)
	if err != nil {
		return nil, 0, err
	}
	goalID := cellID(gx, gy)

	found, err := astar.Search(start, func(n astar.Node) bool { return n.ID() == goalID })
	if err != nil {
		if errors.Is(err, astar.ErrExhausted) {
			return nil, 0, fmt.Errorf("%w: (%d,%d) → (%d,%d)", ErrNoPath, sx, sy, gx, gy)
		}
		return nil, 0, err
	}

	// Lineage runs goal → start; reverse it into travel order.
	line := astar.Lineage(found)
	path := make([]*Cell, len(line))
	for i, n := range line {
		path[len(line)-1-i] = n.(*Cell)
	}

	return path, found.G(), nil
}

// Region returns every tile reachable from (x,y) through non-wall cells,
// the connected component of the anchor under the grid's connectivity.
func (g *Grid) Region(x, y int) ([]*Tile, error) {
	start, err := g.Tile(x, y)
	if err != nil {
		return nil, err
	}

	states, err := fullsearch.All(start)
	if err != nil {
		return nil, err
	}
	tiles := make([]*Tile, 0, len(states))
	for _, s := range states {
		tiles = append(tiles, s.(*Tile))
	}

	return tiles, nil
}
