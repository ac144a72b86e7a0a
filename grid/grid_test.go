package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JaviLunes/AdventCodeTools/astar"
	"github.com/JaviLunes/AdventCodeTools/fullsearch"
	"github.com/JaviLunes/AdventCodeTools/grid"
)

// TestNew_Validation rejects empty and ragged inputs.
func TestNew_Validation(t *testing.T) {
	_, err := grid.New(nil)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.New([][]int{{}})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.New([][]int{{1, 1}, {1}})
	require.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	costs := [][]int{{1, 1}, {1, 1}}
	g, err := grid.New(costs)
	require.NoError(t, err)

	costs[0][0] = -1
	require.False(t, g.Wall(0, 0))
}

// TestCell_Anchors validates start placement.
func TestCell_Anchors(t *testing.T) {
	g, err := grid.New([][]int{{1, -1}, {1, 1}})
	require.NoError(t, err)

	_, err = g.Cell(5, 0, 1, 1)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = g.Cell(1, 0, 1, 1)
	require.ErrorIs(t, err, grid.ErrWallCell)

	c, err := g.Cell(0, 0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, "0,0", c.ID())
	require.Equal(t, 0.0, c.G())
	require.Equal(t, 2.0, c.H()) // Manhattan to (1,1)
	require.Nil(t, c.Parent())
}

// TestCell_SearchUnitGrid runs the engine end to end on the canonical
// 5×5 unit grid: minimum cost 8 from corner to corner.
func TestCell_SearchUnitGrid(t *testing.T) {
	g, err := grid.Uniform(5, 5)
	require.NoError(t, err)

	start, err := g.Cell(0, 0, 4, 4)
	require.NoError(t, err)

	found, err := astar.Search(start, func(n astar.Node) bool { return n.ID() == "4,4" })
	require.NoError(t, err)
	require.Equal(t, 8.0, found.G())
}

// TestCell_WallsRouteAround forces a detour through weighted cells.
func TestCell_WallsRouteAround(t *testing.T) {
	// Wall column splits the field; only the bottom row connects.
	g, err := grid.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	path, cost, err := g.FindPath(0, 0, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 6.0, cost)
	require.Equal(t, "0,0", path[0].ID())
	require.Equal(t, "2,0", path[len(path)-1].ID())
	require.Len(t, path, 7)
}

// TestFindPath_NoRoute surfaces ErrNoPath for a sealed-off goal.
func TestFindPath_NoRoute(t *testing.T) {
	g, err := grid.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{1, -1, 1},
	})
	require.NoError(t, err)

	_, _, err = g.FindPath(0, 0, 2, 0)
	require.ErrorIs(t, err, grid.ErrNoPath)
}

// TestCell_Conn8Heuristic uses Chebyshev distance under 8-connectivity.
func TestCell_Conn8Heuristic(t *testing.T) {
	g, err := grid.Uniform(5, 5, grid.WithConnectivity(grid.Conn8))
	require.NoError(t, err)

	c, err := g.Cell(0, 0, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 4.0, c.H())

	found, err := astar.Search(c, func(n astar.Node) bool { return n.ID() == "4,4" })
	require.NoError(t, err)
	require.Equal(t, 4.0, found.G()) // four diagonal steps
}

// TestTile_Region flood-fills the component of the anchor only.
func TestTile_Region(t *testing.T) {
	g, err := grid.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{1, -1, 1},
	})
	require.NoError(t, err)

	tiles, err := g.Region(0, 0)
	require.NoError(t, err)

	ids := make([]string, 0, len(tiles))
	for _, tl := range tiles {
		ids = append(ids, tl.ID())
	}
	sort.Strings(ids)
	require.Equal(t, []string{"0,0", "0,1", "0,2"}, ids)
}

// TestTile_StateContract checks the raw fullsearch integration.
func TestTile_StateContract(t *testing.T) {
	g, err := grid.Uniform(2, 2)
	require.NoError(t, err)

	start, err := g.Tile(0, 0)
	require.NoError(t, err)

	states, err := fullsearch.All(start)
	require.NoError(t, err)
	require.Len(t, states, 4)
	require.Contains(t, states, "1,1")
}
