package astar_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JaviLunes/AdventCodeTools/astar"
)

// fixture describes an explicit weighted digraph with per-state heuristics,
// so tests can shape arbitrary successor relations.
type fixture struct {
	edges map[string][]arc
	h     map[string]float64
}

type arc struct {
	to   string
	cost float64
}

// fixNode adapts one fixture state to the astar.Node contract.
type fixNode struct {
	fx     *fixture
	id     string
	g      float64
	parent astar.Node
}

func (n *fixNode) ID() string         { return n.id }
func (n *fixNode) G() float64         { return n.g }
func (n *fixNode) H() float64         { return n.fx.h[n.id] }
func (n *fixNode) Parent() astar.Node { return n.parent }

func (n *fixNode) Successors() []astar.Node {
	arcs := n.fx.edges[n.id]
	out := make([]astar.Node, 0, len(arcs))
	for _, a := range arcs {
		out = append(out, &fixNode{fx: n.fx, id: a.to, g: n.g + a.cost, parent: n})
	}

	return out
}

func (fx *fixture) start(id string) *fixNode { return &fixNode{fx: fx, id: id} }

func goalID(id string) astar.GoalFunc {
	return func(n astar.Node) bool { return n.ID() == id }
}

// cellNode is a unit-cost cell in a bounded grid with a Manhattan heuristic.
type cellNode struct {
	grid   *cellGrid
	x, y   int
	g      float64
	parent astar.Node
}

type cellGrid struct {
	width, height int
	goalX, goalY  int
	blocked       map[[2]int]bool
}

func (cg *cellGrid) at(x, y int) *cellNode { return &cellNode{grid: cg, x: x, y: y} }

func (c *cellNode) ID() string { return fmt.Sprintf("%d,%d", c.x, c.y) }
func (c *cellNode) G() float64 { return c.g }

func (c *cellNode) H() float64 {
	return math.Abs(float64(c.grid.goalX-c.x)) + math.Abs(float64(c.grid.goalY-c.y))
}

func (c *cellNode) Parent() astar.Node { return c.parent }

func (c *cellNode) Successors() []astar.Node {
	var out []astar.Node
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		nx, ny := c.x+d[0], c.y+d[1]
		if nx < 0 || nx >= c.grid.width || ny < 0 || ny >= c.grid.height {
			continue
		}
		if c.grid.blocked[[2]int{nx, ny}] {
			continue
		}
		out = append(out, &cellNode{grid: c.grid, x: nx, y: ny, g: c.g + 1, parent: c})
	}

	return out
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	fx := &fixture{edges: map[string][]arc{}, h: map[string]float64{}}

	_, err := astar.Search(nil, goalID("A"))
	require.ErrorIs(t, err, astar.ErrNilStart)

	_, err = astar.Search(fx.start("A"), nil)
	require.ErrorIs(t, err, astar.ErrNilGoal)

	_, err = astar.Search(fx.start("A"), goalID("B"), astar.WithMaxExpansions(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)

	neg := &fixNode{fx: fx, id: "A", g: -1}
	_, err = astar.Search(neg, goalID("B"))
	require.ErrorIs(t, err, astar.ErrNegativeCost)
}

// TestSearch_GridShortestPath covers the canonical 5×5 unit-cost grid:
// start (0,0), goal (4,4), Manhattan heuristic → minimum cost 8.
func TestSearch_GridShortestPath(t *testing.T) {
	cg := &cellGrid{width: 5, height: 5, goalX: 4, goalY: 4}
	goal := func(n astar.Node) bool { return n.ID() == "4,4" }

	got, err := astar.Search(cg.at(0, 0), goal)
	require.NoError(t, err)
	require.Equal(t, "4,4", got.ID())
	require.Equal(t, 8.0, got.G())

	// Lineage walks goal → start, one cell per unit of cost.
	line := astar.Lineage(got)
	require.Len(t, line, 9)
	require.Equal(t, "4,4", line[0].ID())
	require.Equal(t, "0,0", line[len(line)-1].ID())
}

// TestSearch_UnreachableGoal isolates the goal cell from the successor
// relation entirely and expects the exhaustion error.
func TestSearch_UnreachableGoal(t *testing.T) {
	cg := &cellGrid{
		width: 5, height: 5, goalX: 4, goalY: 4,
		blocked: map[[2]int]bool{{4, 4}: true},
	}

	_, err := astar.Search(cg.at(0, 0), func(n astar.Node) bool { return n.ID() == "4,4" })
	require.ErrorIs(t, err, astar.ErrExhausted)
}

// TestSearch_LowerCostWins reaches the same state via two paths of differing
// cost and checks the engine's id-keyed bookkeeping keeps the cheaper one.
func TestSearch_LowerCostWins(t *testing.T) {
	fx := &fixture{
		edges: map[string][]arc{
			"S": {{to: "A", cost: 10}, {to: "B", cost: 1}},
			"A": {{to: "G", cost: 1}},
			"B": {{to: "A", cost: 1}}, // S→B→A costs 2, supersedes S→A at 10
		},
		h: map[string]float64{},
	}

	got, err := astar.Search(fx.start("S"), goalID("G"))
	require.NoError(t, err)
	require.Equal(t, 3.0, got.G())

	// The cheap path runs through B.
	var ids []string
	for _, n := range astar.Lineage(got) {
		ids = append(ids, n.ID())
	}
	require.Equal(t, []string{"G", "A", "B", "S"}, ids)
}

// TestSearch_StartIsGoal returns the start node untouched when it already
// satisfies the predicate.
func TestSearch_StartIsGoal(t *testing.T) {
	fx := &fixture{edges: map[string][]arc{}, h: map[string]float64{}}
	s := fx.start("S")

	got, err := astar.Search(s, goalID("S"))
	require.NoError(t, err)
	require.Same(t, astar.Node(s), got)
}

// TestSearch_Idempotence runs the same search twice on equivalent starts.
func TestSearch_Idempotence(t *testing.T) {
	cg := &cellGrid{width: 5, height: 5, goalX: 4, goalY: 4}
	goal := func(n astar.Node) bool { return n.ID() == "4,4" }

	first, err := astar.Search(cg.at(0, 0), goal)
	require.NoError(t, err)
	second, err := astar.Search(cg.at(0, 0), goal)
	require.NoError(t, err)

	require.Equal(t, first.ID(), second.ID())
	require.Equal(t, first.G(), second.G())
}

// TestSearch_MaxExpansions aborts once the expansion budget runs out.
func TestSearch_MaxExpansions(t *testing.T) {
	cg := &cellGrid{width: 5, height: 5, goalX: 4, goalY: 4}
	goal := func(n astar.Node) bool { return n.ID() == "4,4" }

	_, err := astar.Search(cg.at(0, 0), goal, astar.WithMaxExpansions(2))
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
}

// TestSearch_Cancellation surfaces the context error on a cancelled search.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cg := &cellGrid{width: 5, height: 5, goalX: 4, goalY: 4}
	_, err := astar.Search(cg.at(0, 0), func(astar.Node) bool { return false }, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_OnExpandHook counts expansions and never observes the same
// state twice.
func TestSearch_OnExpandHook(t *testing.T) {
	cg := &cellGrid{width: 3, height: 3, goalX: 2, goalY: 2}
	seen := make(map[string]int)

	_, err := astar.Search(cg.at(0, 0),
		func(n astar.Node) bool { return n.ID() == "2,2" },
		astar.WithOnExpand(func(n astar.Node) { seen[n.ID()]++ }),
	)
	require.NoError(t, err)
	for id, count := range seen {
		require.Equal(t, 1, count, "state %s expanded more than once", id)
	}
}

// TestSearch_NegativeSuccessor fails fast when a generated node reports a
// negative cost.
func TestSearch_NegativeSuccessor(t *testing.T) {
	fx := &fixture{
		edges: map[string][]arc{"S": {{to: "X", cost: -5}}},
		h:     map[string]float64{},
	}

	_, err := astar.Search(fx.start("S"), goalID("G"))
	require.ErrorIs(t, err, astar.ErrNegativeCost)
}

// TestF confirms the ordering key derivation.
func TestF(t *testing.T) {
	fx := &fixture{edges: map[string][]arc{}, h: map[string]float64{"A": 7}}
	n := &fixNode{fx: fx, id: "A", g: 3}
	require.Equal(t, 10.0, astar.F(n))
}
