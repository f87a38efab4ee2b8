package gridastar

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) Position { return Position{Row: row, Col: col} }

func TestFindPath_WallDetour(t *testing.T) {
	grid := MustParseGrid(
		".#.",
		".#.",
		"...",
	)

	path, err := FindPath(grid, 0, 0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []Position{
		pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2), pos(1, 2), pos(0, 2),
	}, path)
}

func TestFindPath_OpenGrid(t *testing.T) {
	grid := MustParseGrid(
		"...",
		"...",
		"...",
	)

	path, err := FindPath(grid, 0, 0, 2, 2)
	require.NoError(t, err)
	require.Len(t, path, 4)
	assertValidPath(t, grid, pos(0, 0), pos(2, 2), path)
}

func TestFindPath_EnclosedGoal(t *testing.T) {
	grid := MustParseGrid(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)

	path, err := FindPath(grid, 0, 0, 2, 2)
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestFindPath_StartIsGoal(t *testing.T) {
	grid := MustParseGrid("..", "..")

	res, err := Search(context.Background(), grid, pos(1, 1), pos(1, 1))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 1, res.ExpandedNodes)
}

func TestFindPath_BlockedGoalIsUnreachable(t *testing.T) {
	grid := MustParseGrid("..#")

	res, err := Search(context.Background(), grid, pos(0, 0), pos(0, 2))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, -1, res.Cost)
}

func TestFindPath_BlockedStartStillExpands(t *testing.T) {
	grid := MustParseGrid("#..")

	path, err := FindPath(grid, 0, 0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []Position{pos(0, 1), pos(0, 2)}, path)
}

func TestFindPath_OutOfBounds(t *testing.T) {
	grid := MustParseGrid("...", "...")

	tests := []struct {
		name  string
		start Position
		goal  Position
	}{
		{"start row negative", pos(-1, 0), pos(1, 1)},
		{"start col too large", pos(0, 3), pos(1, 1)},
		{"goal row too large", pos(0, 0), pos(2, 0)},
		{"goal col negative", pos(0, 0), pos(1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FindPath(grid, tt.start.Row, tt.start.Col, tt.goal.Row, tt.goal.Col)
			require.ErrorIs(t, err, ErrOutOfBounds)
			assert.Nil(t, path)
		})
	}
}

func TestFindPath_EmptyGridIsOutOfBounds(t *testing.T) {
	_, err := FindPath(Grid{}, 0, 0, 0, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFindPath_RaggedGrid(t *testing.T) {
	grid := Grid{
		{Passable, Passable},
		{Passable},
	}
	_, err := FindPath(grid, 0, 0, 1, 0)
	require.ErrorIs(t, err, ErrRaggedGrid)
}

func TestSearch_ReportsCostAndExpansions(t *testing.T) {
	grid := MustParseGrid(
		".#.",
		".#.",
		"...",
	)

	res, err := Search(context.Background(), grid, pos(0, 0), pos(0, 2))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 6, res.Cost)
	// every passable cell is extracted once, the goal included
	assert.Equal(t, 7, res.ExpandedNodes)
}

func TestSearch_MaxExpansions(t *testing.T) {
	grid := MustParseGrid(
		".#.",
		".#.",
		"...",
	)

	res, err := Search(context.Background(), grid, pos(0, 0), pos(0, 2), WithMaxExpansions(3))
	require.ErrorIs(t, err, ErrBudgetExhausted)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.ExpandedNodes)
	assert.Empty(t, res.Path)

	res, err = Search(context.Background(), grid, pos(0, 0), pos(0, 2), WithMaxExpansions(7))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Len(t, res.Path, 6)
}

func TestSearch_RepeatedCallsAgree(t *testing.T) {
	grid := MustParseGrid(
		"......",
		".##.#.",
		"...#..",
		"#.#...",
		"......",
	)

	first, err := Search(context.Background(), grid, pos(0, 0), pos(4, 5))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Search(context.Background(), grid, pos(0, 0), pos(4, 5))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_MatchesBreadthFirstOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 400; trial++ {
		rows, cols := 1+rng.Intn(9), 1+rng.Intn(9)
		grid := randomGrid(rng, rows, cols, 0.3)
		start := pos(rng.Intn(rows), rng.Intn(cols))
		goal := pos(rng.Intn(rows), rng.Intn(cols))

		res, err := Search(context.Background(), grid, start, goal)
		require.NoError(t, err)

		want := bfsDistance(grid, start, goal)
		if want < 0 {
			assert.False(t, res.Found, "trial %d: found a path BFS says does not exist\n%s", trial, grid.Render(nil))
			assert.Empty(t, res.Path)
			continue
		}
		require.True(t, res.Found, "trial %d: missed a path of length %d\n%s", trial, want, grid.Render(nil))
		assert.Equal(t, want, res.Cost, "trial %d", trial)
		assert.Len(t, res.Path, want, "trial %d", trial)
		assertValidPath(t, grid, start, goal, res.Path)
	}
}

// assertValidPath checks that path walks from start to goal through adjacent passable cells.
func assertValidPath(t *testing.T, grid Grid, start, goal Position, path []Position) {
	t.Helper()
	if len(path) == 0 {
		return
	}
	prev := start
	for _, p := range path {
		require.True(t, grid.InBounds(p), "%s outside grid", p)
		assert.Equal(t, Passable, grid[p.Row][p.Col], "%s is blocked", p)
		assert.Equal(t, 1, Manhattan(prev, p), "%s does not follow %s", p, prev)
		prev = p
	}
	assert.Equal(t, goal, path[len(path)-1])
}

func randomGrid(rng *rand.Rand, rows, cols int, density float64) Grid {
	grid := make(Grid, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		for c := range grid[r] {
			if rng.Float64() < density {
				grid[r][c] = Blocked
			}
		}
	}
	return grid
}

// bfsDistance is the number of moves on a shortest path, or -1. Like the search, it
// leaves the start cell even when it is blocked.
func bfsDistance(grid Grid, start, goal Position) int {
	dist := map[Position]int{start: 0}
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !grid.InBounds(next) || grid[next.Row][next.Col] == Blocked {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}
