package gridastar

import (
	"fmt"
	"strings"
)

// WallMarker is the rune ParseGrid reads as a blocked cell.
const WallMarker = '#'

// Cell is the terrain of a single grid position.
type Cell uint8

const (
	Passable Cell = iota
	Blocked
)

// String returns the one-character form used by ParseGrid and Render.
func (c Cell) String() string {
	if c == Blocked {
		return string(WallMarker)
	}
	return "."
}

// Position identifies a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Manhattan returns |dr| + |dc| between two positions.
func Manhattan(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Grid is a rectangular row-major mapping from position to cell.
type Grid [][]Cell

// ParseGrid builds a Grid from text rows. WallMarker is blocked, any other rune is passable.
func ParseGrid(rows ...string) (Grid, error) {
	grid := make(Grid, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		grid[r] = make([]Cell, len(runes))
		for c, ch := range runes {
			if ch == WallMarker {
				grid[r][c] = Blocked
			}
		}
	}
	if err := grid.validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// MustParseGrid is ParseGrid for fixtures; it panics on ragged input.
func MustParseGrid(rows ...string) Grid {
	grid, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return grid
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, taken from the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p addresses a cell of g.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// validate checks that every row has the width of the first.
func (g Grid) validate() error {
	cols := g.Cols()
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrRaggedGrid)
		}
	}
	return nil
}

// Render draws the grid one row per line, marking path cells with '*'.
func (g Grid) Render(path []Position) string {
	onPath := make(map[Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	var b strings.Builder
	for r, row := range g {
		for c, cell := range row {
			if onPath[Position{Row: r, Col: c}] {
				b.WriteByte('*')
				continue
			}
			b.WriteString(cell.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
