package gridastar

import (
	"fmt"
	"math"

	"github.com/pdrpinto/gridastar/internal"
)

const (
	infinity      = math.MaxInt
	unsetH        = -1
	noPredecessor = internal.NoPredecessor
	notQueued     = -1
)

// searchNode is the per-cell bookkeeping of one search.
type searchNode struct {
	pos     Position
	terrain Cell

	g, h, f int

	visited bool
	closed  bool

	// predecessor is an index into nodeTable.nodes, or noPredecessor.
	predecessor int

	heapIndex int
	seq       int
}

// nodeTable is the arena of search nodes for one call, indexed row*cols+col.
type nodeTable struct {
	rows, cols int
	nodes      []searchNode
	goal       int
}

// newNodeTable mirrors grid into a fresh table. Start and goal must be inside the grid.
func newNodeTable(grid Grid, start, goal Position) (*nodeTable, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("start %s in %dx%d grid: %w", start, grid.Rows(), grid.Cols(), ErrOutOfBounds)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("goal %s in %dx%d grid: %w", goal, grid.Rows(), grid.Cols(), ErrOutOfBounds)
	}

	table := &nodeTable{
		rows:  grid.Rows(),
		cols:  grid.Cols(),
		nodes: make([]searchNode, grid.Rows()*grid.Cols()),
	}
	for r, row := range grid {
		for c, cell := range row {
			table.nodes[r*table.cols+c] = searchNode{
				pos:         Position{Row: r, Col: c},
				terrain:     cell,
				g:           infinity,
				h:           unsetH,
				f:           infinity,
				predecessor: noPredecessor,
				heapIndex:   notQueued,
			}
		}
	}
	table.goal = table.index(goal)
	return table, nil
}

func (t *nodeTable) index(p Position) int { return p.Row*t.cols + p.Col }

func (t *nodeTable) at(i int) *searchNode { return &t.nodes[i] }

// neighbors appends the in-bounds up/down/left/right neighbours of node i to dst.
func (t *nodeTable) neighbors(dst []int, i int) []int {
	p := t.nodes[i].pos
	if p.Row > 0 {
		dst = append(dst, i-t.cols)
	}
	if p.Row < t.rows-1 {
		dst = append(dst, i+t.cols)
	}
	if p.Col > 0 {
		dst = append(dst, i-1)
	}
	if p.Col < t.cols-1 {
		dst = append(dst, i+1)
	}
	return dst
}

func (t *nodeTable) predecessorOf(i int) int { return t.nodes[i].predecessor }

func (t *nodeTable) positions(indices []int) []Position {
	out := make([]Position, len(indices))
	for k, i := range indices {
		out[k] = t.nodes[i].pos
	}
	return out
}
