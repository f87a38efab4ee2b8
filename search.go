package gridastar

import (
	"errors"

	"github.com/pdrpinto/gridastar/internal"
)

// searchState is the orchestration state of one search.
type searchState int

const (
	stateRunning searchState = iota
	stateFound
	stateUnreachable
)

func (s searchState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateFound:
		return "found"
	case stateUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// engine owns the node table and frontier of a single search.
type engine struct {
	table    *nodeTable
	open     *frontier
	goal     Position
	state    searchState
	expanded int
	current  int
	scratch  []int
}

// newEngine indexes the grid and seeds the frontier with the start node.
func newEngine(grid Grid, start, goal Position) (*engine, error) {
	table, err := newNodeTable(grid, start, goal)
	if err != nil {
		return nil, err
	}
	e := &engine{
		table:   table,
		open:    newFrontier(table),
		goal:    goal,
		current: notQueued,
		scratch: make([]int, 0, 4),
	}

	s := table.index(start)
	node := table.at(s)
	node.g = 0
	node.h = Manhattan(start, goal)
	node.f = node.h
	node.visited = true
	e.open.insert(s)
	return e, nil
}

// step performs one extraction and, unless it hit the goal, one relaxation.
func (e *engine) step() {
	if e.state != stateRunning {
		return
	}
	i, err := e.open.extractMin()
	if errors.Is(err, errEmptyFrontier) {
		e.state = stateUnreachable
		return
	}
	e.expanded++
	e.current = i
	if i == e.table.goal {
		e.state = stateFound
		return
	}
	e.relax(i)
}

// run steps until the search is found or unreachable, or maxExpansions (when > 0) is spent.
func (e *engine) run(maxExpansions int) error {
	for e.state == stateRunning {
		if maxExpansions > 0 && e.expanded >= maxExpansions {
			return ErrBudgetExhausted
		}
		e.step()
	}
	return nil
}

// path returns the start-exclusive, goal-inclusive route, empty unless found.
func (e *engine) path() []Position {
	if e.state != stateFound {
		return []Position{}
	}
	return e.table.positions(internal.ReconstructPath(e.table.goal, e.table.predecessorOf))
}

// cost is the G of the goal once found, -1 otherwise.
func (e *engine) cost() int {
	if e.state != stateFound {
		return -1
	}
	return e.table.at(e.table.goal).g
}

func (e *engine) result() Result {
	return Result{
		Path:          e.path(),
		Cost:          e.cost(),
		ExpandedNodes: e.expanded,
		Found:         e.state == stateFound,
	}
}
