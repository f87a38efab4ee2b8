package gridastar

import (
	"fmt"
	"log/slog"
)

// NodeScore is the cost bookkeeping of one discovered node.
type NodeScore struct {
	Position Position `json:"position"`
	G        int      `json:"g"`
	H        int      `json:"h"`
	F        int      `json:"f"`
	Closed   bool     `json:"closed"`
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Position    `json:"current"`
	Open      []Position  `json:"open"`
	Closed    []Position  `json:"closed"`
	Scores    []NodeScore `json:"scores"`
	Done      bool        `json:"done"`
	Found     bool        `json:"found"`
	Path      []Position  `json:"path,omitempty"`
	StepIndex int         `json:"step"`
}

// Stepper advances a search one frontier extraction at a time, for visualizers and debugging.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	engine        *engine
	start, goal   Position
	maxExpansions int
	logger        *slog.Logger
}

// NewStepper indexes the grid and seeds the frontier, without expanding anything.
func NewStepper(grid Grid, start, goal Position, options ...Option) (*Stepper, error) {
	opts := applyOptions(options)
	e, err := newEngine(grid, start, goal)
	if err != nil {
		return nil, err
	}
	return &Stepper{
		engine:        e,
		start:         start,
		goal:          goal,
		maxExpansions: opts.MaxExpansions,
		logger:        opts.Logger,
	}, nil
}

// Done reports whether the search has reached a terminal state.
func (s *Stepper) Done() bool { return s.engine.state != stateRunning }

// Step advances the search by one extraction and returns a snapshot.
// Once done, further calls return the final snapshot again.
func (s *Stepper) Step() (StepSnapshot, error) {
	e := s.engine
	if e.state == stateRunning && s.maxExpansions > 0 && e.expanded >= s.maxExpansions {
		return s.snapshot(), fmt.Errorf("after %d expansions: %w", e.expanded, ErrBudgetExhausted)
	}
	wasRunning := e.state == stateRunning
	e.step()
	if wasRunning && e.state != stateRunning {
		s.logger.Debug("stepper finished",
			slog.String("start", s.start.String()),
			slog.String("goal", s.goal.String()),
			slog.String("outcome", e.state.String()),
			slog.Int("expanded_nodes", e.expanded),
		)
	}
	return s.snapshot(), nil
}

// Result returns the search outcome so far.
func (s *Stepper) Result() Result { return s.engine.result() }

func (s *Stepper) snapshot() StepSnapshot {
	e := s.engine
	snap := StepSnapshot{
		Open:      e.table.positions(e.open.open()),
		Closed:    []Position{},
		Scores:    []NodeScore{},
		Done:      e.state != stateRunning,
		Found:     e.state == stateFound,
		StepIndex: e.expanded,
	}
	if e.current != notQueued {
		snap.Current = e.table.at(e.current).pos
	}
	for i := range e.table.nodes {
		node := e.table.at(i)
		if !node.visited {
			continue
		}
		if node.closed {
			snap.Closed = append(snap.Closed, node.pos)
		}
		snap.Scores = append(snap.Scores, NodeScore{
			Position: node.pos,
			G:        node.g,
			H:        node.h,
			F:        node.f,
			Closed:   node.closed,
		})
	}
	if snap.Found {
		snap.Path = e.path()
	}
	return snap
}
