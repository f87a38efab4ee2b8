package gridastar

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Result contains the outcome of a search
type Result struct {
	// Path runs from the first step after start through the goal. Empty when no path exists.
	Path []Position
	// Cost is the number of moves on Path, or -1 when not found.
	Cost          int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	// MaxExpansions bounds the number of frontier extractions. Zero means unbounded.
	MaxExpansions int
	Logger        *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions makes a search stop with ErrBudgetExhausted after n extractions.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{Logger: slog.Default()}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.Default()
	}
	return searchOptions
}

// FindPath returns a shortest path from (startRow, startCol) to (goalRow, goalCol).
//
// The path excludes the start and includes the goal. An unreachable goal, or a goal equal
// to the start, yields an empty path and a nil error. Positions outside the grid yield
// ErrOutOfBounds.
func FindPath(grid Grid, startRow, startCol, goalRow, goalCol int) ([]Position, error) {
	res, err := Search(context.Background(),
		grid,
		Position{Row: startRow, Col: startCol},
		Position{Row: goalRow, Col: goalCol},
	)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs A* from start to goal to completion.
//
// The context only carries tracing; a search is not cancellable unless WithMaxExpansions
// is given. On ErrBudgetExhausted the returned Result reports the work done so far.
func Search(
	contextObject context.Context,
	grid Grid,
	start Position,
	goal Position,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	_, span := startSearchSpan(contextObject, grid, start, goal)
	defer span.End()

	began := time.Now()
	res, err := search(grid, start, goal, searchOptions.MaxExpansions)
	elapsed := time.Since(began)

	setSearchSpanResult(span, res, err)
	outcome := outcomeOf(res, err)
	recordSearchMetrics(outcome, elapsed, res.ExpandedNodes)

	searchOptions.Logger.Debug("search finished",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.String("outcome", outcome),
		slog.Int("expanded_nodes", res.ExpandedNodes),
		slog.Int("path_length", len(res.Path)),
		slog.Duration("duration", elapsed),
	)
	return res, err
}

func search(grid Grid, start, goal Position, maxExpansions int) (Result, error) {
	e, err := newEngine(grid, start, goal)
	if err != nil {
		return Result{Path: []Position{}, Cost: -1}, err
	}
	if err := e.run(maxExpansions); err != nil {
		return e.result(), fmt.Errorf("after %d expansions: %w", e.expanded, err)
	}
	return e.result(), nil
}
