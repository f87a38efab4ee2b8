package gridastar

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("gridastar")

// Search outcomes used as the "outcome" label.
const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeBudget      = "budget_exhausted"
	outcomeInvalid     = "invalid_input"
)

var (
	// searchTotal counts finished searches by outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridastar_search_total",
		Help: "Total searches by outcome",
	}, []string{"outcome"})

	// searchDuration tracks wall time of a full search
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridastar_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	})

	// searchExpanded tracks how many nodes each search extracted from the frontier
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridastar_search_expanded_nodes",
		Help:    "Nodes extracted from the frontier per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
)

func outcomeOf(res Result, err error) string {
	switch {
	case errors.Is(err, ErrBudgetExhausted):
		return outcomeBudget
	case err != nil:
		return outcomeInvalid
	case res.Found:
		return outcomeFound
	default:
		return outcomeUnreachable
	}
}

// recordSearchMetrics records one finished search.
func recordSearchMetrics(outcome string, duration time.Duration, expanded int) {
	searchTotal.WithLabelValues(outcome).Inc()
	searchDuration.Observe(duration.Seconds())
	if outcome != outcomeInvalid {
		searchExpanded.Observe(float64(expanded))
	}
}

// startSearchSpan creates a span for a search call.
func startSearchSpan(ctx context.Context, grid Grid, start, goal Position) (context.Context, trace.Span) {
	return tracer.Start(ctx, "gridastar.Search",
		trace.WithAttributes(
			attribute.Int("grid.rows", grid.Rows()),
			attribute.Int("grid.cols", grid.Cols()),
			attribute.String("search.start", start.String()),
			attribute.String("search.goal", goal.String()),
		),
	)
}

// setSearchSpanResult sets the result attributes on a search span.
func setSearchSpanResult(span trace.Span, res Result, err error) {
	span.SetAttributes(
		attribute.String("search.outcome", outcomeOf(res, err)),
		attribute.Int("search.expanded_nodes", res.ExpandedNodes),
		attribute.Int("search.path_length", len(res.Path)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
	}
}
