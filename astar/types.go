// Package astar defines the graph contract, search states, results and
// configuration options for A* search.
package astar

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/torus/torusgraph"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/torus/astar"

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to NewSearch or FindPath.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrSearchExhausted indicates that the frontier emptied without reaching the goal.
	ErrSearchExhausted = errors.New("astar: search exhausted without reaching goal")
)

// Graph is the read-only view the search needs. *torusgraph.Graph implements it.
// Every method must return an error wrapping torusgraph.ErrNodeNotFound for
// an ID that is not a node of the graph.
type Graph interface {
	// Neighbors returns the IDs adjacent to id.
	Neighbors(id torusgraph.ID) ([]torusgraph.ID, error)
	// EdgeCost is the step cost from a to b, accumulated into g.
	EdgeCost(a, b torusgraph.ID) (int, error)
	// HeuristicDistance estimates the remaining cost from a to b, used in f.
	HeuristicDistance(a, b torusgraph.ID) (int, error)
}

var _ Graph = (*torusgraph.Graph)(nil)

// State is the phase of a Search.
type State int

const (
	// Running means the frontier is non-empty and the goal has not been popped.
	Running State = iota
	// Succeeded means the goal was popped from the frontier; Path is available.
	Succeeded
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
	// Aborted means a node lookup failed and the search stopped.
	Aborted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Done reports whether s is terminal.
func (s State) Done() bool { return s != Running }

// Result is the outcome of a successful search.
//
// Path     – node IDs from start to goal inclusive; a single ID when start == goal.
// Cost     – g-score of the goal, the sum of EdgeCost along Path.
// Expanded – number of nodes moved to the closed set.
type Result struct {
	Path     []torusgraph.ID
	Cost     int
	Expanded int
}

// Options configures a Search.
//
// Logger       – structured logger; defaults to one that discards everything.
// Tracer       – OpenTelemetry tracer; defaults to the global provider's tracer.
// ParentCtx    – parent for the Run span; trace context only, never checked for cancellation.
// OnExpand     – called when a node is moved to the closed set.
// OnRelax      – called when a neighbor's scores are lowered.
type Options struct {
	Logger    *slog.Logger
	Tracer    trace.Tracer
	ParentCtx context.Context
	OnExpand  func(id torusgraph.ID, g, f int)
	OnRelax   func(from, to torusgraph.ID, g, f int)
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger, the global tracer,
// a background parent context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.DiscardHandler),
		Tracer:    otel.Tracer(tracerName),
		ParentCtx: context.Background(),
		OnExpand:  func(torusgraph.ID, int, int) {},
		OnRelax:   func(torusgraph.ID, torusgraph.ID, int, int) {},
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the tracer used for the Run span. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithParentContext sets the context the Run span is started from.
func WithParentContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ParentCtx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked with a node's g and f scores
// when it is moved to the closed set.
func WithOnExpand(fn func(id torusgraph.ID, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback invoked after a neighbor's scores improve.
func WithOnRelax(fn func(from, to torusgraph.ID, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
