// Package astar implements the A* loop, its cost bookkeeping and path
// reconstruction over a Graph.
package astar

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/torus/torusgraph"
)

// Search holds the mutable state of one A* query from start to goal.
// It is single-use and not safe for concurrent use; build a new Search per query.
type Search struct {
	graph   Graph
	start   torusgraph.ID
	goal    torusgraph.ID
	options Options

	open     *frontier                       // nodes discovered but not yet evaluated
	closed   map[torusgraph.ID]struct{}      // nodes fully evaluated
	cameFrom map[torusgraph.ID]torusgraph.ID // best known predecessor
	gScore   map[torusgraph.ID]int           // best known cost from start
	fScore   map[torusgraph.ID]int           // gScore + heuristic to goal

	state    State
	err      error
	path     []torusgraph.ID
	expanded int
}

// FindPath runs a fresh Search from start to goal to completion.
// See NewSearch and Search.Run for the errors it can return.
func FindPath(g Graph, start, goal torusgraph.ID, opts ...Option) (Result, error) {
	s, err := NewSearch(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Run()
}

// NewSearch prepares a search in the Running state with open = {start},
// g(start) = 0 and f(start) = HeuristicDistance(start, goal).
//
// Returns ErrNilGraph for a nil graph, or an error wrapping
// torusgraph.ErrNodeNotFound if start or goal is not a node of g.
func NewSearch(g Graph, start, goal torusgraph.ID, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// HeuristicDistance validates both endpoints.
	h, err := g.HeuristicDistance(start, goal)
	if err != nil {
		return nil, fmt.Errorf("astar: search %s → %s: %w", start, goal, err)
	}

	s := &Search{
		graph:    g,
		start:    start,
		goal:     goal,
		options:  cfg,
		open:     newFrontier(),
		closed:   make(map[torusgraph.ID]struct{}),
		cameFrom: make(map[torusgraph.ID]torusgraph.ID),
		gScore:   map[torusgraph.ID]int{start: 0},
		fScore:   map[torusgraph.ID]int{start: h},
		state:    Running,
	}
	s.open.push(start, h)

	return s, nil
}

// State returns the current phase of the search.
func (s *Search) State() State { return s.state }

// Expanded returns the number of nodes moved to the closed set so far.
func (s *Search) Expanded() int { return s.expanded }

// Path returns a copy of the path from start to goal once the search has
// Succeeded, and nil in every other state.
func (s *Search) Path() []torusgraph.ID {
	if s.state != Succeeded {
		return nil
	}

	return slices.Clone(s.path)
}

// Step performs one transition of the search:
//
//  1. pop the open node with the lowest f (earliest inserted on ties);
//  2. if it is the goal, reconstruct the path and move to Succeeded;
//  3. otherwise close it and, for each neighbor not closed, lower its scores
//     when g(current)+EdgeCost(current, neighbor) beats the known g;
//  4. if the open set is now empty, move to Exhausted.
//
// A failed node lookup moves the search to Aborted. Step on a finished
// search returns its final state and error again.
func (s *Search) Step() (State, error) {
	if s.state.Done() {
		return s.state, s.err
	}
	if s.open.Len() == 0 {
		s.finish(Exhausted, ErrSearchExhausted)

		return s.state, s.err
	}

	current := s.open.pop()
	if current == s.goal {
		s.path = s.reconstructPath()
		s.finish(Succeeded, nil)

		return s.state, nil
	}

	s.closed[current] = struct{}{}
	s.expanded++
	g := s.gScore[current]
	s.options.OnExpand(current, g, s.fScore[current])
	s.options.Logger.Debug("astar: expand",
		slog.String("node", current.String()),
		slog.Int("g", g),
		slog.Int("f", s.fScore[current]),
		slog.Int("open", s.open.Len()))

	if err := s.relaxNeighbors(current, g); err != nil {
		s.finish(Aborted, fmt.Errorf("astar: expanding %s: %w", current, err))

		return s.state, s.err
	}

	if s.open.Len() == 0 {
		s.finish(Exhausted, ErrSearchExhausted)
	}

	return s.state, s.err
}

// relaxNeighbors applies step 3 of Step to every neighbor of current.
func (s *Search) relaxNeighbors(current torusgraph.ID, g int) error {
	neighbors, err := s.graph.Neighbors(current)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if _, done := s.closed[nb]; done {
			continue
		}
		step, err := s.graph.EdgeCost(current, nb)
		if err != nil {
			return err
		}
		tentative := g + step
		if known, ok := s.gScore[nb]; ok && tentative >= known {
			continue
		}
		h, err := s.graph.HeuristicDistance(nb, s.goal)
		if err != nil {
			return err
		}
		f := tentative + h
		s.cameFrom[nb] = current
		s.gScore[nb] = tentative
		s.fScore[nb] = f
		s.open.push(nb, f)
		s.options.OnRelax(current, nb, tentative, f)
	}

	return nil
}

// reconstructPath walks cameFrom back from the goal until a node without a
// predecessor, which is start, and returns the reversed walk.
func (s *Search) reconstructPath() []torusgraph.ID {
	path := []torusgraph.ID{s.goal}
	for cur := s.goal; ; {
		prev, ok := s.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}

// finish moves the search to a terminal state.
func (s *Search) finish(state State, err error) {
	s.state = state
	s.err = err
}

// Run steps the search until it finishes and returns the Result on success.
//
// Errors:
//
//   - ErrSearchExhausted if the goal is unreachable.
//   - an error wrapping torusgraph.ErrNodeNotFound if the graph reported a
//     neighbor it cannot resolve.
//
// Each Run that does the stepping records one span, one log record and the
// package metrics. Calling Run again after the search finished returns the
// same outcome without recording anything.
func (s *Search) Run() (Result, error) {
	if s.state.Done() {
		return s.outcome()
	}

	_, span := s.options.Tracer.Start(s.options.ParentCtx, "astar.Search",
		trace.WithAttributes(
			attribute.String("astar.start", s.start.String()),
			attribute.String("astar.goal", s.goal.String()),
		))
	defer span.End()

	began := time.Now()
	for !s.state.Done() {
		s.Step()
	}
	elapsed := time.Since(began)
	observe(s.state, s.expanded, len(s.path), elapsed)

	span.SetAttributes(
		attribute.String("astar.result", s.state.String()),
		attribute.Int("astar.expanded", s.expanded),
		attribute.Int("astar.path_length", len(s.path)),
	)
	attrs := []any{
		slog.String("start", s.start.String()),
		slog.String("goal", s.goal.String()),
		slog.String("result", s.state.String()),
		slog.Int("expanded", s.expanded),
		slog.Duration("elapsed", elapsed),
	}

	switch s.state {
	case Succeeded:
		span.SetStatus(codes.Ok, "path found")
		s.options.Logger.Info("astar: search finished",
			append(attrs, slog.Int("path_length", len(s.path)), slog.Int("cost", s.gScore[s.goal]))...)
	case Exhausted:
		span.RecordError(s.err)
		span.SetStatus(codes.Error, "frontier exhausted")
		s.options.Logger.Info("astar: search finished", attrs...)
	default:
		span.RecordError(s.err)
		span.SetStatus(codes.Error, "node lookup failed")
		s.options.Logger.Warn("astar: search aborted", append(attrs, slog.Any("error", s.err))...)
	}

	return s.outcome()
}

// outcome converts the terminal state into Run's return values.
func (s *Search) outcome() (Result, error) {
	if s.state != Succeeded {
		return Result{}, s.err
	}

	return Result{
		Path:     slices.Clone(s.path),
		Cost:     s.gScore[s.goal],
		Expanded: s.expanded,
	}, nil
}
