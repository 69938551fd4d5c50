// Package floodfill provides tunable options and error definitions
// for seed filling a caller-owned 2D grid.
package floodfill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedfill/gridgraph"
)

// Sentinel errors for Fill and Count.
var (
	// ErrInvalidGrid is returned when the grid is empty or jagged.
	// The gridgraph cause (ErrEmptyGrid or ErrNonRectangular) is wrapped too.
	ErrInvalidGrid = errors.New("floodfill: invalid grid")

	// ErrOutOfBounds is returned when the start coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("floodfill: start coordinate out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")
)

// Option configures Fill behavior via functional arguments.
// If an Option is invalid (e.g. unknown connectivity), it is recorded
// internally and surfaced as ErrOptionViolation before any cell is touched.
type Option func(*Options)

// Options holds parameters and callbacks to customize a fill.
type Options struct {
	// Conn selects the adjacency rule. Defaults to gridgraph.Conn8.
	Conn gridgraph.Connectivity

	// OnEnqueue is called when a cell is claimed and queued.
	// Receives the cell and its BFS depth from the start.
	OnEnqueue func(c gridgraph.Coord, depth int)

	// OnFill is called when a queued cell is taken off the queue and
	// its neighbors are about to be scanned.
	OnFill func(c gridgraph.Coord, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Conn8 (Moore neighborhood)
//   - no-op hooks (OnEnqueue, OnFill)
func DefaultOptions() Options {
	return Options{
		Conn:      gridgraph.Conn8,
		OnEnqueue: func(gridgraph.Coord, int) {},
		OnFill:    func(gridgraph.Coord, int) {},
	}
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
// Any other value → ErrOptionViolation.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		if !conn.Valid() {
			o.err = fmt.Errorf("%w: unknown connectivity %s", ErrOptionViolation, conn)
			return
		}
		o.Conn = conn
	}
}

// WithOnEnqueue registers a callback to run when a cell is claimed.
func WithOnEnqueue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnFill registers a callback to run when a cell is dequeued.
func WithOnFill(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFill = fn
		}
	}
}

// Result describes a completed fill.
//   - Target: the color found at the start cell before the fill.
//   - Filled: number of cells recolored.
//   - Skipped: true when the replacement equaled Target and nothing ran.
type Result[C comparable] struct {
	Target  C
	Filled  int
	Skipped bool
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
