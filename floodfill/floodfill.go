// Package floodfill recolors the connected region around a seed cell of a
// caller-owned 2D grid, in place, using breadth-first traversal.
package floodfill

import (
	"fmt"

	"github.com/katalvlaran/seedfill/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    gridgraph.Coord
	depth int
}

// walker encapsulates mutable fill state.
//
// A cell is claimed by recoloring it at enqueue time, so the replacement
// color doubles as the visited marker and every cell is queued at most once.
// That requires target != replacement, which Fill checks before creating a walker.
type walker[C comparable] struct {
	grid        [][]C
	dims        gridgraph.Dims
	offsets     [][2]int
	target      C
	replacement C
	opts        Options
	queue       []queueItem
	filled      int
}

// Fill recolors, in place, every cell connected to start (per the configured
// Connectivity, Conn8 by default) that holds the start cell's original color.
//
// All validation happens before the first write, so on error the grid is
// untouched. Returns ErrInvalidGrid for empty or jagged grids,
// ErrOutOfBounds for a start outside the grid, or ErrOptionViolation.
// If replacement already equals the start color, Fill returns immediately
// with Result.Skipped set.
//
// Time: O(W·H·d), Memory: O(W·H) worst case for the queue.
func Fill[C comparable](grid [][]C, start gridgraph.Coord, replacement C, opts ...Option) (Result[C], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result[C]{}, err
	}
	dims, err := validate(grid, start)
	if err != nil {
		return Result[C]{}, err
	}

	target := grid[start.Row][start.Col]
	if target == replacement {
		return Result[C]{Target: target, Skipped: true}, nil
	}

	w := &walker[C]{
		grid:        grid,
		dims:        dims,
		offsets:     gridgraph.Offsets(o.Conn),
		target:      target,
		replacement: replacement,
		opts:        o,
		queue:       make([]queueItem, 0, 64),
	}
	// Seed queue with start cell
	w.claim(start, 0)
	w.loop()

	return Result[C]{Target: target, Filled: w.filled}, nil
}

// Count reports how many cells Fill would recolor from start with any
// replacement other than the start color, without mutating the grid.
// Returns the same validation errors as Fill.
func Count[C comparable](grid [][]C, start gridgraph.Coord, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if _, err = validate(grid, start); err != nil {
		return 0, err
	}
	comp, err := gridgraph.ComponentOf(grid, start, o.Conn)
	if err != nil {
		return 0, err
	}

	return len(comp), nil
}

// validate checks grid shape and start position, mapping failures onto
// this package's sentinels.
func validate[C any](grid [][]C, start gridgraph.Coord) (gridgraph.Dims, error) {
	dims, err := gridgraph.Validate(grid)
	if err != nil {
		return gridgraph.Dims{}, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}
	if !dims.InBounds(start) {
		return gridgraph.Dims{}, fmt.Errorf("%w: %s outside %s grid", ErrOutOfBounds, start, dims)
	}
	return dims, nil
}

// claim moves c from Unvisited to Queued: recolor, count, notify, enqueue.
func (w *walker[C]) claim(c gridgraph.Coord, depth int) {
	w.grid[c.Row][c.Col] = w.replacement
	w.filled++
	w.opts.OnEnqueue(c, depth)
	w.queue = append(w.queue, queueItem{at: c, depth: depth})
}

// loop processes the queue until empty. It cannot fail: every neighbor is
// bounds-checked before it is read.
func (w *walker[C]) loop() {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.opts.OnFill(item.at, item.depth)

		for _, d := range w.offsets {
			nb := item.at.Add(d[0], d[1])
			if !w.dims.InBounds(nb) {
				continue
			}
			// current color, not a cached one: claimed cells no longer match
			if w.grid[nb.Row][nb.Col] != w.target {
				continue
			}
			w.claim(nb, item.depth+1)
		}
	}
}
