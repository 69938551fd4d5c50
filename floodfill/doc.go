// Package floodfill implements seed fill over a caller-owned [][]C grid:
// starting from one cell, it recolors every cell reachable through
// neighbors of the same original color.
//
// What
//
//   - Fill mutates the grid in place and returns a Result with the
//     original (target) color and the number of recolored cells.
//   - Count sizes the same region without touching the grid.
//   - Adjacency is 8-directional (Moore) by default; WithConnectivity(Conn4)
//     restricts it to orthogonal neighbors.
//   - Hooks: OnEnqueue (cell claimed) and OnFill (cell dequeued).
//
// Cell lifecycle
//
//	Unvisited(target) ──claim──▶ Queued ──dequeue──▶ Filled
//
//	A cell is recolored when it is claimed, so the replacement color marks
//	it visited and no cell is ever queued twice. Nothing leaves Filled;
//	cells outside the start region stay Unvisited and are never written.
//
// Equal colors
//
//	If the replacement equals the start color Fill returns at once with
//	Result.Skipped set and the grid bit-for-bit unchanged. This also makes
//	a repeated Fill with the same start and replacement a no-op.
//
// Complexity (W×H grid, d = 4 or 8)
//
//   - Time:   O(W·H·d)
//   - Memory: O(W·H) worst case for the queue.
//
// Concurrency
//
//	Fill is sequential. Callers must not read or write the grid from other
//	goroutines while a Fill is running.
//
// Errors
//
//   - ErrInvalidGrid      empty grid or rows of differing lengths
//     (wraps gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular).
//   - ErrOutOfBounds      start outside the grid.
//   - ErrOptionViolation  invalid Option.
//
// All errors are reported before the first write.
//
// Usage
//
//	grid := [][]rune{[]rune("aab"), []rune("abb")}
//	res, err := floodfill.Fill(grid, gridgraph.Coord{Row: 0, Col: 0}, 'x')
package floodfill
