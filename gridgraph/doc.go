// Package gridgraph treats a rectangular 2D grid of colored cells as a graph,
// enabling shape validation and same-color component analysis.
//
// What:
//
//   - Validate checks a caller-owned [][]C grid and reports its Dims.
//   - Coord, Dims and Connectivity describe positions, extents and adjacency.
//   - ComponentOf finds the region of equal values around a start cell.
//   - ConnectedComponents partitions the whole grid into such regions.
//   - Clone, Equal and Diff support before/after comparisons.
//
// Why:
//
//   - Flood fill: validation and neighbor offsets shared with package floodfill.
//   - Testing: ComponentOf is a read-only oracle for what a fill must touch.
//   - Reporting: count regions of a picture before and after recoloring.
//
// Complexity:
//
//   - Validate:            O(H).
//   - ComponentOf:         O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Clone, Equal, Diff:  O(W×H).
//
// Connectivity:
//
//   - Conn4: N, W, E, S.
//   - Conn8: NW, N, NE, W, E, SW, S, SE (Moore neighborhood).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: start coordinate outside the grid.
//   - ErrConnectivity: unknown Connectivity value.
//   - ErrDimsMismatch: Diff called on grids of different shape.
package gridgraph
