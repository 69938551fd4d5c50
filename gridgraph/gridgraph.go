// Package gridgraph provides utilities to treat a rectangular 2D grid of
// colored cells as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Shape validation of caller-owned [][]C grids
//   - Identification of same-color connected components
//   - Cloning, comparison and cell-level diffs of grids
//
// Functions here never mutate the grids they are given.
package gridgraph

import "fmt"

// Validate checks that cells is non-empty and rectangular and returns its Dims.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular (with the offending row) if any row length differs.
// Complexity: O(H).
func Validate[C any](cells [][]C) (Dims, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Dims{}, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return Dims{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	return Dims{Rows: h, Cols: w}, nil
}

// Clone deep-copies cells. A nil grid yields nil.
// Complexity: O(W×H) time and memory.
func Clone[C any](cells [][]C) [][]C {
	if cells == nil {
		return nil
	}
	out := make([][]C, len(cells))
	for y, row := range cells {
		out[y] = make([]C, len(row))
		copy(out[y], row)
	}

	return out
}

// Equal reports whether a and b have identical shape and cell values.
// Complexity: O(W×H).
func Equal[C comparable](a, b [][]C) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}

	return true
}

// Diff returns the coordinates whose values differ between before and after,
// in row-major order. Both grids must be valid and share Dims.
// Complexity: O(W×H).
func Diff[C comparable](before, after [][]C) ([]Coord, error) {
	db, err := Validate(before)
	if err != nil {
		return nil, err
	}
	da, err := Validate(after)
	if err != nil {
		return nil, err
	}
	if db != da {
		return nil, fmt.Errorf("%w: %s vs %s", ErrDimsMismatch, db, da)
	}

	var changed []Coord
	for y := 0; y < db.Rows; y++ {
		for x := 0; x < db.Cols; x++ {
			if before[y][x] != after[y][x] {
				changed = append(changed, Coord{Row: y, Col: x})
			}
		}
	}

	return changed, nil
}
