// Package render turns rune grids into something a person can look at:
// aligned text lines, highlighted before/after diffs, or raster images.
// It is the only side-effecting companion of package floodfill and knows
// nothing about how a grid was produced.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/seedfill/gridgraph"
)

// cellWidth returns the widest display width among all cells, at least 1.
func cellWidth(grid [][]rune) int {
	w := 1
	for _, row := range grid {
		for _, r := range row {
			if rw := runewidth.RuneWidth(r); rw > w {
				w = rw
			}
		}
	}
	return w
}

// Lines renders grid as one string per row. Cells are separated by a single
// space and padded to a common display width so columns line up even with
// wide runes.
// Complexity: O(W×H).
func Lines(grid [][]rune) []string {
	width := cellWidth(grid)
	out := make([]string, len(grid))
	var b strings.Builder
	for y, row := range grid {
		b.Reset()
		for x, r := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			if x == len(row)-1 {
				b.WriteRune(r)
				continue
			}
			b.WriteString(runewidth.FillRight(string(r), width))
		}
		out[y] = b.String()
	}
	return out
}

// Text writes Lines(grid) to w, newline terminated.
// Returns gridgraph validation errors for empty or jagged grids.
func Text(w io.Writer, grid [][]rune) error {
	if _, err := gridgraph.Validate(grid); err != nil {
		return err
	}
	for _, line := range Lines(grid) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
