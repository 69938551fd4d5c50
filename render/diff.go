package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/seedfill/gridgraph"
)

// DefaultMarker follows each changed cell when colors are disabled.
const DefaultMarker = '*'

// DiffOptions controls how Diff highlights changed cells.
type DiffOptions struct {
	// Highlight is the attribute set for changed cells.
	// Empty means black on bright cyan.
	Highlight []color.Attribute
	// NoColor disables ANSI sequences; changed cells are then followed
	// by Marker and unchanged cells by a space.
	NoColor bool
	// Marker defaults to DefaultMarker.
	Marker rune
}

// Diff writes after, one row per line, with every cell that differs from
// before highlighted. Both grids must be valid and share dimensions.
func Diff(w io.Writer, before, after [][]rune, opts DiffOptions) error {
	changed, err := gridgraph.Diff(before, after)
	if err != nil {
		return err
	}
	dims, _ := gridgraph.Validate(after)
	mark := make([]bool, dims.Cells())
	for _, c := range changed {
		mark[dims.Index(c)] = true
	}

	attrs := opts.Highlight
	if len(attrs) == 0 {
		attrs = []color.Attribute{color.FgBlack, color.BgHiCyan}
	}
	hl := color.New(attrs...)
	// terminal detection is the caller's job; see cmd/seedfill
	hl.EnableColor()
	marker := opts.Marker
	if marker == 0 {
		marker = DefaultMarker
	}

	width := max(cellWidth(before), cellWidth(after))
	var b strings.Builder
	for y, row := range after {
		b.Reset()
		for x, r := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			cell := runewidth.FillRight(string(r), width)
			hit := mark[dims.Index(gridgraph.Coord{Row: y, Col: x})]
			switch {
			case opts.NoColor && hit:
				b.WriteString(cell)
				b.WriteRune(marker)
			case opts.NoColor:
				b.WriteString(cell)
				b.WriteByte(' ')
			case hit:
				b.WriteString(hl.Sprint(cell))
			default:
				b.WriteString(cell)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
