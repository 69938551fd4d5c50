package render

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/seedfill/gridgraph"
)

// Palette maps cell runes to colors for raster output.
type Palette struct {
	Colors   map[rune]color.Color
	Fallback color.Color // used for runes missing from Colors
}

// DefaultPalette covers the letters of the reference picture:
// Y yellow, G grey, X black, W white, R red, B blue, C cyan.
// Anything else is drawn magenta.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[rune]color.Color{
			'Y': colornames.Yellow,
			'G': colornames.Grey,
			'X': colornames.Black,
			'W': colornames.White,
			'R': colornames.Red,
			'B': colornames.Blue,
			'C': colornames.Cyan,
		},
		Fallback: colornames.Magenta,
	}
}

// PaletteFromNames builds a Palette on top of DefaultPalette from
// single-rune keys and SVG 1.1 color names ("teal", "darkorange", ...).
// Returns ErrPaletteKey or ErrColorName for bad entries.
func PaletteFromNames(names map[string]string) (Palette, error) {
	p := DefaultPalette()
	for k, name := range names {
		r, size := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError || size != len(k) {
			return Palette{}, fmt.Errorf("%w: %q", ErrPaletteKey, k)
		}
		c, ok := colornames.Map[name]
		if !ok {
			return Palette{}, fmt.Errorf("%w: %q for %q", ErrColorName, name, k)
		}
		p.Colors[r] = c
	}
	return p, nil
}

// lookup returns the color for r.
func (p Palette) lookup(r rune) color.Color {
	if c, ok := p.Colors[r]; ok {
		return c
	}
	if p.Fallback != nil {
		return p.Fallback
	}
	return color.Transparent
}

// Image rasterizes grid with one cell×cell square per grid cell.
// The grid is drawn one pixel per cell and then scaled with
// nearest-neighbor sampling, so squares keep hard edges.
// Complexity: O(W×H×cell²).
func Image(grid [][]rune, p Palette, cell int) (*image.RGBA, error) {
	dims, err := gridgraph.Validate(grid)
	if err != nil {
		return nil, err
	}
	if cell < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCellSize, cell)
	}

	src := image.NewRGBA(image.Rect(0, 0, dims.Cols, dims.Rows))
	for y, row := range grid {
		for x, r := range row {
			src.Set(x, y, p.lookup(r))
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, dims.Cols*cell, dims.Rows*cell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}
