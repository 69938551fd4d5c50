package render

import "errors"

var (
	// ErrCellSize indicates a raster cell edge below one pixel.
	ErrCellSize = errors.New("render: cell size must be at least 1 pixel")
	// ErrColorName indicates a palette entry naming an unknown SVG color.
	ErrColorName = errors.New("render: unknown color name")
	// ErrPaletteKey indicates a palette key that is not exactly one rune.
	ErrPaletteKey = errors.New("render: palette key must be a single rune")
)
