// Package seedfill is a small flood fill (seed fill) toolkit for 2D grids of
// discrete colors.
//
// 🚀 What is in here?
//
//	gridgraph/ — grid geometry: validation, Coord/Dims, Conn4/Conn8 offsets,
//	             read-only same-color component analysis
//	floodfill/ — in-place breadth-first seed fill with hooks and options
//	render/    — text, highlighted diff and raster (PNG-ready) views of rune grids
//	scenario/  — YAML scenario files: grid, start cell, replacement color
//	cmd/seedfill — demonstration driver tying the above together
//
// Quick ASCII example (Conn8, start at top-left, replacement 'o'):
//
//	x . x        o . o
//	. x .   ──▶  . o .
//	x . x        o . o
//
// The grid is always owned by the caller. floodfill.Fill writes into it;
// everything else only reads.
//
//	go get github.com/katalvlaran/seedfill
package seedfill
