package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional (Moore) connectivity: NW, N, NE, W, E, SW, S, SE.
	Conn8
)

// String returns "conn4", "conn8" or "conn(n)" for unknown values.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("conn(%d)", int(c))
	}
}

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// Offset tables as [dRow, dCol] pairs, in row-major scan order.
var (
	offsets4 = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Offsets returns the neighbor offsets for conn as [dRow, dCol] pairs,
// or nil for an unknown Connectivity. The returned slice is shared and
// must not be modified.
// Complexity: O(1).
func Offsets(conn Connectivity) [][2]int {
	switch conn {
	case Conn4:
		return offsets4
	case Conn8:
		return offsets8
	default:
		return nil
	}
}

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Dims holds the extents of a validated rectangular grid.
type Dims struct {
	Rows, Cols int
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (d Dims) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < d.Rows && c.Col >= 0 && c.Col < d.Cols
}

// Cells returns Rows*Cols.
func (d Dims) Cells() int {
	return d.Rows * d.Cols
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (d Dims) Index(c Coord) int {
	return c.Row*d.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (d Dims) Coordinate(idx int) Coord {
	return Coord{Row: idx / d.Cols, Col: idx % d.Cols}
}

// String formats d as "RxC".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}
