package gridgraph

import "fmt"

// ComponentOf returns the connected component containing start: every cell
// reachable from start through neighbors (per conn) holding the same value
// as start. Cells are returned in BFS visit order, start first.
//
// Visitation is tracked in an explicit seen bitset, so the grid is only read.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and the queue.
func ComponentOf[C comparable](cells [][]C, start Coord, conn Connectivity) ([]Coord, error) {
	dims, err := Validate(cells)
	if err != nil {
		return nil, err
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrConnectivity, conn)
	}
	if !dims.InBounds(start) {
		return nil, fmt.Errorf("%w: %s outside %s grid", ErrOutOfBounds, start, dims)
	}

	seen := make([]bool, dims.Cells())

	return collect(cells, dims, start, Offsets(conn), seen), nil
}

// ConnectedComponents partitions the grid into maximal same-value regions
// according to conn. Components are ordered by the row-major position of
// their first cell; cells inside a component are in BFS visit order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents[C comparable](cells [][]C, conn Connectivity) ([][]Coord, error) {
	dims, err := Validate(cells)
	if err != nil {
		return nil, err
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrConnectivity, conn)
	}

	seen := make([]bool, dims.Cells())
	offsets := Offsets(conn)
	var comps [][]Coord
	for y := 0; y < dims.Rows; y++ {
		for x := 0; x < dims.Cols; x++ {
			c := Coord{Row: y, Col: x}
			if seen[dims.Index(c)] {
				continue
			}
			comps = append(comps, collect(cells, dims, c, offsets, seen))
		}
	}

	return comps, nil
}

// collect runs a BFS from start over cells equal to cells[start], marking seen.
func collect[C comparable](cells [][]C, dims Dims, start Coord, offsets [][2]int, seen []bool) []Coord {
	color := cells[start.Row][start.Col]
	seen[dims.Index(start)] = true
	queue := []Coord{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := u.Add(d[0], d[1])
			if !dims.InBounds(v) || cells[v.Row][v.Col] != color {
				continue
			}
			vi := dims.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
