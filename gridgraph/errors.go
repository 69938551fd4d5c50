package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrDimsMismatch indicates two grids of different shape were compared.
	ErrDimsMismatch = errors.New("gridgraph: grid dimensions differ")
)
