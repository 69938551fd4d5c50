// Package scenario reads and writes YAML descriptions of a fill: a rune
// grid, a start cell, a replacement color and optional rendering hints.
//
//	name: reference
//	grid:
//	  - YYYGG
//	  - WWBGG
//	start: {row: 1, col: 2}
//	replacement: C
//	connectivity: 8      # 4 or 8, default 8
//	palette:             # optional, rune -> SVG color name
//	  C: teal
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seedfill/gridgraph"
)

var (
	// ErrDecode wraps YAML syntax and field errors.
	ErrDecode = errors.New("scenario: decode failed")
	// ErrReplacement indicates a replacement that is not exactly one rune.
	ErrReplacement = errors.New("scenario: replacement must be a single rune")
	// ErrConnectivity indicates a connectivity other than 4 or 8.
	ErrConnectivity = errors.New("scenario: connectivity must be 4 or 8")
)

// Start is the seed cell.
type Start struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Scenario is one fill request.
type Scenario struct {
	Name         string            `yaml:"name"`
	Grid         []string          `yaml:"grid"`
	Start        Start             `yaml:"start"`
	Replacement  string            `yaml:"replacement"`
	Connectivity int               `yaml:"connectivity,omitempty"`
	Palette      map[string]string `yaml:"palette,omitempty"`
}

// Reference returns the 10×10 demo picture, filled from row 9, column 3
// with 'C'. The start cell holds 'X'.
func Reference() *Scenario {
	return &Scenario{
		Name: "reference",
		Grid: []string{
			"YYYGGGGGGG",
			"YYYYYYGXXX",
			"GGGGGGGXXX",
			"WWWWWGGGGX",
			"WRRRRRGXXX",
			"WWWRRGGXXX",
			"WBWRRRRRRX",
			"WBBBBRRXXX",
			"WBBXBBBBXX",
			"WBBXXXXXXX",
		},
		Start:        Start{Row: 9, Col: 3},
		Replacement:  "C",
		Connectivity: 8,
	}
}

// Load decodes and checks one scenario from r. Unknown fields are rejected.
// Grid shape is left to the consumer (floodfill reports ErrInvalidGrid).
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s as YAML.
func (s *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// check validates fields that do not depend on the grid.
func (s *Scenario) check() error {
	if utf8.RuneCountInString(s.Replacement) != 1 {
		return fmt.Errorf("%w: got %q", ErrReplacement, s.Replacement)
	}
	switch s.Connectivity {
	case 0:
		s.Connectivity = 8
	case 4, 8:
	default:
		return fmt.Errorf("%w: got %d", ErrConnectivity, s.Connectivity)
	}
	return nil
}

// Cells returns a fresh, caller-owned rune grid built from Grid.
func (s *Scenario) Cells() [][]rune {
	cells := make([][]rune, len(s.Grid))
	for i, row := range s.Grid {
		cells[i] = []rune(row)
	}
	return cells
}

// WithCells returns a copy of s whose Grid is cells.
func (s *Scenario) WithCells(cells [][]rune) *Scenario {
	out := *s
	out.Grid = make([]string, len(cells))
	for i, row := range cells {
		out.Grid[i] = string(row)
	}
	return &out
}

// StartCoord returns Start as a gridgraph.Coord.
func (s *Scenario) StartCoord() gridgraph.Coord {
	return gridgraph.Coord{Row: s.Start.Row, Col: s.Start.Col}
}

// ReplacementRune returns the replacement color.
func (s *Scenario) ReplacementRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Replacement)
	return r
}

// Conn maps Connectivity onto gridgraph values; 4 is Conn4, anything else Conn8.
func (s *Scenario) Conn() gridgraph.Connectivity {
	if s.Connectivity == 4 {
		return gridgraph.Conn4
	}
	return gridgraph.Conn8
}
