package floodfill_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/seedfill/floodfill"
	"github.com/katalvlaran/seedfill/gridgraph"
)

// referenceRows is the 10×10 demo picture.
var referenceRows = []string{
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
}

func runes(rows ...string) [][]rune {
	g := make([][]rune, len(rows))
	for i, r := range rows {
		g[i] = []rune(r)
	}
	return g
}

// at is shorthand for a Coord literal.
func at(row, col int) gridgraph.Coord {
	return gridgraph.Coord{Row: row, Col: col}
}

// FillSuite exercises Fill under various scenarios.
type FillSuite struct {
	suite.Suite
}

// TestReferenceScenario fills the X region reached from (9,3) with 'C'.
func (s *FillSuite) TestReferenceScenario() {
	grid := runes(referenceRows...)
	before := gridgraph.Clone(grid)
	want, err := gridgraph.ComponentOf(before, at(9, 3), gridgraph.Conn8)
	require.NoError(s.T(), err)

	res, err := floodfill.Fill(grid, at(9, 3), 'C')
	require.NoError(s.T(), err)
	require.Equal(s.T(), 'X', res.Target)
	require.Equal(s.T(), 27, res.Filled)
	require.False(s.T(), res.Skipped)

	changed, err := gridgraph.Diff(before, grid)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), want, changed)

	// W column and R block are untouched.
	for r := 3; r < 10; r++ {
		require.Equal(s.T(), 'W', grid[r][0], "row %d col 0", r)
	}
	require.Equal(s.T(), []rune("WRRRRRGCCC"), grid[4])
	require.Equal(s.T(), []rune("WBBCCCCCCC"), grid[9])
}

// TestBlueRegion fills the whole B region from its bottom-left corner.
func (s *FillSuite) TestBlueRegion() {
	grid := runes(referenceRows...)
	res, err := floodfill.Fill(grid, at(9, 1), 'C')
	require.NoError(s.T(), err)
	require.Equal(s.T(), 'B', res.Target)
	require.Equal(s.T(), 13, res.Filled)
	for _, row := range grid {
		require.NotContains(s.T(), string(row), "B")
	}
}

// TestEqualColorIsNoop verifies the early exit leaves the grid unchanged.
func (s *FillSuite) TestEqualColorIsNoop() {
	grid := runes(referenceRows...)
	before := gridgraph.Clone(grid)
	calls := 0

	res, err := floodfill.Fill(grid, at(0, 0), 'Y',
		floodfill.WithOnEnqueue(func(gridgraph.Coord, int) { calls++ }))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Skipped)
	require.Zero(s.T(), res.Filled)
	require.Zero(s.T(), calls)
	require.Equal(s.T(), before, grid)
}

// TestIdempotent checks a second identical Fill is a no-op.
func (s *FillSuite) TestIdempotent() {
	grid := runes(referenceRows...)
	_, err := floodfill.Fill(grid, at(4, 2), 'Z')
	require.NoError(s.T(), err)
	once := gridgraph.Clone(grid)

	res, err := floodfill.Fill(grid, at(4, 2), 'Z')
	require.NoError(s.T(), err)
	require.True(s.T(), res.Skipped)
	require.Equal(s.T(), once, grid)
}

// TestSingleCell fills a 1×1 grid.
func (s *FillSuite) TestSingleCell() {
	grid := runes("a")
	res, err := floodfill.Fill(grid, at(0, 0), 'b')
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Filled)
	require.Equal(s.T(), runes("b"), grid)
}

// TestDisconnectedRegionUntouched keeps same-colored cells behind a wall.
func (s *FillSuite) TestDisconnectedRegionUntouched() {
	grid := runes(
		"aa#aa",
		"aa#aa",
		"###aa",
	)
	res, err := floodfill.Fill(grid, at(0, 0), 'o')
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, res.Filled)
	require.Equal(s.T(), runes(
		"oo#aa",
		"oo#aa",
		"###aa",
	), grid)
}

// TestReplacementAlreadyPresent covers regions that already hold the
// replacement color: they keep their cells and are not merged into the fill.
func (s *FillSuite) TestReplacementAlreadyPresent() {
	grid := runes(
		"ab.c",
		"ab.c",
		"bbcc",
	)
	before := gridgraph.Clone(grid)
	res, err := floodfill.Fill(grid, at(0, 0), 'c')
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Filled)

	changed, err := gridgraph.Diff(before, grid)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []gridgraph.Coord{at(0, 0), at(1, 0)}, changed)
}

// TestConn4StopsAtDiagonals compares both neighborhoods on a checkerboard.
func (s *FillSuite) TestConn4StopsAtDiagonals() {
	rows := []string{
		"x.x",
		".x.",
		"x.x",
	}

	g8 := runes(rows...)
	res, err := floodfill.Fill(g8, at(1, 1), 'o')
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, res.Filled)

	g4 := runes(rows...)
	res, err = floodfill.Fill(g4, at(1, 1), 'o', floodfill.WithConnectivity(gridgraph.Conn4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Filled)
	require.Equal(s.T(), runes("x.x", ".o.", "x.x"), g4)
}

// TestHooks checks each cell is claimed once and depths grow along a row.
func (s *FillSuite) TestHooks() {
	grid := runes("aaaa")
	var order []gridgraph.Coord
	var depths []int
	claimed := map[gridgraph.Coord]int{}

	res, err := floodfill.Fill(grid, at(0, 0), 'b',
		floodfill.WithOnEnqueue(func(c gridgraph.Coord, _ int) { claimed[c]++ }),
		floodfill.WithOnFill(func(c gridgraph.Coord, d int) {
			order = append(order, c)
			depths = append(depths, d)
		}),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, res.Filled)
	require.Equal(s.T(), []gridgraph.Coord{at(0, 0), at(0, 1), at(0, 2), at(0, 3)}, order)
	require.Equal(s.T(), []int{0, 1, 2, 3}, depths)
	for c, n := range claimed {
		require.Equal(s.T(), 1, n, "cell %v claimed %d times", c, n)
	}
}

// TestNoDuplicateQueueEntries fills a uniform grid where every interior
// cell is discovered by up to eight neighbors.
func (s *FillSuite) TestNoDuplicateQueueEntries() {
	grid := runes("aaaaa", "aaaaa", "aaaaa", "aaaaa", "aaaaa")
	seen := map[gridgraph.Coord]bool{}
	dup := false

	res, err := floodfill.Fill(grid, at(2, 2), 'b',
		floodfill.WithOnFill(func(c gridgraph.Coord, _ int) {
			if seen[c] {
				dup = true
			}
			seen[c] = true
		}))
	require.NoError(s.T(), err)
	require.False(s.T(), dup)
	require.Equal(s.T(), 25, res.Filled)
	require.Len(s.T(), seen, 25)
}

// TestErrors verifies rejected inputs leave the grid untouched.
func (s *FillSuite) TestErrors() {
	cases := []struct {
		name  string
		grid  [][]rune
		start gridgraph.Coord
		opts  []floodfill.Option
		err   error
	}{
		{"Nil", nil, at(0, 0), nil, floodfill.ErrInvalidGrid},
		{"EmptyRow", [][]rune{{}}, at(0, 0), nil, floodfill.ErrInvalidGrid},
		{"Jagged", runes("aa", "a"), at(0, 0), nil, floodfill.ErrInvalidGrid},
		{"RowBelow", runes("aa", "aa"), at(2, 0), nil, floodfill.ErrOutOfBounds},
		{"NegativeCol", runes("aa", "aa"), at(0, -1), nil, floodfill.ErrOutOfBounds},
		{"BadConn", runes("aa"), at(0, 0), []floodfill.Option{floodfill.WithConnectivity(7)}, floodfill.ErrOptionViolation},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			before := gridgraph.Clone(tc.grid)
			_, err := floodfill.Fill(tc.grid, tc.start, 'z', tc.opts...)
			require.ErrorIs(s.T(), err, tc.err)
			require.Equal(s.T(), before, tc.grid)
		})
	}

	_, err := floodfill.Fill(runes("aa", "a"), at(0, 0), 'z')
	require.ErrorIs(s.T(), err, gridgraph.ErrNonRectangular)
}

// TestCount matches Fill without mutating.
func (s *FillSuite) TestCount() {
	grid := runes(referenceRows...)
	before := gridgraph.Clone(grid)

	n, err := floodfill.Count(grid, at(9, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 27, n)
	require.Equal(s.T(), before, grid)

	n, err = floodfill.Count(grid, at(0, 0), floodfill.WithConnectivity(gridgraph.Conn4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, n)

	_, err = floodfill.Count(grid, at(10, 0))
	require.ErrorIs(s.T(), err, floodfill.ErrOutOfBounds)
}

func TestFillSuite(t *testing.T) {
	suite.Run(t, new(FillSuite))
}

// TestFill_Containment checks, over random grids, that the changed cells are
// exactly the start cell's component and that nothing else moved.
func TestFill_Containment(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	alphabet := []rune("abc")
	for iter := 0; iter < 200; iter++ {
		h, w := 1+rnd.Intn(8), 1+rnd.Intn(8)
		grid := make([][]rune, h)
		for y := range grid {
			grid[y] = make([]rune, w)
			for x := range grid[y] {
				grid[y][x] = alphabet[rnd.Intn(len(alphabet))]
			}
		}
		start := at(rnd.Intn(h), rnd.Intn(w))
		repl := []rune("abcd")[rnd.Intn(4)]
		conn := gridgraph.Connectivity(rnd.Intn(2))

		before := gridgraph.Clone(grid)
		comp, err := gridgraph.ComponentOf(before, start, conn)
		require.NoError(t, err)

		res, err := floodfill.Fill(grid, start, repl, floodfill.WithConnectivity(conn))
		require.NoError(t, err)

		changed, err := gridgraph.Diff(before, grid)
		require.NoError(t, err)
		if repl == before[start.Row][start.Col] {
			require.True(t, res.Skipped)
			require.Empty(t, changed)
			continue
		}
		require.Equal(t, len(comp), res.Filled)
		require.ElementsMatch(t, comp, changed)
		for _, c := range changed {
			require.Equal(t, repl, grid[c.Row][c.Col])
		}
	}
}
