// Package spiralgrid lays a message out along the spiral path of an odd
// square grid and reads it back.
//
// The path starts at the middle of the left edge and runs diagonally up and
// to the right. Each diagonal bounces off a rectangular frame; when the next
// cell on the path is already taken the walk steps one column right, turns,
// and the frame shrinks by one ring. Writing and reading use the same walk, so
// cells left empty by a write are skipped by the matching read.
package spiralgrid

import (
	"fmt"
	"strings"

	"github.com/ppipada/spiralcode-go/filler"
	"github.com/ppipada/spiralcode-go/gridsize"
	"github.com/ppipada/spiralcode-go/spiralerrors"
)

// Grid is an n x n buffer of cells stored row-major.
// A Grid serves a single encode or decode and is not safe for concurrent use.
type Grid struct {
	n     int
	cells []Cell
}

// New returns an empty grid. The size is validated once here, so every Grid
// in existence has a usable size.
func New(n int) (*Grid, error) {
	if err := gridsize.Validate(n, 0); err != nil {
		return nil, err
	}
	return &Grid{n: n, cells: make([]Cell, n*n)}, nil
}

// Load returns a grid whose cells are the bytes of encoded in row-major
// order. The length must be the square of an odd size within the cell cap.
func Load(encoded string) (*Grid, error) {
	length := len(encoded)
	if length == 0 {
		return nil, &spiralerrors.FormatError{Length: length, Reason: "encoded message is empty"}
	}
	if length > gridsize.MaxCells {
		return nil, &spiralerrors.FormatError{
			Length: length,
			Reason: fmt.Sprintf("encoded message length must be below %d", gridsize.MaxCells+1),
		}
	}
	n := gridsize.FloorSqrt(length)
	if n*n != length || n%2 == 0 {
		return nil, &spiralerrors.FormatError{
			Length: length,
			Reason: "encoded message length must be an odd square number",
		}
	}
	if n < gridsize.MinSize {
		return nil, &spiralerrors.FormatError{
			Length: length,
			Reason: fmt.Sprintf("encoded message must hold at least a %dx%d grid", gridsize.MinSize, gridsize.MinSize),
		}
	}

	g := &Grid{n: n, cells: make([]Cell, length)}
	for i := range length {
		g.cells[i] = Cell{State: Filled, Char: encoded[i]}
	}
	return g, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.n
}

// Capacity returns the number of cells on the spiral path.
func (g *Grid) Capacity() int {
	return gridsize.Capacity(g.n)
}

// Write places message along the spiral path. Cells off the path stay Empty.
func (g *Grid) Write(message string) error {
	if len(message) > g.Capacity() {
		return &spiralerrors.SizeError{
			Size:   g.n,
			Length: len(message),
			Reason: fmt.Sprintf("capacity %d is too small", g.Capacity()),
		}
	}
	next := 0
	g.walk(
		len(message),
		func(i int) bool {
			g.cells[i] = Cell{State: Filled, Char: message[next]}
			next++
			return true
		},
		func(i int) bool { return g.cells[i].State != Empty },
	)
	return nil
}

// Read collects the bytes along the spiral path, up to Capacity, marking
// each visited cell Consumed. It stops early at a cell that is Consumed or
// was never written.
func (g *Grid) Read() string {
	var b strings.Builder
	b.Grow(g.Capacity())
	g.walk(
		g.Capacity(),
		func(i int) bool {
			c := g.cells[i]
			if c.State != Filled {
				return false
			}
			b.WriteByte(c.Char)
			g.cells[i] = Cell{State: Consumed, Char: c.Char}
			return true
		},
		func(i int) bool { return g.cells[i].State == Consumed },
	)
	return b.String()
}

// Serialize dumps the grid row-major, drawing a filler byte for every Empty
// cell.
func (g *Grid) Serialize(src filler.Source) string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, c := range g.cells {
		if c.State == Empty {
			b.WriteByte(src.Next())
			continue
		}
		b.WriteByte(c.Char)
	}
	return b.String()
}

// walk runs the spiral for at most steps cells. visit is called with the
// buffer index of each cell on the path and ends the walk by returning false.
// occupied tells whether a probed cell was already visited in this walk.
func (g *Grid) walk(steps int, visit func(i int) bool, occupied func(i int) bool) {
	bound := newBoundary(g.n)
	row, col := g.n/2, 0
	rowStep, colStep := -1, 1

	for range steps {
		if !visit(g.index(row, col)) {
			return
		}
		if !bound.withinRow(row) {
			rowStep = -rowStep
		}
		if !bound.withinCol(col) {
			colStep = -colStep
		}

		row += rowStep
		col += colStep
		if !g.inBounds(row, col) {
			// Paths within capacity never leave the grid.
			return
		}
		// Blocked inside the frame: the ring is done.
		if occupied(g.index(row, col)) && bound.within(row, col) {
			col++
			colStep = -colStep
			bound.shrink()
		}
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.n + col
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}
