package tetris

const (
	// BoardWidth is the number of columns on the playfield.
	BoardWidth = 10
	// BoardHeight is the number of rows on the playfield. y=0 is the top,
	// y=BoardHeight-1 is the bottom; gravity increases y.
	BoardHeight = 20
)

// Board is a 10x20 occupancy grid stored row-major. A cell holds 0 when empty
// or the locked piece's Kind.Cell() code (1..7) when filled.
type Board struct {
	cells [BoardWidth * BoardHeight]int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromCells reconstructs a Board from a flat row-major cell slice as
// found on an Observation's wire payload, for placement simulation.
func NewBoardFromCells(cells []int) *Board {
	b := &Board{}
	n := len(cells)
	if n > len(b.cells) {
		n = len(b.cells)
	}
	copy(b.cells[:n], cells[:n])
	return b
}

func index(x, y int) int {
	return y*BoardWidth + x
}

// InBounds reports whether (x, y) lies within the playfield.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// Get returns the cell code at (x, y), or the solid code (1) if out of
// bounds — out-of-bounds is treated as occupied for collision purposes.
func (b *Board) Get(x, y int) int {
	if !InBounds(x, y) {
		return 1
	}
	return b.cells[index(x, y)]
}

// Set writes a cell value at (x, y). No-op if out of bounds.
func (b *Board) Set(x, y, value int) {
	if InBounds(x, y) {
		b.cells[index(x, y)] = value
	}
}

// Cells returns a copy of the flat row-major cell array, for serialization.
func (b *Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells[:])
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{}
	clone.cells = b.cells
	return clone
}

// Collides reports whether any of piece's four occupied cells is out of
// bounds or overlaps an already-occupied cell.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if !InBounds(c[0], c[1]) || b.Get(c[0], c[1]) != 0 {
			return true
		}
	}
	return false
}

// Lock writes piece's four cells into the board as its kind code. The caller
// must ensure !Collides(piece) beforehand; Lock does not re-check.
func (b *Board) Lock(p Piece) {
	value := p.Kind.Cell()
	for _, c := range p.Cells() {
		b.Set(c[0], c[1], value)
	}
}

// ClearLines removes every fully occupied row, shifts the rows above it down
// by one, and returns the number of rows cleared (0..4). Clearing proceeds
// bottom-up, re-examining a row index after a shift, which is equivalent to
// removing the full-row set and gravity-dropping the remainder.
func (b *Board) ClearLines() int {
	cleared := 0
	y := BoardHeight - 1
	for y >= 0 {
		if b.rowFull(y) {
			b.removeRow(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.Get(x, y) == 0 {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(row int) {
	for y := row; y > 0; y-- {
		for x := 0; x < BoardWidth; x++ {
			b.cells[index(x, y)] = b.cells[index(x, y-1)]
		}
	}
	for x := 0; x < BoardWidth; x++ {
		b.cells[index(x, 0)] = 0
	}
}

// ColumnHeight returns column x's height: the distance from its topmost
// filled row to the floor, or 0 if the column is empty.
func (b *Board) ColumnHeight(x int) int {
	for y := 0; y < BoardHeight; y++ {
		if b.Get(x, y) != 0 {
			return BoardHeight - y
		}
	}
	return 0
}

// ColumnHeights returns the height of every column, left to right.
func (b *Board) ColumnHeights() [BoardWidth]int {
	var heights [BoardWidth]int
	for x := 0; x < BoardWidth; x++ {
		heights[x] = b.ColumnHeight(x)
	}
	return heights
}

// HolesInColumn counts empty cells in column x strictly below that column's
// topmost filled cell.
func (b *Board) HolesInColumn(x int) int {
	holes := 0
	foundBlock := false
	for y := 0; y < BoardHeight; y++ {
		if b.Get(x, y) != 0 {
			foundBlock = true
		} else if foundBlock {
			holes++
		}
	}
	return holes
}

// HolesPerColumn returns the hole count of every column, left to right.
func (b *Board) HolesPerColumn() [BoardWidth]int {
	var holes [BoardWidth]int
	for x := 0; x < BoardWidth; x++ {
		holes[x] = b.HolesInColumn(x)
	}
	return holes
}
