package core

// Playfield dimensions. The top HiddenRows rows are a spawn buffer and are
// not drawn by renderers.
const (
	BoardWidth  = 12
	BoardHeight = 22
	HiddenRows  = 2
)

// Board is the playfield grid, indexed [row][column] with row 0 at the top.
type Board [BoardHeight][BoardWidth]Kind

// Cell returns the content at (x, y). Out-of-range coordinates read as empty.
func (b *Board) Cell(x, y int) Kind {
	if !InBounds(x, y) {
		return KindNone
	}
	return b[y][x]
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// Collides reports whether p overlaps a wall, the floor or an occupied cell.
// Cells above the top edge only collide with the side walls.
func (b *Board) Collides(p Piece) bool {
	m := p.Matrix()
	for dy, row := range m {
		for dx, v := range row {
			if v == KindNone {
				continue
			}
			x, y := p.X+dx, p.Y+dy
			if x < 0 || x >= BoardWidth || y >= BoardHeight {
				return true
			}
			if y >= 0 && b[y][x] != KindNone {
				return true
			}
		}
	}
	return false
}

// Merge writes the occupied cells of p onto the board. Cells outside the
// board are discarded.
func (b *Board) Merge(p Piece) {
	m := p.Matrix()
	for dy, row := range m {
		for dx, v := range row {
			if v == KindNone {
				continue
			}
			x, y := p.X+dx, p.Y+dy
			if InBounds(x, y) {
				b[y][x] = v
			}
		}
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, v := range b[y] {
		if v == KindNone {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom to top.
func (b *Board) FullRows() []int {
	var rows []int
	for y := BoardHeight - 1; y >= 0; y-- {
		if b.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRows deletes the given rows and shifts everything above them down,
// inserting empty rows at the top.
func (b *Board) RemoveRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	drop := make(map[int]bool, len(rows))
	for _, y := range rows {
		drop[y] = true
	}

	var next Board
	dst := BoardHeight - 1
	for y := BoardHeight - 1; y >= 0; y-- {
		if drop[y] {
			continue
		}
		next[dst] = b[y]
		dst--
	}
	*b = next
}

// EmptyExcept reports whether every row not listed in rows is empty.
func (b *Board) EmptyExcept(rows []int) bool {
	skip := make(map[int]bool, len(rows))
	for _, y := range rows {
		skip[y] = true
	}
	for y := range b {
		if skip[y] {
			continue
		}
		for _, v := range b[y] {
			if v != KindNone {
				return false
			}
		}
	}
	return true
}

// Empty reports whether the board holds no blocks at all.
func (b *Board) Empty() bool {
	return b.EmptyExcept(nil)
}

// Rows returns a deep copy of the grid as nested slices.
func (b *Board) Rows() [][]Kind {
	out := make([][]Kind, BoardHeight)
	for y := range b {
		row := make([]Kind, BoardWidth)
		copy(row, b[y][:])
		out[y] = row
	}
	return out
}
