package core

// Piece is a tetromino placed on the board. X and Y locate the top-left
// corner of its rotation matrix and may be negative.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// SpawnPiece returns k in rotation 0, horizontally centered at the top row.
func SpawnPiece(k Kind) Piece {
	size := ShapeOf(k, 0).Size()
	return Piece{Kind: k, X: (BoardWidth - size) / 2}
}

// Matrix returns the rotation matrix currently in use.
func (p Piece) Matrix() Matrix {
	return ShapeOf(p.Kind, p.Rotation)
}

// Moved returns a copy of p translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p in the given rotation state.
func (p Piece) Rotated(rotation int) Piece {
	p.Rotation = ((rotation % 4) + 4) % 4
	return p
}

// Bottom returns the lowest board row the piece occupies.
func (p Piece) Bottom() int {
	bottom := p.Y
	for _, c := range p.Cells() {
		bottom = max(bottom, c[1])
	}
	return bottom
}

// Cells returns the absolute board coordinates of the occupied cells.
func (p Piece) Cells() [][2]int {
	cells := make([][2]int, 0, 4)
	for dy, row := range p.Matrix() {
		for dx, v := range row {
			if v != KindNone {
				cells = append(cells, [2]int{p.X + dx, p.Y + dy})
			}
		}
	}
	return cells
}
