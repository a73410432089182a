package core

// TSpin classifies a rotation of the T piece into a snug pocket.
type TSpin uint8

const (
	TSpinNone TSpin = iota
	TSpinMini
	TSpinFull
)

// String returns the banner name of the classification.
func (t TSpin) String() string {
	switch t {
	case TSpinMini:
		return "MINI T-SPIN"
	case TSpinFull:
		return "T-SPIN"
	default:
		return ""
	}
}

// cornerFilled treats walls and the floor as filled. The open area above
// the board is not.
func (b *Board) cornerFilled(x, y int) bool {
	if x < 0 || x >= BoardWidth || y >= BoardHeight {
		return true
	}
	return y >= 0 && b[y][x] != KindNone
}

// DetectTSpin classifies p against the board using the three-corner rule.
// At least three of the four corners of the 3x3 box must be filled; the
// spin is full when both front corners are filled and mini otherwise.
// Front corners are the top pair in rotations 0 and 2 and the bottom pair
// in rotations 1 and 3.
func DetectTSpin(b *Board, p Piece) TSpin {
	if p.Kind != KindT {
		return TSpinNone
	}

	topLeft := b.cornerFilled(p.X, p.Y)
	topRight := b.cornerFilled(p.X+2, p.Y)
	bottomLeft := b.cornerFilled(p.X, p.Y+2)
	bottomRight := b.cornerFilled(p.X+2, p.Y+2)

	filled := 0
	for _, c := range []bool{topLeft, topRight, bottomLeft, bottomRight} {
		if c {
			filled++
		}
	}
	if filled < 3 {
		return TSpinNone
	}

	front := topLeft && topRight
	if p.Rotation%2 == 1 {
		front = bottomLeft && bottomRight
	}
	if front {
		return TSpinFull
	}
	return TSpinMini
}
