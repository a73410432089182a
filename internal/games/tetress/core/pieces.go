// Package core implements the Tetress board and piece engine: the playfield,
// piece catalog, rotation system, line clears, scoring and mode rules.
//
// The engine is pure game logic. It performs no I/O, does not render, and is
// driven entirely by Update calls and discrete player actions from a single
// owner goroutine.
package core

// Kind identifies a tetromino. The zero value is an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindT
	KindO
	KindL
	KindJ
	KindI
	KindS
	KindZ
)

// KindCount is the number of playable piece kinds.
const KindCount = 7

// AllKinds lists the playable kinds in catalog order.
var AllKinds = [KindCount]Kind{KindT, KindO, KindL, KindJ, KindI, KindS, KindZ}

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "."
	}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindT && k <= KindZ
}

// Matrix is one rotation state of a piece. Rows are indexed top to bottom.
type Matrix [][]Kind

// Size returns the side length of the (square) matrix.
func (m Matrix) Size() int {
	return len(m)
}

// Shape holds the four rotation states of a piece kind.
type Shape [4]Matrix

// pieces is the immutable catalog, indexed by Kind-1.
var pieces = catalog()

func catalog() [KindCount]Shape {
	const (
		t = KindT
		o = KindO
		l = KindL
		j = KindJ
		i = KindI
		s = KindS
		z = KindZ
	)
	return [KindCount]Shape{
		// T
		{
			{{0, 0, 0}, {t, t, t}, {0, t, 0}},
			{{0, t, 0}, {t, t, 0}, {0, t, 0}},
			{{0, t, 0}, {t, t, t}, {0, 0, 0}},
			{{0, t, 0}, {0, t, t}, {0, t, 0}},
		},
		// O
		{
			{{o, o}, {o, o}},
			{{o, o}, {o, o}},
			{{o, o}, {o, o}},
			{{o, o}, {o, o}},
		},
		// L
		{
			{{0, l, 0}, {0, l, 0}, {0, l, l}},
			{{0, 0, 0}, {l, l, l}, {l, 0, 0}},
			{{l, l, 0}, {0, l, 0}, {0, l, 0}},
			{{0, 0, l}, {l, l, l}, {0, 0, 0}},
		},
		// J
		{
			{{0, j, 0}, {0, j, 0}, {j, j, 0}},
			{{j, 0, 0}, {j, j, j}, {0, 0, 0}},
			{{0, j, j}, {0, j, 0}, {0, j, 0}},
			{{0, 0, 0}, {j, j, j}, {0, 0, j}},
		},
		// I
		{
			{{0, i, 0, 0}, {0, i, 0, 0}, {0, i, 0, 0}, {0, i, 0, 0}},
			{{0, 0, 0, 0}, {i, i, i, i}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{0, i, 0, 0}, {0, i, 0, 0}, {0, i, 0, 0}, {0, i, 0, 0}},
			{{0, 0, 0, 0}, {i, i, i, i}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		},
		// S
		{
			{{0, s, s}, {s, s, 0}, {0, 0, 0}},
			{{s, 0, 0}, {s, s, 0}, {0, s, 0}},
			{{0, s, s}, {s, s, 0}, {0, 0, 0}},
			{{s, 0, 0}, {s, s, 0}, {0, s, 0}},
		},
		// Z
		{
			{{z, z, 0}, {0, z, z}, {0, 0, 0}},
			{{0, z, 0}, {z, z, 0}, {z, 0, 0}},
			{{z, z, 0}, {0, z, z}, {0, 0, 0}},
			{{0, z, 0}, {z, z, 0}, {z, 0, 0}},
		},
	}
}

// ShapeOf returns the matrix of kind k in the given rotation (0-3).
// The returned matrix is shared catalog data and must not be modified.
func ShapeOf(k Kind, rotation int) Matrix {
	if !k.Valid() {
		return nil
	}
	return pieces[k-1][rotation&3]
}
