package core

// Offset is a trial translation applied during rotation, in board
// coordinates (positive Y points down).
type Offset struct {
	X, Y int
}

type transition struct {
	from, to int
}

// Rotation states: 0 spawn, 1 right (R), 2 reversed, 3 left (L).
var jlstzKicks = map[transition][]Offset{
	{0, 1}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[transition][]Offset{
	{0, 1}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// halfTurnKicks are tried in order for 180 degree rotations.
var halfTurnKicks = []Offset{{1, 0}, {-1, 0}, {0, 1}, {1, 1}, {-1, 1}}

// KickOffsets returns the ordered trial offsets for rotating kind k from one
// state to another. The in-place attempt is not included.
func KickOffsets(k Kind, from, to int) []Offset {
	from, to = from&3, to&3
	if (to-from+4)%4 == 2 {
		return halfTurnKicks
	}
	switch k {
	case KindO:
		return nil
	case KindI:
		return iKicks[transition{from, to}]
	default:
		return jlstzKicks[transition{from, to}]
	}
}
