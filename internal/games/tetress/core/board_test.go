package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, gaps ...int) {
	for x := 0; x < BoardWidth; x++ {
		b[y][x] = KindZ
	}
	for _, x := range gaps {
		b[y][x] = KindNone
	}
}

func TestCatalogShapes(t *testing.T) {
	for _, k := range AllKinds {
		for rot := 0; rot < 4; rot++ {
			m := ShapeOf(k, rot)
			filled := 0
			for _, row := range m {
				require.Len(t, row, m.Size(), "%s rotation %d is not square", k, rot)
				for _, v := range row {
					if v != KindNone {
						assert.Equal(t, k, v)
						filled++
					}
				}
			}
			assert.Equal(t, 4, filled, "%s rotation %d", k, rot)
		}
	}
	assert.Nil(t, ShapeOf(KindNone, 0))
}

func TestSpawnPiece(t *testing.T) {
	tests := []struct {
		kind Kind
		x    int
	}{
		{KindT, 4},
		{KindO, 5},
		{KindI, 4},
		{KindZ, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := SpawnPiece(tt.kind)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, 0, p.Rotation)
		})
	}
}

func TestCollides(t *testing.T) {
	var b Board
	b[21][5] = KindT

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"open space", Piece{Kind: KindO, X: 0, Y: 0}, false},
		{"left wall", Piece{Kind: KindO, X: -1, Y: 0}, true},
		{"right wall", Piece{Kind: KindO, X: BoardWidth - 1, Y: 0}, true},
		{"floor", Piece{Kind: KindO, X: 0, Y: BoardHeight - 1}, true},
		{"resting on floor", Piece{Kind: KindO, X: 0, Y: BoardHeight - 2}, false},
		{"occupied cell", Piece{Kind: KindO, X: 4, Y: 20}, true},
		{"above the top", Piece{Kind: KindO, X: 3, Y: -2}, false},
		{"empty matrix column off board", Piece{Kind: KindI, X: -1, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Collides(tt.piece))
		})
	}
}

func TestCollisionSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		var b Board
		for y := range b {
			for x := range b[y] {
				if rng.Intn(3) == 0 {
					b[y][x] = KindZ
				}
			}
		}
		p := Piece{
			Kind:     AllKinds[rng.Intn(KindCount)],
			Rotation: rng.Intn(4),
			X:        rng.Intn(16) - 3,
			Y:        rng.Intn(26) - 3,
		}
		if b.Collides(p) {
			continue
		}
		for _, c := range p.Cells() {
			x, y := c[0], c[1]
			require.GreaterOrEqual(t, x, 0)
			require.Less(t, x, BoardWidth)
			require.Less(t, y, BoardHeight)
			if y >= 0 {
				require.Equal(t, KindNone, b[y][x], "accepted piece overlaps (%d,%d)", x, y)
			}
		}
	}
}

func TestMergeDiscardsCellsAboveBoard(t *testing.T) {
	var b Board
	b.Merge(Piece{Kind: KindI, X: 0, Y: -2})

	assert.Equal(t, KindI, b.Cell(1, 0))
	assert.Equal(t, KindI, b.Cell(1, 1))
	assert.Equal(t, KindNone, b.Cell(1, 2))
}

func TestRemoveRows(t *testing.T) {
	var b Board
	fillRow(&b, 21)
	b[20][3] = KindL
	fillRow(&b, 19)
	b[18][7] = KindJ

	rows := b.FullRows()
	require.Equal(t, []int{21, 19}, rows)

	b.RemoveRows(rows)

	assert.Equal(t, KindL, b[21][3])
	assert.Equal(t, KindJ, b[20][7])
	assert.Empty(t, b.FullRows())
	for y := 0; y < 20; y++ {
		for x := 0; x < BoardWidth; x++ {
			assert.Equal(t, KindNone, b[y][x])
		}
	}
}

func TestEmptyExcept(t *testing.T) {
	var b Board
	fillRow(&b, 21)
	fillRow(&b, 20)
	assert.True(t, b.EmptyExcept([]int{20, 21}))
	assert.False(t, b.EmptyExcept([]int{21}))

	b[0][0] = KindO
	assert.False(t, b.EmptyExcept([]int{20, 21}))
}

func TestRowsIsACopy(t *testing.T) {
	var b Board
	rows := b.Rows()
	rows[5][5] = KindT
	assert.Equal(t, KindNone, b.Cell(5, 5))
}

func TestSevenBag(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(99)), true)
	for bag := 0; bag < 20; bag++ {
		seen := map[Kind]int{}
		for n := 0; n < KindCount; n++ {
			seen[r.Next()]++
		}
		require.Len(t, seen, KindCount, "bag %d", bag)
		for k, count := range seen {
			require.Equal(t, 1, count, "bag %d kind %s", bag, k)
		}
	}
}

func TestUniformRandomizer(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(1)), false)
	seen := map[Kind]bool{}
	for n := 0; n < 500; n++ {
		k := r.Next()
		require.True(t, k.Valid())
		seen[k] = true
	}
	assert.Len(t, seen, KindCount)
}

func TestKickOffsets(t *testing.T) {
	assert.Equal(t, []Offset{{-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, KickOffsets(KindI, 0, 1))
	assert.Equal(t, []Offset{{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, KickOffsets(KindT, 0, 1))
	assert.Equal(t, []Offset{{1, 0}, {1, 1}, {0, -2}, {1, -2}}, KickOffsets(KindS, 0, 3))
	assert.Equal(t, halfTurnKicks, KickOffsets(KindJ, 1, 3))
	assert.Len(t, KickOffsets(KindL, 2, 0), 5)
	assert.Nil(t, KickOffsets(KindO, 0, 1))
}
