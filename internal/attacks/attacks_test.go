package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "chesscore/internal/types"
)

// magic-indexed slider lookup must agree bit-exact with the reference
// ray-walk generator for every square and a representative sample of
// occupancies.
func TestSliderAttacksAgreeWithReference(t *testing.T) {
	occupancies := []Bitboard{
		BbZero,
		BbAll,
		NewSquare(FileD, Rank4).Bb() | NewSquare(FileD, Rank5).Bb() | NewSquare(FileE, Rank4).Bb(),
		SqA1.Bb() | SqH8.Bb() | SqA8.Bb() | SqH1.Bb(),
	}
	for sq := Square(0); sq < 64; sq++ {
		for _, occ := range occupancies {
			for _, pt := range []PieceKind{Bishop, Rook, Queen} {
				got := GetAttacksBb(pt, sq, occ)
				want := ReferenceSliderAttacks(pt, sq, occ)
				assert.Equalf(t, want, got, "square=%s piece=%s occ=%#v", sq, pt, occ)
			}
		}
	}
}

func TestPawnAttacksEmptyOnLastRank(t *testing.T) {
	assert.Equal(t, BbZero, GetPawnAttacks(First, SqH8))
	assert.NotEqual(t, BbZero, GetPawnAttacks(First, NewSquare(FileE, Rank4)))
}

func TestKnightAttacksCorner(t *testing.T) {
	// a1 knight attacks exactly b3 and c2
	got := GetLeaperAttacks(Knight, SqA1)
	assert.Equal(t, 2, got.PopCount())
	assert.True(t, got.Has(NewSquare(FileB, Rank3)))
	assert.True(t, got.Has(NewSquare(FileC, Rank2)))
}
