/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSquareAndAccessors(t *testing.T) {
	sq := NewSquare(FileD, Rank4)
	assert.Equal(t, FileD, sq.FileOf())
	assert.Equal(t, Rank4, sq.RankOf())
	assert.True(t, sq.IsValid())
}

func TestSquareToWrapsAtFileEdge(t *testing.T) {
	h4 := NewSquare(FileH, Rank4)
	assert.Equal(t, SqNone, h4.To(East))

	a4 := NewSquare(FileA, Rank4)
	assert.Equal(t, SqNone, a4.To(West))
}

func TestSquareToWrapsAtBoardEdge(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqNone, SqH8.To(North))
}

func TestSquareToRoundTrip(t *testing.T) {
	sq := NewSquare(FileD, Rank4)
	north := sq.To(North)
	assert.Equal(t, NewSquare(FileD, Rank5), north)
	assert.Equal(t, sq, north.To(South))
}

func TestSquareStringAlgebraic(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "e1", SqE1.String())
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqA1, SqA1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE1, NewSquare(FileF, Rank2)))
}

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, 8, FileAMask.PopCount())
	assert.Equal(t, 8, Rank1Mask.PopCount())
	assert.True(t, FileAMask.Has(SqA1))
	assert.False(t, FileAMask.Has(SqH1))
	assert.True(t, Rank8Mask.Has(SqA8))
}

func TestInvalidSquareBbIsZero(t *testing.T) {
	assert.Equal(t, BbZero, SqNone.Bb())
}
