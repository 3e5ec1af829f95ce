/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/internal/position"
	. "chesscore/internal/types"
)

func TestGenerateInitialPositionMoveCount(t *testing.T) {
	p := position.StartPosition()
	moves := Generate(p, First)
	assert.EqualValues(t, 20, moves.Len())
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := position.StartPosition()
	first := Generate(p, First)
	second := Generate(p, First)
	assert.Equal(t, []Move(first), []Move(second))
}

func TestGeneratePawnDoublePushOnlyFromHomeRank(t *testing.T) {
	p := position.StartPosition()
	moves := Generate(p, First)
	count := 0
	for _, m := range moves {
		from, to, piece, _, _, _ := DecodeMove(m)
		if piece == Pawn && from.RankOf() == Rank2 && to.RankOf() == Rank4 {
			count++
		}
	}
	assert.EqualValues(t, 8, count)
}

func TestGenerateKnightMovesFromStart(t *testing.T) {
	p := position.StartPosition()
	moves := Generate(p, First)
	count := 0
	for _, m := range moves {
		_, _, piece, _, _, _ := DecodeMove(m)
		if piece == Knight {
			count++
		}
	}
	assert.EqualValues(t, 4, count)
}

func TestGenerateNoSliderMovesFromStart(t *testing.T) {
	p := position.StartPosition()
	moves := Generate(p, First)
	for _, m := range moves {
		_, _, piece, _, _, _ := DecodeMove(m)
		assert.NotEqual(t, Bishop, piece)
		assert.NotEqual(t, Rook, piece)
		assert.NotEqual(t, Queen, piece)
	}
}

func TestGenerateSecondSideFromStart(t *testing.T) {
	p := position.StartPosition()
	moves := Generate(p, Second)
	assert.EqualValues(t, 20, moves.Len())
}
