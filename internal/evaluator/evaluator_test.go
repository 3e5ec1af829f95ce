//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/internal/evaluator"
	"chesscore/internal/position"
	. "chesscore/internal/types"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	p := position.StartPosition()
	assert.EqualValues(t, 0, evaluator.Evaluate(p))
}

func TestEvaluateMaterialAdvantageIsPositive(t *testing.T) {
	var pieces [SideLength][PtLength]Bitboard
	pieces[First][King] = SqE1.Bb()
	pieces[First][Queen] = NewSquare(FileD, Rank1).Bb()
	pieces[Second][King] = SqE8.Bb()

	p := position.FromExternalState(pieces, First, CastlingRights{}, BbZero, 0, 1)
	assert.Greater(t, evaluator.Evaluate(p), int32(0))
}

func TestEvaluateSignFlipsWithSideToMove(t *testing.T) {
	var pieces [SideLength][PtLength]Bitboard
	pieces[First][King] = SqE1.Bb()
	pieces[First][Queen] = NewSquare(FileD, Rank1).Bb()
	pieces[Second][King] = SqE8.Bb()

	white := position.FromExternalState(pieces, First, CastlingRights{}, BbZero, 0, 1)
	black := position.FromExternalState(pieces, Second, CastlingRights{}, BbZero, 1, 1)

	assert.EqualValues(t, evaluator.Evaluate(white), -evaluator.Evaluate(black))
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	var noPair, pair [SideLength][PtLength]Bitboard
	noPair[First][King] = SqE1.Bb()
	noPair[Second][King] = SqE8.Bb()
	noPair[First][Bishop] = NewSquare(FileC, Rank1).Bb()

	pair[First][King] = SqE1.Bb()
	pair[Second][King] = SqE8.Bb()
	pair[First][Bishop] = NewSquare(FileC, Rank1).Bb() | NewSquare(FileF, Rank1).Bb()

	pNoPair := position.FromExternalState(noPair, First, CastlingRights{}, BbZero, 0, 1)
	pPair := position.FromExternalState(pair, First, CastlingRights{}, BbZero, 0, 1)

	assert.Greater(t, evaluator.Evaluate(pPair), evaluator.Evaluate(pNoPair))
}

func TestTerminalScoreConstants(t *testing.T) {
	assert.Less(t, evaluator.CHECKMATE, int32(-9000))
	assert.EqualValues(t, 0, evaluator.STALEMATE)
}
