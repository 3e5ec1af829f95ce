/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/internal/evaluator"
	"chesscore/internal/position"
	"chesscore/internal/search"
	. "chesscore/internal/types"
)

// stalematePosition builds the classic queen-versus-king stalemate: Black
// king h8, no legal move, not in check.
func stalematePosition() *position.Position {
	var pieces [SideLength][PtLength]Bitboard
	pieces[First][King] = NewSquare(FileF, Rank7).Bb()
	pieces[First][Queen] = NewSquare(FileG, Rank6).Bb()
	pieces[Second][King] = NewSquare(FileH, Rank8).Bb()
	return position.FromExternalState(pieces, Second, CastlingRights{}, BbZero, 0, 1)
}

func TestNegamaxStalemate(t *testing.T) {
	p := stalematePosition()
	assert.False(t, p.IsInCheck(Second))

	score, move := search.Negamax(p, 1)
	assert.EqualValues(t, evaluator.STALEMATE, score)
	assert.Equal(t, MoveNone, move)
}

func checkmatePosition() *position.Position {
	var pieces [SideLength][PtLength]Bitboard
	pieces[First][King] = NewSquare(FileF, Rank7).Bb()
	pieces[First][Queen] = NewSquare(FileG, Rank7).Bb()
	pieces[Second][King] = NewSquare(FileH, Rank8).Bb()
	return position.FromExternalState(pieces, Second, CastlingRights{}, BbZero, 0, 1)
}

func TestNegamaxCheckmate(t *testing.T) {
	p := checkmatePosition()
	assert.True(t, p.IsInCheck(Second))

	score, move := search.Negamax(p, 1)
	assert.EqualValues(t, evaluator.CHECKMATE, score)
	assert.Equal(t, MoveNone, move)
}

// TestNegamaxFindsMateInOne sets up a position one White move before the
// checkmatePosition above and checks depth 2 reports the mate score from
// White's perspective, with a move that actually delivers checkmate.
func TestNegamaxFindsMateInOne(t *testing.T) {
	var pieces [SideLength][PtLength]Bitboard
	pieces[First][King] = NewSquare(FileF, Rank7).Bb()
	pieces[First][Queen] = NewSquare(FileG, Rank2).Bb()
	pieces[Second][King] = NewSquare(FileH, Rank8).Bb()
	p := position.FromExternalState(pieces, First, CastlingRights{}, BbZero, 0, 1)

	score, move := search.Negamax(p, 2)
	assert.EqualValues(t, -evaluator.CHECKMATE, score)
	assert.NotEqual(t, MoveNone, move)

	p.Make(move)
	assert.True(t, p.IsInCheck(Second))
	mateScore, mateMove := search.Negamax(p, 1)
	assert.EqualValues(t, evaluator.CHECKMATE, mateScore)
	assert.Equal(t, MoveNone, mateMove)
	p.Undo()
}

func TestNegamaxDepthZeroReturnsStaticEval(t *testing.T) {
	p := position.StartPosition()
	score, move := search.Negamax(p, 0)
	assert.EqualValues(t, evaluator.Evaluate(p), score)
	assert.Equal(t, MoveNone, move)
}
