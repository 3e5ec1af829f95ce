//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package position holds the mutable board state: the twelve piece
// square-sets, derived occupancy, castling/en-passant tracking and the
// move-stack history that Make/Undo operate on. No FEN parsing or board
// printing lives here — a Position is built from already-validated
// external state.
package position

import (
	"github.com/op/go-logging"

	mylog "chesscore/internal/logging"
	. "chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = mylog.GetLog("position")
}

// Position is the canonical board state.
type Position struct {
	pieces   [SideLength][PtLength]Bitboard
	bySide   [SideLength]Bitboard
	occupied Bitboard

	toMove Side

	castling  CastlingRights
	enPassant Bitboard

	halfmoveTick    int
	fullmoveCounter int

	history []Move
}

// FromExternalState constructs a Position from already-validated external
// state: the twelve piece square-sets, side to move, castling rights,
// en-passant square-set and move counters. No invariant checking is
// performed here — the caller is responsible for supplying a consistent
// state.
func FromExternalState(
	pieces [SideLength][PtLength]Bitboard,
	toMove Side,
	castling CastlingRights,
	enPassant Bitboard,
	halfmoveTick int,
	fullmoveCounter int,
) *Position {
	p := &Position{
		pieces:          pieces,
		toMove:          toMove,
		castling:        castling,
		enPassant:       enPassant,
		halfmoveTick:    halfmoveTick,
		fullmoveCounter: fullmoveCounter,
		history:         make([]Move, 0, 64),
	}
	p.recomputeDerived()
	return p
}

// recomputeDerived rebuilds bySide and occupied from the piece square-sets
// by construction rather than by incremental bookkeeping.
func (p *Position) recomputeDerived() {
	p.bySide[First] = BbZero
	p.bySide[Second] = BbZero
	for pt := Pawn; pt < PtLength; pt++ {
		p.bySide[First] |= p.pieces[First][pt]
		p.bySide[Second] |= p.pieces[Second][pt]
	}
	p.occupied = p.bySide[First] | p.bySide[Second]
}

// StartPosition builds the canonical standard 32-piece starting setup,
// First to move, all four castling rights available, no en-passant square.
func StartPosition() *Position {
	var pieces [SideLength][PtLength]Bitboard

	pieces[First][Pawn] = Rank2.Bb()
	pieces[Second][Pawn] = Rank7.Bb()

	backRank := func(side Side, r Rank) {
		pieces[side][Rook] |= NewSquare(FileA, r).Bb() | NewSquare(FileH, r).Bb()
		pieces[side][Knight] |= NewSquare(FileB, r).Bb() | NewSquare(FileG, r).Bb()
		pieces[side][Bishop] |= NewSquare(FileC, r).Bb() | NewSquare(FileF, r).Bb()
		pieces[side][Queen] |= NewSquare(FileD, r).Bb()
		pieces[side][King] |= NewSquare(FileE, r).Bb()
	}
	backRank(First, Rank1)
	backRank(Second, Rank8)

	var castling CastlingRights
	castling.Set(First, Kingside)
	castling.Set(First, Queenside)
	castling.Set(Second, Kingside)
	castling.Set(Second, Queenside)

	return FromExternalState(pieces, First, castling, BbZero, 0, 1)
}

// PiecesBb returns the square-set of a side's pieces of one kind.
func (p *Position) PiecesBb(side Side, pt PieceKind) Bitboard {
	return p.pieces[side][pt]
}

// OccupiedBb returns the square-set of all of a side's pieces.
func (p *Position) OccupiedBb(side Side) Bitboard {
	return p.bySide[side]
}

// OccupiedAll returns the square-set of every occupied square.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupied
}

// ToMove returns the side to move next.
func (p *Position) ToMove() Side {
	return p.toMove
}

// EnPassant returns the current en-passant target square-set (population
// count 0 or 1).
func (p *Position) EnPassant() Bitboard {
	return p.enPassant
}

// Castling returns the current castling-rights square-sets.
func (p *Position) Castling() CastlingRights {
	return p.castling
}

// KingSquare returns the square of a side's (sole) king.
func (p *Position) KingSquare(side Side) Square {
	return p.pieces[side][King].Lsb()
}

// HalfmoveTick returns a parity bit that alternates with each Make — a
// phase flag, not a fifty-move-rule halfmove clock.
func (p *Position) HalfmoveTick() int { return p.halfmoveTick }

// FullmoveCounter returns the running full-move count.
func (p *Position) FullmoveCounter() int { return p.fullmoveCounter }

// HistoryLength returns the number of moves currently on the move stack,
// which must equal the number of net Make calls since construction.
func (p *Position) HistoryLength() int {
	return len(p.history)
}

// CapturedAt scans the opposing side's six piece square-sets for the given
// destination square, returning its kind or PieceNone if empty. Kept as a
// standalone helper rather than inlined into a generation loop; the
// generator calls it per destination, and Make reads the captured kind back
// from the encoded move instead of scanning again.
func CapturedAt(p *Position, side Side, to Square) PieceKind {
	opp := side.Flip()
	for pt := Pawn; pt < PtLength; pt++ {
		if p.pieces[opp][pt].Has(to) {
			return pt
		}
	}
	return PieceNone
}
