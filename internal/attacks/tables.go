//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package attacks provides O(1) lookup of attack square-sets: precomputed
// pawn/knight/king tables and magic-indexed sliding-piece (bishop/rook)
// tables, plus a reference ray-walk generator used to cross-check the
// magic tables. All tables are computed once at package initialization and
// are read-only afterwards, safe to share across concurrent searchers
// operating on distinct Positions.
package attacks

import (
	. "chesscore/internal/types"
)

var (
	pawnAttacks   [SideLength][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}

	rookTable   []Bitboard
	bishopTable []Bitboard
	rookMagics  [64]Magic
	bishopMagics [64]Magic
)

func init() {
	initLeaperTables()
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	InitMagics(&rookTable, &rookMagics, &rookDirections)
	InitMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

// initLeaperTables computes the fixed-geometry pawn/knight/king attack sets.
func initLeaperTables() {
	knightSteps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps := [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	for sq := Square(0); sq < 64; sq++ {
		// pawn attacks: one diagonal step forward for each side. Square.Bb()
		// of an invalid (off-board) square is BbZero, so no edge case is
		// needed here beyond what To() already guards.
		pawnAttacks[First][sq] = sq.To(Northeast).Bb() | sq.To(Northwest).Bb()
		pawnAttacks[Second][sq] = sq.To(Southeast).Bb() | sq.To(Southwest).Bb()

		// knight: all squares at chess-knight offset that stay on the board
		var knight Bitboard
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, step := range knightSteps {
			nf, nr := f+step[0], r+step[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight.PushSquare(NewSquare(File(nf), Rank(nr)))
			}
		}
		knightAttacks[sq] = knight

		// king: one step in any of the eight directions
		var king Bitboard
		for _, d := range kingSteps {
			if to := sq.To(d); to.IsValid() {
				king.PushSquare(to)
			}
		}
		kingAttacks[sq] = king
	}
}

// GetPawnAttacks returns the diagonal attack squares of a pawn of the given
// side on the given square.
func GetPawnAttacks(side Side, sq Square) Bitboard {
	return pawnAttacks[side][sq]
}

// GetLeaperAttacks returns the knight or king attack set for a square.
func GetLeaperAttacks(pt PieceKind, sq Square) Bitboard {
	if pt == Knight {
		return knightAttacks[sq]
	}
	return kingAttacks[sq]
}
