/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package movegen

import (
	"chesscore/internal/attacks"
	"chesscore/internal/moveslice"
	"chesscore/internal/position"
	. "chesscore/internal/types"
)

// generateLeaperMoves handles Knight and King: destinations = TABLE[sq] &
// ~friendly.
func generateLeaperMoves(p *position.Position, side Side, pt PieceKind, friendly Bitboard, moves *moveslice.MoveSlice) {
	for bb := p.PiecesBb(side, pt); bb != BbZero; {
		from := bb.PopLsb()
		for targets := attacks.GetLeaperAttacks(pt, from) &^ friendly; targets != BbZero; {
			to := targets.PopLsb()
			addMove(p, side, from, to, pt, false, moves)
		}
	}
}
