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

// generateSliderMoves handles Bishop, Rook and Queen: destinations =
// magic_lookup(sq, occupied) & ~friendly. Queen reuses the same magic
// lookup GetAttacksBb already unions for Bishop+Rook geometry.
func generateSliderMoves(p *position.Position, side Side, pt PieceKind, friendly, occupied Bitboard, moves *moveslice.MoveSlice) {
	for bb := p.PiecesBb(side, pt); bb != BbZero; {
		from := bb.PopLsb()
		for targets := attacks.GetAttacksBb(pt, from, occupied) &^ friendly; targets != BbZero; {
			to := targets.PopLsb()
			addMove(p, side, from, to, pt, false, moves)
		}
	}
}
