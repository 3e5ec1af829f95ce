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

// generatePawnMoves covers captures, single and double pushes, and
// en-passant arrival as a plain destination. The bypassed pawn is not
// removed here — that gap belongs to make/undo, not the generator.
func generatePawnMoves(p *position.Position, side Side, friendly, enemy Bitboard, moves *moveslice.MoveSlice) {
	pawns := p.PiecesBb(side, Pawn)
	ep := p.EnPassant()
	homeRank, doublePushDir := pawnGeometry(side)

	for bb := pawns; bb != BbZero; {
		from := bb.PopLsb()

		// captures
		for targets := attacks.GetPawnAttacks(side, from) & enemy; targets != BbZero; {
			to := targets.PopLsb()
			addMove(p, side, from, to, Pawn, false, moves)
		}

		// en passant: destination is the ep square itself, and the pawn
		// that would be captured must actually be present in enemy.
		if epTargets := attacks.GetPawnAttacks(side, from) & ep; epTargets != BbZero {
			epSq := epTargets.Lsb()
			capturedPawnSq := epSq.To(side.Flip().MoveDirection())
			if capturedPawnSq.IsValid() && enemy.Has(capturedPawnSq) {
				addMove(p, side, from, epSq, Pawn, false, moves)
			}
		}

		// single push
		oneForward := from.To(side.MoveDirection())
		if !oneForward.IsValid() || (friendly|enemy).Has(oneForward) {
			continue
		}
		addMove(p, side, from, oneForward, Pawn, false, moves)

		// double push, only from the home rank and only if both the
		// intermediate and destination squares are unoccupied.
		if from.RankOf() == homeRank {
			twoForward := oneForward.To(doublePushDir)
			if twoForward.IsValid() && !(friendly | enemy).Has(twoForward) {
				addMove(p, side, from, twoForward, Pawn, false, moves)
			}
		}
	}
}

// pawnGeometry returns the home rank a double push may originate from and
// the direction of the push's second step.
func pawnGeometry(side Side) (Rank, Direction) {
	if side == First {
		return Rank2, North
	}
	return Rank7, South
}
