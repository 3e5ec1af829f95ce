//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	. "chesscore/internal/types"
)

// Make applies an encoded move to the position, pushing it onto the move
// stack. Deliberately leaves three gaps unfixed: en-passant capture does
// not remove the bypassed pawn, castling rights are tracked but a castling
// move is never applied (the generator never emits one), and
// promotion-piece selection is not represented.
func (p *Position) Make(m Move) {
	from, to, piece, side, captured, _ := DecodeMove(m)
	log.Debugf("make %s: %s%s", side, from, to)

	// step 2: remove a captured piece, if any, from the opponent's set.
	// An en-passant arrival is encoded like any other destination and the
	// bypassed pawn is not located or removed here.
	if captured != PieceNone {
		p.pieces[side.Flip()][captured].ClearSquare(to)
	}

	// step 4/5: clear castling rights consumed by this move.
	if piece == King {
		p.castling.Clear(side, Kingside)
		p.castling.Clear(side, Queenside)
	}
	if piece == Rook {
		if from == RookHome(side, Kingside) {
			p.castling.Clear(side, Kingside)
		} else if from == RookHome(side, Queenside) {
			p.castling.Clear(side, Queenside)
		}
	}

	// step 6: en-passant square tracking. The two-square-advance test uses
	// raw square-index arithmetic (shifting the "from" bit by two ranks =
	// 16 square-indices) rather than a plain rank comparison, and is still
	// gated on piece == Pawn.
	p.enPassant = BbZero
	if piece == Pawn && isTwoSquareAdvance(from, to) {
		p.enPassant = epSquareBehind(side, to).Bb()
	}

	// step 7: move the piece itself.
	p.pieces[side][piece].ClearSquare(from)
	p.pieces[side][piece].PushSquare(to)

	// steps 3/7 combined: rebuild derived bitboards from the piece sets.
	p.recomputeDerived()

	// step 8.
	p.history = append(p.history, m)

	// step 9: tick.
	if p.halfmoveTick == 1 {
		p.toMove = First
		p.halfmoveTick = 0
		p.fullmoveCounter++
	} else {
		p.toMove = Second
		p.halfmoveTick = 1
	}
}

// Undo reverts the most recent Make call. Panics with ErrEmptyHistory if
// the move stack is empty — a programming error, signaled distinctly from
// any evaluation result.
func (p *Position) Undo() {
	if len(p.history) == 0 {
		panic(ErrEmptyHistory)
	}
	n := len(p.history) - 1
	m := p.history[n]
	p.history = p.history[:n]

	from, to, piece, side, captured, _ := DecodeMove(m)

	// step 3: recompute en-passant availability from the move being
	// undone rather than from a saved prior value — the history stack
	// holds only encoded moves, so undo cannot recover whatever
	// en-passant square existed before this move was made. Undo does not
	// restore en-passant availability correctly across every branch.
	p.enPassant = BbZero
	if piece == Pawn && isTwoSquareAdvance(from, to) {
		p.enPassant = epSquareBehind(side, to).Bb()
	}

	// step 4: recompute castling rights. Since no prior-rights snapshot
	// is kept either, a king move restores rights by checking whether a
	// rook still physically occupies each corner square, and a rook
	// move restores the single wing it vacated — both heuristics can
	// wrongly re-grant a right that had already been permanently lost,
	// which is the same approximation the original source makes.
	if piece == King {
		if p.pieces[side][Rook].Has(RookHome(side, Kingside)) {
			p.castling.Set(side, Kingside)
		}
		if p.pieces[side][Rook].Has(RookHome(side, Queenside)) {
			p.castling.Set(side, Queenside)
		}
	}
	if piece == Rook {
		if from == RookHome(side, Kingside) {
			p.castling.Set(side, Kingside)
		} else if from == RookHome(side, Queenside) {
			p.castling.Set(side, Queenside)
		}
	}

	// step 5: move the piece back.
	p.pieces[side][piece].ClearSquare(to)
	p.pieces[side][piece].PushSquare(from)

	// step 6: restore a captured piece.
	if captured != PieceNone {
		p.pieces[side.Flip()][captured].PushSquare(to)
	}

	// step 7.
	p.recomputeDerived()

	// step 8: tick back.
	if p.halfmoveTick == 0 {
		p.halfmoveTick = 1
		p.fullmoveCounter--
	} else {
		p.halfmoveTick = 0
	}

	// step 9.
	p.toMove = side
}

// isTwoSquareAdvance reproduces the original source's bit-shift test for a
// pawn double push: the "from" square's bit, shifted two ranks (16
// square-indices) in either direction, must equal the "to" square's bit.
func isTwoSquareAdvance(from, to Square) bool {
	if from+16 <= SqH8 && (Bitboard(1)<<uint(from+16)) == to.Bb() {
		return true
	}
	if from-16 >= SqA1 && (Bitboard(1)<<uint(from-16)) == to.Bb() {
		return true
	}
	return false
}

// epSquareBehind returns the square a pawn passed over during a two-square
// advance — one rank behind the landing square, from the mover's
// perspective.
func epSquareBehind(side Side, to Square) Square {
	if side == First {
		return to.To(South)
	}
	return to.To(North)
}
