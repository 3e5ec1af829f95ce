/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package movegen enumerates pseudo-legal moves for a position and side:
// moves that obey piece geometry and friendly occupancy but are not yet
// checked for leaving the mover's own king attacked. Castling execution and
// promotion-piece selection are not implemented; only the right-tracking
// state in position.Position persists.
package movegen

import (
	"github.com/op/go-logging"

	mylog "chesscore/internal/logging"
	"chesscore/internal/moveslice"
	"chesscore/internal/position"
	. "chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = mylog.GetLog("movegen")
}

// Generate enumerates every pseudo-legal move of side in position p.
// Ordering is unspecified but deterministic for a given (p, side): squares
// are visited in increasing index order, piece kinds in the fixed order
// Pawn, Knight, Bishop, Rook, Queen, King.
func Generate(p *position.Position, side Side) moveslice.MoveSlice {
	var moves moveslice.MoveSlice

	friendly := p.OccupiedBb(side)
	enemy := p.OccupiedBb(side.Flip())
	occupied := p.OccupiedAll()

	generatePawnMoves(p, side, friendly, enemy, &moves)
	generateLeaperMoves(p, side, Knight, friendly, &moves)
	generateSliderMoves(p, side, Bishop, friendly, occupied, &moves)
	generateSliderMoves(p, side, Rook, friendly, occupied, &moves)
	generateSliderMoves(p, side, Queen, friendly, occupied, &moves)
	generateLeaperMoves(p, side, King, friendly, &moves)

	log.Debugf("generated %d pseudo-legal moves for %s", moves.Len(), side)
	return moves
}

// addMove encodes and appends a move, resolving the captured piece via
// position.CapturedAt.
func addMove(p *position.Position, side Side, from, to Square, piece PieceKind, promo bool, moves *moveslice.MoveSlice) {
	captured := position.CapturedAt(p, side, to)
	m, err := EncodeMove(from, to, piece, side, captured, promo)
	if err != nil {
		// from/to are always in-range squares coming from a board-sized
		// bitboard scan, so this indicates an internal invariant break.
		panic(err)
	}
	moves.PushBack(m)
}
