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

// Package evaluator contains structures and functions to calculate the
// value of a chess position to be used in a chess engine search. Phase
// selection is a sharp cliff, not a taper: a position is either
// "middlegame" or "endgame", never a blend.
package evaluator

import (
	"github.com/op/go-logging"

	"chesscore/internal/attacks"
	"chesscore/internal/config"
	mylog "chesscore/internal/logging"
	"chesscore/internal/position"
	. "chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = mylog.GetLog("evaluator")
}

// CHECKMATE and STALEMATE are the terminal scores search returns when a
// side to move has no legal moves. CHECKMATE lies far below any score
// Evaluate can return; STALEMATE is 0, the same value Evaluate returns for a
// balanced position such as the start position.
const (
	CHECKMATE int32 = -10000
	STALEMATE int32 = 0
)

// Evaluate computes a static score for p from the perspective of the side
// to move: positive means good for that side. It never inspects legality —
// the CHECKMATE/STALEMATE terminal cases are search's responsibility, not
// this function's.
func Evaluate(p *position.Position) int32 {
	endgame := isEndgame(p)

	var total [SideLength]int32
	for side := First; side < SideLength; side++ {
		total[side] = materialScore(p, side, endgame) + positionalScore(p, side, endgame) + bishopPairBonus(p, side)
		if !endgame {
			total[side] += kingSafetyScore(p, side)
		}
	}

	score := total[First] - total[Second]
	if p.ToMove() == Second {
		score = -score
	}
	return score
}

// isEndgame applies the sharp phase cliff: count every piece on the board
// excluding pawns (so both kings are always counted); fewer than
// config.Settings.Eval.PhaseThreshold selects endgame parameters.
func isEndgame(p *position.Position) bool {
	count := 0
	for side := First; side < SideLength; side++ {
		for pt := Knight; pt <= King; pt++ {
			count += p.PiecesBb(side, pt).PopCount()
		}
	}
	return count < config.Settings.Eval.PhaseThreshold
}

func materialScore(p *position.Position, side Side, endgame bool) int32 {
	values := &config.Settings.Eval.MaterialMid
	if endgame {
		values = &config.Settings.Eval.MaterialEnd
	}
	var total int32
	for pt := Pawn; pt < PtLength; pt++ {
		total += values[pt] * int32(p.PiecesBb(side, pt).PopCount())
	}
	return total
}

func positionalScore(p *position.Position, side Side, endgame bool) int32 {
	var total int32
	for pt := Pawn; pt < PtLength; pt++ {
		for bb := p.PiecesBb(side, pt); bb != BbZero; {
			sq := bb.PopLsb()
			total += psqValue(side, pt, sq, endgame)
		}
	}
	return total
}

func bishopPairBonus(p *position.Position, side Side) int32 {
	if p.PiecesBb(side, Bishop).PopCount() == 2 {
		return config.Settings.Eval.BishopPairBonus
	}
	return 0
}

// kingSafetyScore is a middlegame-only king safety heuristic: a king with
// no pseudo-legal destinations is treated as well-defended
// (can't be driven further back), a king whose move neighborhood overlaps
// few friendly squares is "shielded" within the configured bit budget, and
// anything else draws the exposed malus.
func kingSafetyScore(p *position.Position, side Side) int32 {
	kingSq := p.KingSquare(side)
	friendly := p.OccupiedBb(side)
	neighborhood := attacks.GetLeaperAttacks(King, kingSq)

	kingMoves := neighborhood &^ friendly
	if kingMoves == BbZero {
		return config.Settings.Eval.KingSafetyNoMovesBonus
	}
	if (neighborhood & friendly).PopCount() <= config.Settings.Eval.KingSafetyShieldMaxBits {
		return config.Settings.Eval.KingSafetyShieldedBonus
	}
	return config.Settings.Eval.KingSafetyExposedMalus
}
