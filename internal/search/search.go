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

// Package search implements a depth-limited negamax over pseudo-legal
// moves: no iterative deepening, no transposition table, no move ordering,
// no pruning window, no statistics collection, no quiescence.
package search

import (
	"github.com/op/go-logging"

	"chesscore/internal/evaluator"
	mylog "chesscore/internal/logging"
	"chesscore/internal/movegen"
	"chesscore/internal/position"
	. "chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = mylog.GetLog("search")
}

// Negamax returns the negamax value of p at depth plies and one move that
// attains it. depth must be >= 0; depth 0 returns the static evaluation of
// p and MoveNone.
func Negamax(p *position.Position, depth int) (int32, Move) {
	if depth == 0 {
		return evaluator.Evaluate(p), MoveNone
	}

	mover := p.ToMove()
	best := int32(0)
	bestMove := MoveNone
	found := false

	for _, m := range movegen.Generate(p, mover) {
		p.Make(m)
		if p.IsInCheck(mover) {
			p.Undo()
			continue
		}

		value := -negamax(p, depth-1)
		p.Undo()

		if !found || value > best {
			found = true
			best = value
			bestMove = m
		}
	}

	if !found {
		if p.IsInCheck(mover) {
			log.Debugf("depth %d: %s has no legal move and is in check", depth, mover)
			return evaluator.CHECKMATE, MoveNone
		}
		log.Debugf("depth %d: %s has no legal move and is not in check", depth, mover)
		return evaluator.STALEMATE, MoveNone
	}

	return best, bestMove
}

// negamax is Negamax's recursive interior: it only needs the score, never
// the move that produced it.
func negamax(p *position.Position, depth int) int32 {
	if depth == 0 {
		return evaluator.Evaluate(p)
	}

	mover := p.ToMove()
	best := int32(0)
	found := false

	for _, m := range movegen.Generate(p, mover) {
		p.Make(m)
		if p.IsInCheck(mover) {
			p.Undo()
			continue
		}

		value := -negamax(p, depth-1)
		p.Undo()

		if !found || value > best {
			found = true
			best = value
		}
	}

	if !found {
		if p.IsInCheck(mover) {
			return evaluator.CHECKMATE
		}
		return evaluator.STALEMATE
	}

	return best
}
