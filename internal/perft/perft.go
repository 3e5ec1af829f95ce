/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package perft exhaustively counts the leaf positions reachable from a
// starting position to a fixed depth, exercising movegen and make/undo
// against known reference node counts. It is a correctness tool, not part
// of search: nothing under internal/search imports it.
package perft

import (
	"runtime"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	mylog "chesscore/internal/logging"
	"chesscore/internal/movegen"
	"chesscore/internal/position"
	. "chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = mylog.GetLog("perft")
}

// legalMoves filters a side's pseudo-legal moves down to those that do not
// leave its own king attacked after Make. Legality filtering is owned by
// search and perft, not movegen.
func legalMoves(p *position.Position, side Side) []Move {
	pseudo := movegen.Generate(p, side)
	out := make([]Move, 0, pseudo.Len())
	for _, m := range pseudo {
		p.Make(m)
		if !p.IsInCheck(side) {
			out = append(out, m)
		}
		p.Undo()
	}
	return out
}

// Count returns the number of leaf positions reachable from p in exactly
// depth plies of legal moves. Count(p, 0) is 1 by definition.
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	side := p.ToMove()
	total := uint64(0)
	for _, m := range legalMoves(p, side) {
		p.Make(m)
		total += Count(p, depth-1)
		p.Undo()
	}
	return total
}

// Divide reports, for each legal first-ply move, the node count of the
// subtree rooted at that move. The first-ply moves are fanned out across a
// goroutine pool bounded by runtime.NumCPU() via a buffered-channel
// semaphore; each goroutine applies its first-ply move with Make on an
// independent *position.Position built from the same root, so no mutable
// state is shared across goroutines.
func Divide(root *position.Position, depth int) (map[Move]uint64, error) {
	if depth <= 0 {
		return map[Move]uint64{}, nil
	}
	side := root.ToMove()
	moves := legalMoves(root, side)

	results := make([]uint64, len(moves))
	sem := make(chan struct{}, runtime.NumCPU())
	g := new(errgroup.Group)

	for i, m := range moves {
		i, m := i, m
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			p := clone(root)
			p.Make(m)
			results[i] = Count(p, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Move]uint64, len(moves))
	for i, m := range moves {
		out[m] = results[i]
	}
	log.Debugf("divide depth %d: %d first-ply moves", depth, len(moves))
	return out, nil
}

// clone rebuilds an independent Position carrying the same board state as
// p, so concurrent Divide workers never share mutable history.
func clone(p *position.Position) *position.Position {
	var pieces [SideLength][PtLength]Bitboard
	for side := First; side < SideLength; side++ {
		for pt := Pawn; pt < PtLength; pt++ {
			pieces[side][pt] = p.PiecesBb(side, pt)
		}
	}
	return position.FromExternalState(pieces, p.ToMove(), p.Castling(), p.EnPassant(), p.HalfmoveTick(), p.FullmoveCounter())
}
