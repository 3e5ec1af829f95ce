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

// Package moveslice provides helper functionality for slices of type Move,
// used by the generator to collect a position's pseudo-legal moves, which
// search and perft then iterate.
package moveslice

import (
	"strings"

	. "chesscore/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// PushBack appends a move to the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. Panics on an empty slice, as
// popping an empty move list is always a caller bug.
func (ms *MoveSlice) PopBack() Move {
	old := *ms
	n := len(old)
	if n == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	m := old[n-1]
	*ms = old[:n-1]
	return m
}

// Front returns the first move without removing it. Panics if empty.
func (ms MoveSlice) Front() Move {
	if len(ms) == 0 {
		panic("moveslice: Front on empty slice")
	}
	return ms[0]
}

// Back returns the last move without removing it. Panics if empty.
func (ms MoveSlice) Back() Move {
	if len(ms) == 0 {
		panic("moveslice: Back on empty slice")
	}
	return ms[len(ms)-1]
}

// Len returns the number of moves currently held.
func (ms MoveSlice) Len() int {
	return len(ms)
}

// Clear empties the slice without releasing its backing array, so the
// generator can reuse the same allocation across calls.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// String renders the moves space-separated in coordinate form, for debug
// output only (no board printing is part of the external surface).
func (ms MoveSlice) String() string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
