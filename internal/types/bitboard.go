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

// Package types holds the board-geometry primitives shared by every other
// package: square-sets (bitboards), square/file/rank indexing, sides, piece
// kinds, the encoded move format and castling-right square-sets.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a square-set: bit i corresponds to Square(i). Bit 0 is SqA1,
// bit 63 is SqH8; rank = index/8, file = index%8.
type Bitboard uint64

// BbZero and BbAll are the empty and fully-occupied square-sets.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the lowest set bit, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the lowest set square and clears it from the receiver.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &^= sq.Bb()
	}
	return sq
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets the square's bit.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// ClearSquare clears the square's bit.
func (b *Bitboard) ClearSquare(sq Square) {
	*b &^= sq.Bb()
}

// ShiftBitboard shifts every set bit one square in direction d, discarding
// bits that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHMask) << 1
	case West:
		return (b &^ FileAMask) >> 1
	case Northeast:
		return (b &^ FileHMask) << 9
	case Northwest:
		return (b &^ FileAMask) << 7
	case Southeast:
		return (b &^ FileHMask) >> 7
	case Southwest:
		return (b &^ FileAMask) >> 9
	}
	return b
}

// String renders the bitboard as an 8x8 grid of '1'/'.' with rank 8 on top,
// useful only for debugging (no printing is part of the external surface).
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			if b.Has(sq) {
				sb.WriteString("1")
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// GoString supports %#v and fmt.Stringer-style debug dumps.
func (b Bitboard) GoString() string {
	return fmt.Sprintf("Bitboard(%016x)", uint64(b))
}
