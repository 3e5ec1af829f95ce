/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushClearHas(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(testSqE4()))
	b.PushSquare(testSqE4())
	assert.True(t, b.Has(testSqE4()))
	b.ClearSquare(testSqE4())
	assert.False(t, b.Has(testSqE4()))
}

func TestBitboardPopCountAndPopLsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA1)
	b.PushSquare(SqE1)
	b.PushSquare(SqH8)
	assert.Equal(t, 3, b.PopCount())

	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	assert.Equal(t, 2, b.PopCount())
}

func TestBitboardPopLsbOnEmptyReturnsSqNone(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestShiftBitboardDiscardsFileWrap(t *testing.T) {
	aFile := FileA.Bb()
	assert.Equal(t, BbZero, ShiftBitboard(aFile, West))

	hFile := FileH.Bb()
	assert.Equal(t, BbZero, ShiftBitboard(hFile, East))
}

func TestShiftBitboardNorthSouthRoundTrip(t *testing.T) {
	b := NewSquare(FileD, Rank4).Bb()
	shifted := ShiftBitboard(b, North)
	assert.Equal(t, NewSquare(FileD, Rank5).Bb(), shifted)
	assert.Equal(t, b, ShiftBitboard(shifted, South))
}

// testSqE4 is a small test helper since only the corners and the king home
// squares are named square constants.
func testSqE4() Square { return NewSquare(FileE, Rank4) }
