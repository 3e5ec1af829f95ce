/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/internal/position"
)

// Reference counts are the standard chess perft sequence for the initial
// position, restricted to what this generator actually produces: no
// castling moves are ever generated, so depths deep enough for castling to
// matter are not included here.
func TestCountInitialPositionDepth1(t *testing.T) {
	p := position.StartPosition()
	assert.EqualValues(t, 20, Count(p, 1))
}

func TestCountInitialPositionDepth2(t *testing.T) {
	p := position.StartPosition()
	assert.EqualValues(t, 400, Count(p, 2))
}

func TestCountZeroDepthIsOne(t *testing.T) {
	p := position.StartPosition()
	assert.EqualValues(t, 1, Count(p, 0))
}

func TestDivideSumsToCount(t *testing.T) {
	p := position.StartPosition()
	byMove, err := Divide(p, 2)
	assert.NoError(t, err)
	assert.Len(t, byMove, 20)

	var sum uint64
	for _, n := range byMove {
		sum += n
	}
	assert.EqualValues(t, Count(position.StartPosition(), 2), sum)
}

func TestDivideDepthOneIsAllOnes(t *testing.T) {
	p := position.StartPosition()
	byMove, err := Divide(p, 1)
	assert.NoError(t, err)
	for _, n := range byMove {
		assert.EqualValues(t, 1, n)
	}
}
