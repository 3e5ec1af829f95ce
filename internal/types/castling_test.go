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

func TestCastlingRightsSetHasClear(t *testing.T) {
	var c CastlingRights
	assert.False(t, c.Has(First, Kingside))

	c.Set(First, Kingside)
	assert.True(t, c.Has(First, Kingside))
	assert.False(t, c.Has(First, Queenside))

	c.Clear(First, Kingside)
	assert.False(t, c.Has(First, Kingside))
}

func TestCastlingRightsSetRecordsRookHome(t *testing.T) {
	var c CastlingRights
	c.Set(Second, Queenside)
	assert.Equal(t, RookHome(Second, Queenside).Bb(), c[Second][Queenside])
}

func TestRookHomeAndKingHome(t *testing.T) {
	assert.Equal(t, SqH1, RookHome(First, Kingside))
	assert.Equal(t, SqA1, RookHome(First, Queenside))
	assert.Equal(t, SqH8, RookHome(Second, Kingside))
	assert.Equal(t, SqA8, RookHome(Second, Queenside))

	assert.Equal(t, SqE1, KingHome(First))
	assert.Equal(t, SqE8, KingHome(Second))
}
