//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFile(t *testing.T) {
	got, err := ResolveFile("./config.toml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, filepath.Clean(got), got)
}

func TestResolveCreateFolder(t *testing.T) {
	dir := filepath.Join(os.TempDir(), "chesscore-pathresolv-test")
	defer os.RemoveAll(dir)

	got, err := ResolveCreateFolder(dir)
	require.NoError(t, err)
	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
