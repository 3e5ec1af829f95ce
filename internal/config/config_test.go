//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory, where config.toml lives.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	depth := Settings.Search.DefaultDepth
	Setup()
	assert.Equal(t, depth, Settings.Search.DefaultDepth)
}

func TestDefaults(t *testing.T) {
	Setup()
	assert.Equal(t, int32(100), Settings.Eval.MaterialMid[0])
	assert.Equal(t, int32(20000), Settings.Eval.MaterialMid[5])
	assert.Equal(t, 6, Settings.Eval.PhaseThreshold)
	assert.Greater(t, Settings.Search.DefaultDepth, 0)
}

func TestString(t *testing.T) {
	Setup()
	assert.Contains(t, Settings.String(), "Search Config")
	assert.Contains(t, Settings.String(), "Evaluation Config")
}
