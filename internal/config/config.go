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

// Package config holds globally available configuration variables which are
// either set by compiled-in defaults or overridden by a config.toml file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"chesscore/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file, relative to the working
	// directory.
	ConfFile = "./config.toml"

	// Settings is the global configuration, read in from ConfFile (or left
	// at its compiled-in defaults if the file is absent).
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

type logConfiguration struct {
	// LogLevel name understood by github.com/op/go-logging: CRITICAL,
	// ERROR, WARNING, NOTICE, INFO, DEBUG. Decoded from the config file;
	// internal/logging does not read it.
	LogLevel string
}

func init() {
	Settings.Log.LogLevel = "DEBUG"
}

// Setup reads ConfFile and overlays its values onto the compiled-in
// defaults. Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config file not found, using defaults:", err)
		}
	}
	initialized = true
}

// String prints the current configuration settings and values, using
// reflection to read the Search and Eval structs.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	writeFields(&c, reflect.ValueOf(&settings.Search).Elem())
	c.WriteString("\nEvaluation Config:\n")
	writeFields(&c, reflect.ValueOf(&settings.Eval).Elem())
	return c.String()
}

func writeFields(c *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
