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

// chesscore is a thin driver around the engine core: it builds the standard
// start position, runs the negamax search to a requested depth, and
// optionally runs perft/divide instead. No FEN parsing, board printing, UCI
// protocol, or opening book lives here or anywhere in this module.
package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesscore/internal/config"
	"chesscore/internal/perft"
	"chesscore/internal/position"
	"chesscore/internal/search"
	"chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	depth := flag.Int("depth", 0, "search depth; 0 uses the configured default depth")
	perftDepth := flag.Int("perft", 0, "run perft/divide to this depth instead of searching")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	p := position.StartPosition()

	if *perftDepth > 0 {
		runPerft(p, *perftDepth)
		return
	}

	d := *depth
	if d <= 0 {
		d = config.Settings.Search.DefaultDepth
	}
	runSearch(p, d)
}

func runSearch(p *position.Position, depth int) {
	defer util.TimeTrack(time.Now(), "search")
	score, move := search.Negamax(p, depth)
	out.Printf("depth %d: best move %s, score %d\n", depth, move, score)
}

func runPerft(p *position.Position, depth int) {
	out.Printf("perft depth %d, %d CPUs\n", depth, runtime.NumCPU())
	start := time.Now()
	byMove, err := perft.Divide(p, depth)
	if err != nil {
		out.Printf("perft failed: %v\n", err)
		return
	}
	elapsed := time.Since(start)
	var total uint64
	for m, n := range byMove {
		out.Printf("%s: %d\n", m, n)
		total += n
	}
	out.Printf("total: %d\n", total)
	out.Printf("NPS : %d\n", util.Nps(total, elapsed))
	out.Println(util.MemStat())
}
