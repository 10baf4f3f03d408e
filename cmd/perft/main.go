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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ckirsch/chesscore/internal/attacks"
	"github.com/ckirsch/chesscore/internal/config"
	myLogging "github.com/ckirsch/chesscore/internal/logging"
	"github.com/ckirsch/chesscore/internal/movegen"
	"github.com/ckirsch/chesscore/internal/position"
)

var out = message.NewPrinter(language.English)

var logLevels = map[string]int{
	"critical": int(logging.CRITICAL),
	"error":    int(logging.ERROR),
	"warning":  int(logging.WARNING),
	"notice":   int(logging.NOTICE),
	"info":     int(logging.INFO),
	"debug":    int(logging.DEBUG),
}

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to run perft from")
	depth := flag.Int("depth", 5, "perft depth")
	parallel := flag.Bool("parallel", false, "split root moves across goroutines instead of a single depth-first walk")
	workers := flag.Int("workers", 0, "worker goroutines for -parallel (0 means config.Movegen.PerftWorkers, or runtime.NumCPU() if that is also 0)")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := logLevels[*logLvl]; found {
		config.Settings.Log.Level = lvl
	}
	myLogging.GetLog()

	if config.Settings.Movegen.EagerMagicInit {
		attacks.EnsureMagicsInitialized()
	}

	if *parallel {
		pos, err := position.ParseFEN(*fen)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		n := *workers
		if n <= 0 {
			n = config.Settings.Movegen.PerftWorkers
		}
		if n <= 0 {
			n = runtime.NumCPU()
		}
		start := time.Now()
		nodes := movegen.PerftParallel(pos, *depth, n)
		elapsed := time.Since(start)
		out.Printf("Nodes: %d  Time: %s  Workers: %d\n", nodes, elapsed, n)
		return
	}

	var pf movegen.Perft
	if err := pf.Run(*fen, *depth); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
