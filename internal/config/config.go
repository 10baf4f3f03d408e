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

// Package config holds globally available configuration variables, set by
// defaults or overridden by a config.toml file.
package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the config file, relative to the working directory.
	ConfFile = "./config.toml"

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log     logConfiguration
	Movegen movegenConfiguration
}

type logConfiguration struct {
	Level     int // go-logging level for the standard logger
	TestLevel int // go-logging level for the test logger
}

type movegenConfiguration struct {
	// PerftWorkers bounds how many root-move subtrees PerftParallel may
	// evaluate concurrently (0 means "use runtime.NumCPU()").
	PerftWorkers int
	// EagerMagicInit makes cmd/perft run the magic-table self-test right
	// after Setup() returns instead of deferring it to the first attack
	// lookup, trading startup latency for a fail-fast guarantee before any
	// position is ever processed. Setup() itself does not read it.
	EagerMagicInit bool
}

func defaults() conf {
	return conf{
		Log: logConfiguration{
			Level:     4, // logging.INFO
			TestLevel: 4,
		},
		Movegen: movegenConfiguration{
			PerftWorkers:   0,
			EagerMagicInit: false,
		},
	}
}

// Setup reads the configuration file and sets Settings from it, falling
// back to defaults for anything missing or if the file cannot be read.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults (", err, ")")
		}
	}
	initialized = true
}

// String renders the Movegen section of the configuration using reflection,
// matching the debug-dump convention used elsewhere in this codebase. The
// Log section is not included.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Movegen Config:\n")
	v := reflect.ValueOf(&c.Movegen).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		sb.WriteString(fmt.Sprintf("%-2d: %-16s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	return sb.String()
}
