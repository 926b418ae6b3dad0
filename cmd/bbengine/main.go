//
// Bitboard-Chess-Engine - a bitboard/magic-bitboard move generation core
//
// MIT License
//
// Copyright (c) 2020-2026 Bitboard-Chess-Engine contributors
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

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veelow92/Bitboard-Chess-Engine/internal/attacks"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/config"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/logging"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/perft"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/position"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/types"
	"github.com/Veelow92/Bitboard-Chess-Engine/internal/uci"
)

var out = message.NewPrinter(language.English)

const version = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (critical|error|warning|info|debug)")
	perftDepth := flag.Int("perft", 0, "run perft on the given FEN (or the starting position) to this depth and exit")
	perftDivide := flag.Bool("divide", false, "with -perft, print per-root-move subtree counts instead of a summary")
	fen := flag.String("fen", position.StartFen, "fen to use with -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile while running -perft")
	flag.Parse()

	if *versionInfo {
		out.Printf("Bitboard-Chess-Engine %s\n", version)
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		logging.SetLevel(*logLvl)
	} else {
		logging.SetLevel(config.Settings.Log.Level)
	}
	log := logging.GetLog()

	types.SetCapacity(config.Settings.Perft.MoveListCapacity)
	attacks.SetSearchBudget(config.Settings.Magics.SearchBudget)
	attacks.SetUseTunedSeeds(config.Settings.Magics.Precomputed)
	attacks.Recompute()

	if *perftDepth > 0 {
		if *cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		pos, err := position.NewFromFEN(*fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -fen: %v\n", err)
			os.Exit(1)
		}
		if *perftDivide {
			perft.Divide(pos, *perftDepth)
		} else {
			perft.RunAndReport(pos, *perftDepth)
		}
		return
	}

	log.Info("Bitboard-Chess-Engine starting UCI loop")
	uci.NewHandler(os.Stdin, os.Stdout).Loop()
}
