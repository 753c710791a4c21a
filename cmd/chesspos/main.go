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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesspos/internal/config"
	"github.com/frankkopp/chesspos/internal/logging"
	"github.com/frankkopp/chesspos/internal/movegen"
	"github.com/frankkopp/chesspos/internal/position"
	"github.com/frankkopp/chesspos/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft on the given position for depths 1..N\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft and the move/result commands")
	moves := flag.String("moves", "", "comma separated list of moves in UCI notation to apply to -fen before reporting the result")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level - most packages hold the standard logger as a
	// global var initialized before main() runs with the default level.
	logging.GetLog()

	if *perft != 0 {
		var perftTest movegen.Perft
		for i := 1; i <= *perft; i++ {
			perftTest.StartPerft(*fen, i)
		}
		return
	}

	p, err := position.NewPositionFen(*fen)
	if err != nil {
		fmt.Println(err)
		return
	}

	mg := movegen.NewMoveGen()
	justMoved := p.NextPlayer().Flip()
	for _, uciMove := range splitMoves(*moves) {
		move := mg.ParseMoveString(p, uciMove)
		if move == types.MoveNone {
			out.Printf("invalid move: %s\n", uciMove)
			return
		}
		p.DoMove(move)
		justMoved = justMoved.Flip()
	}

	out.Println(p.String())
	out.Printf("Result: %s\n", mg.GameResult(p, justMoved))
}

func splitMoves(moves string) []string {
	moves = strings.TrimSpace(moves)
	if moves == "" {
		return nil
	}
	parts := strings.Split(moves, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printVersionInfo() {
	out.Println("chesspos chess position engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
