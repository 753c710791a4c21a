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

package movegen

import (
	"github.com/frankkopp/chesspos/internal/attacks"
	"github.com/frankkopp/chesspos/internal/position"
	. "github.com/frankkopp/chesspos/internal/types"
)

// IsSquareAttacked reports whether any piece of color attacks square on p.
func IsSquareAttacked(p *position.Position, square Square, color Color) bool {
	return attacks.IsAttacked(p, square, color)
}

// Result is the terminal verdict for a position on the side to move.
type Result int8

// Result values
const (
	ResultOngoing Result = iota
	ResultDraw
	ResultWhiteWins
	ResultBlackWins
)

// String returns a human readable name for the result
func (r Result) String() string {
	switch r {
	case ResultOngoing:
		return "ongoing"
	case ResultDraw:
		return "draw"
	case ResultWhiteWins:
		return "white wins"
	case ResultBlackWins:
		return "black wins"
	default:
		return "unknown"
	}
}

// fiftyMoveRulePlies is the halfmove clock threshold (in plies) above which
// the fifty move rule forces a draw, i.e. strictly more than 100 plies.
const fiftyMoveRulePlies = 100

// GameResult determines the terminal state of p on the side to move,
// checking in order the fifty move rule, threefold repetition,
// insufficient material, and finally whether any legal move exists.
// justMoved names the color that made the last move on p; it is used to
// translate a "no legal move while in check" verdict into a concrete
// winner rather than a generic loss for the side to move.
func (mg *Movegen) GameResult(p *position.Position, justMoved Color) Result {
	if p.HalfMoveClock() > fiftyMoveRulePlies {
		return ResultDraw
	}
	if p.CheckRepetitions(2) {
		return ResultDraw
	}
	if p.HasInsufficientMaterial() {
		return ResultDraw
	}
	if mg.HasLegalMove(p) {
		return ResultOngoing
	}
	if p.HasCheck() {
		if justMoved == White {
			return ResultWhiteWins
		}
		return ResultBlackWins
	}
	return ResultDraw
}
