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

// Package attacks determines which squares attack a given square on a
// position, independent of whose turn it is to move.
package attacks

import (
	"github.com/frankkopp/chesspos/internal/position"
	. "github.com/frankkopp/chesspos/internal/types"
)

// AttacksTo returns a Bitboard of all pieces of color that attack square on p.
// It uses a reverse approach: attack patterns for each piece type are
// generated as if they originated from square, then intersected with the
// piece bitboards of color, which is equivalent to asking "does a piece of
// this type on this square reach the target" in both directions. Used to
// answer whether a square is attacked (e.g. the king's square, or the
// destination of a move being legality-checked) without generating moves.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	// prepare en passant attacks
	epAttacks := BbZero
	enPassantSquare := p.GetEnPassantSquare()
	if enPassantSquare != SqNone && enPassantSquare == square {
		pawnSquare := enPassantSquare.To(color.Flip().MoveDirection())
		epAttacker := pawnSquare.NeighbourFilesMask() & pawnSquare.RankOf().Bb() & p.PiecesBb(color, Pawn)
		if epAttacker != BbZero {
			epAttacks |= pawnSquare.Bb()
		}
	}

	occupiedAll := p.OccupiedAll()

	// this uses a reverse approach - it uses the target square as from square
	// to generate attacks for each type and then intersects the result with
	// the piece bitboard.

	//      Pawns
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		// Knight
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		// King
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		// Sliding rooks and queens
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen))) |
		// consider en passant attacks
		epAttacks
}

// IsAttacked reports whether any piece of color attacks square on p.
func IsAttacked(p *position.Position, square Square, color Color) bool {
	return AttacksTo(p, square, color) != BbZero
}
