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

package types

import (
	"fmt"
	"strings"
)

// MoveType distinguishes the four kinds of moves a Move can encode.
type MoveType uint32

// Constants for move type
const (
	Normal    MoveType = 0
	Promotion MoveType = 1
	EnPassant MoveType = 2
	Castling  MoveType = 3
)

// String returns a readable name for the move type
func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "Normal"
	case Promotion:
		return "Promotion"
	case EnPassant:
		return "EnPassant"
	case Castling:
		return "Castling"
	default:
		return "None"
	}
}

// Move encodes a chess move in a single 32 bit word:
//
//	bits  0- 5: to square
//	bits  6-11: from square
//	bits 12-13: promotion piece type (Knight, Bishop, Rook, Queen)
//	bits 14-16: move type
type Move uint32

// MoveNone represents the absence of a move
const MoveNone = Move(0)

const (
	toShift   = 0
	fromShift = 6
	promShift = 12
	typeShift = 14
)

func promoTypeToBits(pt PieceType) uint32 {
	switch pt {
	case Knight:
		return 0
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0
	}
}

func bitsToPromoType(bits uint32) PieceType {
	switch bits {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	case 3:
		return Queen
	default:
		return PtNone
	}
}

// CreateMove creates a move from the given squares, move type and (for
// promotions) the promotion piece type.
func CreateMove(from, to Square, mt MoveType, promType PieceType) Move {
	m := uint32(to)<<toShift | uint32(from)<<fromShift | uint32(mt)<<typeShift
	if mt == Promotion {
		m |= promoTypeToBits(promType) << promShift
	}
	return Move(m)
}

// From returns the from square of the move
func (m Move) From() Square {
	return Square((uint32(m) >> fromShift) & 0x3F)
}

// To returns the to square of the move
func (m Move) To() Square {
	return Square((uint32(m) >> toShift) & 0x3F)
}

// MoveType returns the move type
func (m Move) MoveType() MoveType {
	return MoveType((uint32(m) >> typeShift) & 0x7)
}

// PromotionType returns the promotion piece type or PtNone if this move
// is not a promotion
func (m Move) PromotionType() PieceType {
	if m.MoveType() != Promotion {
		return PtNone
	}
	return bitsToPromoType((uint32(m) >> promShift) & 0x3)
}

// IsValid checks that the move has distinct, valid from/to squares
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// Str returns the move in long algebraic notation, e.g. "e2e4" or
// "a7a8Q" for a promotion
func (m Move) Str() string {
	if !m.IsValid() {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().Char()
	}
	return s
}

// StringUci returns the move in the format expected/produced by the UCI
// protocol, e.g. "e2e4" or "a7a8q"
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// String returns a human readable representation including the move type
func (m Move) String() string {
	if !m.IsValid() {
		return "NOMOVE"
	}
	return m.Str() + " (" + m.MoveType().String() + ")"
}

// StrBits returns a string with the binary representation of the move -
// useful for debugging the encoding itself.
func (m Move) StrBits() string {
	return fmt.Sprintf("%032b", uint32(m))
}

