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

// Package movegen generates pseudo legal and legal moves for a chess
// position and answers move-string and terminal-state queries that need
// a move list to decide.
package movegen

import (
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/chesspos/internal/logging"
	"github.com/frankkopp/chesspos/internal/moveslice"
	"github.com/frankkopp/chesspos/internal/position"
	. "github.com/frankkopp/chesspos/internal/types"
)

var log *logging.Logger

// Movegen data structure. Create new move generator via
//  movegen.NewMoveGen()
// Creating this directly will not work.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// GenMode generation modes - which subset of moves to generate
type GenMode int

// GenMode generation modes
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
	}
}

// GeneratePseudoLegalMoves generates pseudo legal moves for the next player.
// Does not check if the king is left in check or if it passes an attacked
// square when castling or has been in check before castling - that filter
// is applied by GenerateLegalMoves via position.IsLegalMove.
//
// Castling moves are pushed first, before all other moves.
// Promotions are always pushed in the order queen, rook, bishop, knight.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode, hasCheck bool) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	if mode&GenNonCap != 0 {
		mg.generateCastling(p, GenNonCap, mg.pseudoLegalMoves)
	}
	if mode&GenCap != 0 {
		mg.generatePawnMoves(p, GenCap, mg.pseudoLegalMoves)
		mg.generateCastling(p, GenCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(p, GenCap, mg.pseudoLegalMoves)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(p, GenNonCap, mg.pseudoLegalMoves)
	}
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates legal moves for the next player.
// Uses GeneratePseudoLegalMoves and filters out illegal moves.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(p, mode, p.HasCheck())
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return p.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// HasLegalMove determines if we have at least one legal move. We only have
// to find one legal move. We search KING, PAWN, KNIGHT, BISHOP, ROOK, QUEEN
// moves in turn and return immediately once one is found.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {

	nextPlayer := p.NextPlayer()
	nextPlayerBb := p.OccupiedBb(nextPlayer)

	// KING
	// We do not need to check castling as possible castling implies King or Rook moves
	kingSquare := p.KingSquare(nextPlayer)
	tmpMoves := GetPseudoAttacks(King, kingSquare) &^ nextPlayerBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		if p.IsLegalMove(CreateMove(kingSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	myPawns := p.PiecesBb(nextPlayer, Pawn)
	opponentBb := p.OccupiedBb(nextPlayer.Flip())

	// PAWN captures
	for _, dir := range []Direction{West, East} {
		tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & opponentBb
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
			if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
				return true
			}
		}
	}

	occupiedBb := p.OccupiedAll()

	// pawn pushes - single step is sufficient to prove a legal move exists
	tmpMoves = ShiftBitboard(myPawns, nextPlayer.MoveDirection()) &^ occupiedBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
		if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	// OFFICERS
	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetPseudoAttacks(pt, fromSquare) &^ nextPlayerBb
			for moves != 0 {
				toSquare := moves.PopLsb()
				if pt > Knight { // sliding pieces
					if Intermediate(fromSquare, toSquare)&occupiedBb == 0 {
						if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
							return true
						}
					}
				} else { // knight cannot be blocked
					if p.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
						return true
					}
				}
			}
		}
	}

	// en passant captures
	enPassantSquare := p.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		for _, dir := range []Direction{West, East} {
			tmpMoves = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+dir) & myPawns
			if tmpMoves != 0 {
				fromSquare := tmpMoves.PopLsb()
				toSquare := fromSquare.To(nextPlayer.MoveDirection() - dir)
				if p.IsLegalMove(CreateMove(fromSquare, toSquare, EnPassant, PtNone)) {
					return true
				}
			}
		}
	}

	// no move found
	return false
}

// Regex for long algebraic move strings, e.g. "e2e4" or "a7a8q"
var regexUciMove = regexp.MustCompile("^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$")

// ParseMoveString generates all legal moves for the position and matches
// the given long algebraic move string against them, returning the first
// match or MoveNone if the string does not denote a legal move.
func (mg *Movegen) ParseMoveString(p *position.Position, moveStr string) Move {
	matches := regexUciMove.FindStringSubmatch(moveStr)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		promotionPart = strings.ToLower(matches[2])
	}
	mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}

// ValidateMove validates if a move is a legal move on the given position
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *ml {
		if move == m {
			return true
		}
	}
	return false
}

// //////////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////////

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	myPawns := p.PiecesBb(nextPlayer, Pawn)
	oppPieces := p.OccupiedBb(nextPlayer.Flip())

	// captures
	if mode&GenCap != 0 {
		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			tmpCaptures = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & oppPieces
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			// promotion captures - order Queen, Rook, Bishop, Knight
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				pushPromotions(ml, fromSquare, toSquare)
			}
			// non promotion pawn captures
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
			}
		}

		// en passant captures
		enPassantSquare := p.GetEnPassantSquare()
		if enPassantSquare != SqNone {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := fromSquare.To(nextPlayer.MoveDirection() - dir)
					ml.PushBack(CreateMove(fromSquare, toSquare, EnPassant, PtNone))
				}
			}
		}
	}

	// non captures
	if mode&GenNonCap != 0 {
		// pawns - check step one to unoccupied squares
		tmpMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()) & ^p.OccupiedAll()
		// pawns double - check step two to unoccupied squares
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), nextPlayer.MoveDirection()) & ^p.OccupiedAll()

		// single pawn steps - promotions first, order Queen, Rook, Bishop, Knight
		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			pushPromotions(ml, fromSquare, toSquare)
		}
		// double pawn steps
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()).
				To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
		// normal single pawn steps
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
}

// pushPromotions appends the four promotion moves for a from/to pair in
// the required tie-break order: queen, rook, bishop, knight.
func pushPromotions(ml *moveslice.MoveSlice, from, to Square) {
	ml.PushBack(CreateMove(from, to, Promotion, Queen))
	ml.PushBack(CreateMove(from, to, Promotion, Rook))
	ml.PushBack(CreateMove(from, to, Promotion, Bishop))
	ml.PushBack(CreateMove(from, to, Promotion, Knight))
}

func (mg *Movegen) generateCastling(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	occupiedBB := p.OccupiedAll()

	// pseudo castling - legality (not in check, not crossing an attacked
	// square) is checked later by position.IsLegalMove
	if mode&GenNonCap != 0 && p.CastlingRights() != CastlingNone {
		cr := p.CastlingRights()
		if nextPlayer == White {
			if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupiedBB == 0 {
				ml.PushBack(CreateMove(SqE1, SqG1, Castling, PtNone))
			}
			if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupiedBB == 0 {
				ml.PushBack(CreateMove(SqE1, SqC1, Castling, PtNone))
			}
		} else {
			if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupiedBB == 0 {
				ml.PushBack(CreateMove(SqE8, SqG8, Castling, PtNone))
			}
			if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupiedBB == 0 {
				ml.PushBack(CreateMove(SqE8, SqC8, Castling, PtNone))
			}
		}
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	kingSquareBb := p.PiecesBb(nextPlayer, King)
	fromSquare := kingSquareBb.PopLsb()

	pseudoMoves := GetPseudoAttacks(King, fromSquare)

	if mode&GenCap != 0 {
		captures := pseudoMoves & p.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
	}

	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ p.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
		}
	}
}

// generateOfficerMoves generates knight, bishop, rook and queen moves using
// the pre-computed magic bitboard attack tables.
func (mg *Movegen) generateOfficerMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := p.NextPlayer()
	occupiedBb := p.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(nextPlayer, pt)

		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb)

			if mode&GenCap != 0 {
				captures := moves & p.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
				}
			}

			if mode&GenNonCap != 0 {
				nonCaptures := moves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					ml.PushBack(CreateMove(fromSquare, toSquare, Normal, PtNone))
				}
			}
		}
	}
}
