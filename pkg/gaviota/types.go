// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gaviota

// PieceKind is the type of a piece, encoded the way the probe code expects.
type PieceKind uint8

const (
	NoPiece PieceKind = iota // terminates piece lists
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindStrings = [...]string{"-", "P", "N", "B", "R", "Q", "K"}

// String returns the uppercase FEN letter of the piece kind.
func (kind PieceKind) String() string {
	if int(kind) >= len(kindStrings) {
		return "?"
	}

	return kindStrings[kind]
}

// Side represents a side (or color) in chess.
type Side uint8

const (
	White Side = iota
	Black
)

// SideN is the number of sides.
const SideN = 2

// String returns "White" or "Black".
func (side Side) String() string {
	if side == Black {
		return "Black"
	}

	return "White"
}

// Other returns the opposing side.
func (side Side) Other() Side {
	return side ^ 1
}

// CastlingRights is a bitset of the castling rights in a position. The bit
// values are the ones used by the probe code.
type CastlingRights uint8

const (
	NoCastling CastlingRights = 0

	WhiteKingside  CastlingRights = 8
	WhiteQueenside CastlingRights = 4
	BlackKingside  CastlingRights = 2
	BlackQueenside CastlingRights = 1

	AllCastling = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// String returns the castling field of a FEN for the rights.
func (rights CastlingRights) String() string {
	if rights == NoCastling {
		return "-"
	}

	str := ""
	for _, flag := range []struct {
		right CastlingRights
		char  string
	}{
		{WhiteKingside, "K"}, {WhiteQueenside, "Q"},
		{BlackKingside, "k"}, {BlackQueenside, "q"},
	} {
		if rights&flag.right != 0 {
			str += flag.char
		}
	}

	return str
}

// Piece is an occupied square in a position.
type Piece struct {
	// Square is FEN-order, so Square.String doesn't name it. Use
	// ProbeOrder(piece.Square).String() or Piece.String instead.
	Square Square
	Kind   PieceKind
}

// String returns the piece's letter and square, like "Ke2".
func (piece Piece) String() string {
	if piece.Square >= SquareN {
		return piece.Kind.String() + "-"
	}

	return piece.Kind.String() + ProbeOrder(piece.Square).String()
}

// MaxPieces is the maximum number of pieces a single side may have.
const MaxPieces = 16

// Position is the part of a FEN needed to probe the tablebases.
type Position struct {
	// Pieces of each side in the order they appear in the FEN.
	White []Piece
	Black []Piece

	SideToMove Side
	Castling   CastlingRights

	// EnPassant uses the a1-first index of the target square, or NoSquare.
	EnPassant Square
}

// Pieces returns the piece list of the given side.
func (pos *Position) Pieces(side Side) []Piece {
	if side == Black {
		return pos.Black
	}

	return pos.White
}
