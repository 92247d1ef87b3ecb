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

import (
	"strings"
)

var kindFromChar = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop,
	'r': Rook, 'q': Queen, 'k': King,
}

// FEN fields.
const (
	placementField = iota
	sideField
	castlingField
	enPassantField
)

// Parse parses the first four fields of the given FEN string. The scan is
// lenient: unknown characters in the piece placement are skipped, digits
// which would run the cursor off the board are ignored, and the halfmove
// and fullmove fields are never looked at. The only thing rejected is an
// invalid en passant field, or a side with more than MaxPieces pieces.
func Parse(fen string) (*Position, error) {
	pos := &Position{
		SideToMove: White,
		Castling:   NoCastling,
		EnPassant:  NoSquare,
	}

	var ep strings.Builder

	cursor := Square(0) // FEN-order square the next piece goes on
	placing := true     // still inside the piece placement field
	field := placementField

	for i := 0; i < len(fen); i++ {
		c := fen[i]

		if placing && cursor < SquareN {
			switch {
			case c >= '1' && c <= '8':
				if empty := Square(c - '0'); cursor < SquareN-empty {
					cursor += empty
				}

			case c == ' ':
				placing = false

			default:
				side, kind, ok := pieceFromChar(c)
				if !ok {
					// '/' and anything unknown
					break
				}

				list := &pos.White
				if side == Black {
					list = &pos.Black
				}

				if len(*list) == MaxPieces {
					return nil, &MalformedFenError{
						FEN: fen, Reason: "Too many pieces for " + side.String(), err: ErrTooManyPieces,
					}
				}

				*list = append(*list, Piece{Square: cursor, Kind: kind})
				cursor++
			}
		} else {
			switch {
			case field < castlingField && c == 'w':
				pos.SideToMove = White
			case field < castlingField && c == 'b':
				pos.SideToMove = Black

			case field == castlingField:
				switch c {
				case 'K':
					pos.Castling |= WhiteKingside
				case 'Q':
					pos.Castling |= WhiteQueenside
				case 'k':
					pos.Castling |= BlackKingside
				case 'q':
					pos.Castling |= BlackQueenside
				}

			case field == enPassantField:
				ep.WriteByte(c)
			}
		}

		if c == ' ' {
			field++
		}
	}

	var ok bool
	if pos.EnPassant, ok = parseEnPassant(strings.TrimSpace(ep.String())); !ok {
		return nil, &MalformedFenError{FEN: fen, Reason: "Invalid en passant square"}
	}

	return pos, nil
}

func pieceFromChar(c byte) (Side, PieceKind, bool) {
	if c >= 'A' && c <= 'Z' {
		kind, ok := kindFromChar[c+'a'-'A']
		return White, kind, ok
	}

	kind, ok := kindFromChar[c]
	return Black, kind, ok
}

// parseEnPassant parses the trimmed en passant field. The target is
// encoded as 16+file for rank 3 and 40+file for rank 6, which is the
// a1-first index the probe code takes.
func parseEnPassant(ep string) (Square, bool) {
	switch len(ep) {
	case 0:
		return NoSquare, true
	case 1:
		return NoSquare, ep == "-"
	case 2:
		file := ep[0]
		if file < 'a' || file > 'h' {
			return NoSquare, false
		}

		switch ep[1] {
		case '3':
			return 16 + Square(file-'a'), true
		case '6':
			return 40 + Square(file-'a'), true
		}
	}

	return NoSquare, false
}
