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
	"strconv"
	"strings"
)

// ListN is the capacity of a piece list: MaxPieces plus the terminator.
const ListN = MaxPieces + 1

// Request holds the arguments of a single tablebase probe. The square and
// kind lists are parallel and terminated by NoSquare and NoPiece; all the
// squares are in probe-order.
type Request struct {
	SideToMove Side
	EnPassant  Square
	Castling   CastlingRights

	Squares [SideN][ListN]Square
	Kinds   [SideN][ListN]PieceKind
}

// NewRequest converts the given position into a probe request. Positions
// with castling rights are rejected since the tables don't cover them.
func NewRequest(pos *Position) (*Request, error) {
	if pos.Castling != NoCastling {
		return nil, ErrCastlingNotSupported
	}

	req := &Request{
		SideToMove: pos.SideToMove,
		Castling:   NoCastling,

		// The en passant target is already a1-first.
		EnPassant: pos.EnPassant,
	}

	for side := White; side <= Black; side++ {
		pieces := pos.Pieces(side)
		if len(pieces) > MaxPieces {
			return nil, ErrTooManyPieces
		}

		for i, piece := range pieces {
			if piece.Square >= SquareN {
				return nil, ErrInvalidSquare
			}

			req.Squares[side][i] = ProbeOrder(piece.Square)
			req.Kinds[side][i] = piece.Kind
		}

		req.Squares[side][len(pieces)] = NoSquare
		req.Kinds[side][len(pieces)] = NoPiece
	}

	return req, nil
}

// Len returns the number of pieces in the given side's list.
func (req *Request) Len(side Side) int {
	for i, sq := range req.Squares[side] {
		if sq == NoSquare {
			return i
		}
	}

	return ListN
}

// FEN renders the request as a FEN string with zeroed move counters.
func (req *Request) FEN() string {
	var board [SquareN]byte // probe-order
	for side := White; side <= Black; side++ {
		for i := 0; i < req.Len(side); i++ {
			sq := req.Squares[side][i]
			if sq >= SquareN {
				continue
			}

			char := req.Kinds[side][i].String()[0]
			if side == Black {
				char += 'a' - 'A'
			}

			board[sq] = char
		}
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			char := board[rank*8+file]
			if char == 0 {
				empty++
				continue
			}

			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(char)
		}

		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := " w "
	if req.SideToMove == Black {
		side = " b "
	}

	sb.WriteString(side)
	sb.WriteString(req.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(req.EnPassant.String())
	sb.WriteString(" 0 1")

	return sb.String()
}
