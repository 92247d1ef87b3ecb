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
	"errors"
	"testing"
)

func mustRequest(t *testing.T, fen string) *Request {
	t.Helper()

	pos, err := Parse(fen)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", fen, err)
	}

	req, err := NewRequest(pos)
	if err != nil {
		t.Fatalf("NewRequest(%q) error: %v", fen, err)
	}

	return req
}

func TestNewRequestRejectsCastling(t *testing.T) {
	for _, field := range []string{"K", "Q", "k", "q", "KQ", "KQkq"} {
		fen := "r3k2r/8/8/8/8/8/8/R3K2R w " + field + " - 0 1"
		pos, err := Parse(fen)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", fen, err)
		}

		if _, err := NewRequest(pos); !errors.Is(err, ErrCastlingNotSupported) {
			t.Errorf("NewRequest(%q) error = %v, want ErrCastlingNotSupported", fen, err)
		}
	}

	fen := "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1"
	if req := mustRequest(t, fen); req.Castling != NoCastling {
		t.Errorf("NewRequest(%q).Castling = %v, want none", fen, req.Castling)
	}
}

func TestNewRequestStartingPosition(t *testing.T) {
	pos, err := Parse(startFEN)
	if err != nil {
		t.Fatalf("Parse(startFEN) error: %v", err)
	}

	if _, err := NewRequest(pos); !errors.Is(err, ErrCastlingNotSupported) {
		t.Fatalf("NewRequest(startFEN) error = %v, want ErrCastlingNotSupported", err)
	}

	req := mustRequest(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")

	want := map[PieceKind]int{
		Pawn: 8, Knight: 2, Bishop: 2, Rook: 2, Queen: 1, King: 1,
	}

	for side := White; side <= Black; side++ {
		if n := req.Len(side); n != 16 {
			t.Errorf("%v list has %d entries, want 16", side, n)
		}

		if req.Squares[side][16] != NoSquare || req.Kinds[side][16] != NoPiece {
			t.Errorf("%v list not terminated at 16", side)
		}

		count := make(map[PieceKind]int)
		for i := 0; i < 16; i++ {
			count[req.Kinds[side][i]]++
		}

		for kind, n := range want {
			if count[kind] != n {
				t.Errorf("%v has %d of %v, want %d", side, count[kind], kind, n)
			}
		}
	}

	// a2 pawn is white's first piece, a1 rook its ninth
	if req.Squares[White][0] != 8 || req.Kinds[White][0] != Pawn {
		t.Errorf("white[0] = %s %v, want a2 pawn", req.Squares[White][0], req.Kinds[White][0])
	}
	if req.Squares[White][8] != 0 || req.Kinds[White][8] != Rook {
		t.Errorf("white[8] = %s %v, want a1 rook", req.Squares[White][8], req.Kinds[White][8])
	}
	if req.Squares[Black][0] != 56 || req.Kinds[Black][0] != Rook {
		t.Errorf("black[0] = %s %v, want a8 rook", req.Squares[Black][0], req.Kinds[Black][0])
	}
}

func TestNewRequestLoneKings(t *testing.T) {
	req := mustRequest(t, kingsFEN)

	if req.SideToMove != White {
		t.Errorf("SideToMove = %v, want White", req.SideToMove)
	}

	if req.EnPassant != NoSquare {
		t.Errorf("EnPassant = %d, want NoSquare", req.EnPassant)
	}

	tests := []struct {
		side Side
		sq   string
	}{
		{White, "e2"},
		{Black, "e1"},
	}

	for _, tc := range tests {
		if got := req.Squares[tc.side][0].String(); got != tc.sq {
			t.Errorf("%v king on %s, want %s", tc.side, got, tc.sq)
		}

		if req.Kinds[tc.side][0] != King {
			t.Errorf("%v kind[0] = %v, want King", tc.side, req.Kinds[tc.side][0])
		}

		if req.Squares[tc.side][1] != NoSquare || req.Kinds[tc.side][1] != NoPiece {
			t.Errorf("%v list not terminated at 1", tc.side)
		}

		if n := req.Len(tc.side); n != 1 {
			t.Errorf("%v list has %d entries, want 1", tc.side, n)
		}
	}
}

func TestNewRequestEnPassant(t *testing.T) {
	req := mustRequest(t, "8/8/8/8/4P3/8/8/4K2k b - e3 0 1")

	if req.EnPassant != 20 || req.EnPassant.String() != "e3" {
		t.Errorf("EnPassant = %d (%s), want 20 (e3)", req.EnPassant, req.EnPassant)
	}

	if req.SideToMove != Black {
		t.Errorf("SideToMove = %v, want Black", req.SideToMove)
	}
}

func TestNewRequestTooManyPieces(t *testing.T) {
	pos := &Position{EnPassant: NoSquare}
	for sq := Square(0); sq <= MaxPieces; sq++ {
		pos.Black = append(pos.Black, Piece{Square: sq, Kind: Pawn})
	}

	if _, err := NewRequest(pos); !errors.Is(err, ErrTooManyPieces) {
		t.Errorf("NewRequest error = %v, want ErrTooManyPieces", err)
	}
}

func TestRequestFEN(t *testing.T) {
	fens := []string{
		kingsFEN,
		"8/8/8/8/4P3/8/8/4K2k b - e3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		if got := mustRequest(t, fen).FEN(); got != fen {
			t.Errorf("NewRequest(%q).FEN() = %q", fen, got)
		}
	}
}

func TestNewRequestSquareOffBoard(t *testing.T) {
	pos := &Position{
		White:     []Piece{{Square: 52, Kind: King}},
		Black:     []Piece{{Square: SquareN, Kind: King}},
		EnPassant: NoSquare,
	}

	if _, err := NewRequest(pos); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("NewRequest error = %v, want ErrInvalidSquare", err)
	}
}
