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

// Package gaviota translates FEN strings into Gaviota tablebase probe
// requests and interprets the probe results.
package gaviota

// Square represents a square on the chessboard. Two orderings are in use:
// FEN-order, where 0 is a8 and squares run a8..h8, a7..h7 down to h1, and
// probe-order, where 0 is a1 and squares run a1..h1 up to h8.
type Square uint8

// NoSquare marks an empty en passant target and terminates square lists.
const NoSquare Square = 64

// SquareN is the number of squares on the board.
const SquareN = 64

var fenToProbe, probeToFEN [SquareN]Square

func init() {
	for i := Square(0); i < SquareN; i++ {
		row, col := i/8, i%8
		fenToProbe[i] = (7-row)*8 + col
		probeToFEN[fenToProbe[i]] = i
	}
}

// ProbeOrder converts a FEN-order square into a probe-order square.
func ProbeOrder(sq Square) Square {
	return fenToProbe[sq]
}

// FENOrder converts a probe-order square into a FEN-order square.
func FENOrder(sq Square) Square {
	return probeToFEN[sq]
}

// String returns the algebraic name of a probe-order square.
func (sq Square) String() string {
	if sq >= SquareN {
		return "-"
	}

	return string([]byte{'a' + byte(sq%8), '1' + byte(sq/8)})
}
