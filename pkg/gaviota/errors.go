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
	"fmt"
)

var (
	// ErrMalformedFEN is wrapped by every MalformedFenError.
	ErrMalformedFEN = errors.New("malformed fen")

	// ErrCastlingNotSupported is returned when a position with castling
	// rights is turned into a probe request. The tables don't contain
	// castling positions and the probe code doesn't check for them.
	ErrCastlingNotSupported = errors.New("the gaviota tablebases do not include castling")

	// ErrTooManyPieces is returned when a side has more pieces than the
	// fixed size piece lists can hold.
	ErrTooManyPieces = errors.New("too many pieces")

	// ErrInvalidSquare is returned for a piece placed outside the board.
	ErrInvalidSquare = errors.New("square off the board")
)

// MalformedFenError is returned when a FEN string can't be interpreted.
type MalformedFenError struct {
	FEN    string
	Reason string

	err error
}

func (err *MalformedFenError) Error() string {
	return fmt.Sprintf("%s: %q", err.Reason, err.FEN)
}

// Unwrap makes errors.Is find ErrMalformedFEN, and ErrTooManyPieces when
// that is the reason of the error.
func (err *MalformedFenError) Unwrap() []error {
	if err.err != nil {
		return []error{ErrMalformedFEN, err.err}
	}

	return []error{ErrMalformedFEN}
}
