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

import "fmt"

// Info is the outcome code reported by a probe.
type Info uint32

const (
	Draw       Info = 0
	WhiteMates Info = 1
	BlackMates Info = 2
	Forbidden  Info = 3
	Unknown    Info = 7
)

// Result is the raw answer of a probe.
type Result struct {
	Found     bool
	Available bool

	Info        Info
	PliesToMate uint32 // only meaningful for decisive results
}

// Outcome is a probe Result paired with the side that was to move.
type Outcome struct {
	Result
	SideToMove Side
}

// Interpret pairs the raw result with the side to move. The result's
// fields are passed through untouched; a result which wasn't found is a
// valid Outcome whose Known method reports false.
func Interpret(raw Result, stm Side) Outcome {
	return Outcome{Result: raw, SideToMove: stm}
}

// Known reports whether the tables had an answer for the position.
func (outcome Outcome) Known() bool {
	return outcome.Found && outcome.Available
}

// IsDraw reports whether the position is a known draw.
func (outcome Outcome) IsDraw() bool {
	return outcome.Known() && outcome.Info == Draw
}

// Winner returns the side delivering mate, if the result is decisive.
func (outcome Outcome) Winner() (Side, bool) {
	if !outcome.Known() {
		return White, false
	}

	switch outcome.Info {
	case WhiteMates:
		return White, true
	case BlackMates:
		return Black, true
	default:
		return White, false
	}
}

// Mated reports whether the side to move is getting mated.
func (outcome Outcome) Mated() bool {
	winner, ok := outcome.Winner()
	return ok && winner == outcome.SideToMove.Other()
}

// MovesToMate converts the plies to mate into full moves of the winner.
func (outcome Outcome) MovesToMate() uint32 {
	return (outcome.PliesToMate + 1) / 2
}

// String returns a human readable description of the outcome.
func (outcome Outcome) String() string {
	if !outcome.Known() {
		return "Tablebase info not available"
	}

	if outcome.IsDraw() {
		return "Draw"
	}

	winner, ok := outcome.Winner()
	if !ok {
		return fmt.Sprintf("Unknown result (info=%d)", outcome.Info)
	}

	if outcome.Mated() {
		return fmt.Sprintf("%s is mated, plies=%d", outcome.SideToMove, outcome.PliesToMate)
	}

	return fmt.Sprintf("%s mates, plies=%d", winner, outcome.PliesToMate)
}
