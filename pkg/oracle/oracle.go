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

// Package oracle implements a gaviota.Prober which needs no tables. It
// answers the positions that chess rules alone decide: checkmate,
// stalemate and insufficient material. Everything else is reported as
// not available.
package oracle

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/formats/fen"

	"laptudirm.com/x/tbprobe/pkg/gaviota"
)

// Oracle is stateless and safe for concurrent use.
type Oracle struct{}

var _ gaviota.Prober = Oracle{}

func New() Oracle {
	return Oracle{}
}

func (Oracle) Init(paths []string) string {
	if len(paths) > 0 {
		logrus.Debugf("oracle: ignoring %d tablebase paths", len(paths))
	}

	return "oracle: no tables loaded, only rule-decided positions are answered"
}

func (Oracle) Close() {}

func (Oracle) Probe(req *gaviota.Request) gaviota.Result {
	unknown := gaviota.Result{Info: gaviota.Unknown}

	// mess can't set up a board without exactly one king per side.
	for side := gaviota.White; side <= gaviota.Black; side++ {
		if kings(req, side) != 1 {
			return unknown
		}
	}

	chessboard := board.New(board.FEN(fen.FromString(req.FEN())))
	moves := chessboard.GenerateMoves(false)

	switch {
	case len(moves) == 0:
		if chessboard.IsInCheck(chessboard.SideToMove) {
			info := gaviota.WhiteMates
			if req.SideToMove == gaviota.White {
				info = gaviota.BlackMates
			}

			return gaviota.Result{Found: true, Available: true, Info: info}
		}

		// Stalemate
		return gaviota.Result{Found: true, Available: true, Info: gaviota.Draw}

	case chessboard.IsInsufficientMaterial():
		return gaviota.Result{Found: true, Available: true, Info: gaviota.Draw}
	}

	return unknown
}

func kings(req *gaviota.Request, side gaviota.Side) int {
	n := 0
	for i := 0; i < req.Len(side); i++ {
		if req.Kinds[side][i] == gaviota.King {
			n++
		}
	}

	return n
}
