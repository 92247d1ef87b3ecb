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
	"github.com/sirupsen/logrus"
)

// Prober is a tablebase probing backend.
type Prober interface {
	// Init loads the tables found in the given directories. The returned
	// message is informational only.
	Init(paths []string) string

	// Probe looks the request's position up in the loaded tables.
	Probe(req *Request) Result

	// Close releases the loaded tables.
	Close()
}

// Probe parses the given FEN string, probes it using the given Prober,
// and interprets the result. Parse and castling errors are returned
// before the prober is touched.
func Probe(prober Prober, fen string) (Outcome, error) {
	pos, err := Parse(fen)
	if err != nil {
		return Outcome{}, err
	}

	req, err := NewRequest(pos)
	if err != nil {
		return Outcome{}, err
	}

	logrus.Tracef("probe: %s (white %d, black %d, ep %s)",
		req.FEN(), req.Len(White), req.Len(Black), req.EnPassant)

	result := prober.Probe(req)
	if !result.Found {
		logrus.Debugf("probe: no tablebase hit for %q", fen)
	}

	return Interpret(result, pos.SideToMove), nil
}
