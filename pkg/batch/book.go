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

package batch

import (
	"os"
	"strings"
)

// Line is a single FEN read from a position file.
type Line struct {
	Number int // 1-based line number in the file
	FEN    string
}

// ReadFile reads the positions in the given file, one FEN per line. Empty
// lines and lines starting with '#' are skipped.
func ReadFile(name string) ([]Line, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return ReadString(string(file)), nil
}

// ReadString reads positions from a string in the same format as ReadFile.
func ReadString(data string) []Line {
	var lines []Line
	for i, entry := range strings.Split(data, "\n") {
		entry = strings.Trim(entry, "\n\r\t ")
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		lines = append(lines, Line{Number: i + 1, FEN: entry})
	}

	return lines
}
