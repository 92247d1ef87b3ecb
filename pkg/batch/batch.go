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

// Package batch probes lists of positions concurrently.
package batch

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tbprobe/pkg/gaviota"
)

// Entry is the probe outcome of a single Line.
type Entry struct {
	Line

	Outcome gaviota.Outcome
	Err     error
}

// String returns a one line description of the entry.
func (entry Entry) String() string {
	if entry.Err != nil {
		return fmt.Sprintf("%4d: \x1b[31merror\x1b[0m %v", entry.Number, entry.Err)
	}

	return fmt.Sprintf("%4d: %s", entry.Number, entry.Outcome)
}

// Run probes every line with the given prober using the given number of
// worker goroutines. The returned entries are in the order of the lines.
// The prober must be safe for concurrent use if workers > 1.
func Run(prober gaviota.Prober, lines []Line, workers int) []Entry {
	if workers < 1 {
		workers = 1
	}

	entries := make([]Entry, len(lines))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				entries[job] = probe(prober, lines[job])
			}
		}()
	}

	for job := range lines {
		jobs <- job
	}

	close(jobs)
	wg.Wait()

	return entries
}

func probe(prober gaviota.Prober, line Line) Entry {
	outcome, err := gaviota.Probe(prober, line.FEN)
	if err != nil {
		logrus.Debugf("batch: line %d: %v", line.Number, err)
	}

	return Entry{Line: line, Outcome: outcome, Err: err}
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Wins, Losses, Draws int // from the side to move's perspective
	Unknown, Errors     int
}

// Summarize tallies the given entries.
func Summarize(entries []Entry) Summary {
	var summary Summary
	for _, entry := range entries {
		switch {
		case entry.Err != nil:
			summary.Errors++
		case !entry.Outcome.Known():
			summary.Unknown++
		case entry.Outcome.IsDraw():
			summary.Draws++
		case entry.Outcome.Mated():
			summary.Losses++
		default:
			if _, decisive := entry.Outcome.Winner(); decisive {
				summary.Wins++
			} else {
				summary.Unknown++
			}
		}
	}

	return summary
}

// Total returns the number of entries in the summary.
func (summary Summary) Total() int {
	return summary.Wins + summary.Losses + summary.Draws + summary.Unknown + summary.Errors
}

// Report writes the summary as a table.
func (summary Summary) Report(w io.Writer) {
	fmt.Fprintln(w, "╔════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║   Wins Loss Draw   Unknown Errors   Total  ║")
	fmt.Fprintln(w, "╠════════════════════════════════════════════╣")
	fmt.Fprintf(w, "║   %4d %4d %4d   %7d %6d   %5d  ║\n",
		summary.Wins, summary.Losses, summary.Draws,
		summary.Unknown, summary.Errors, summary.Total())
	fmt.Fprintln(w, "╚════════════════════════════════════════════╝")
}
