// sudosolve - a sudoku puzzle solver and search-strategy benchmark.
// Copyright (C) 2026 the sudosolve authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

// Package report is the output side of a solver run: it prints the
// outcome to the console and writes the solution and performance
// text files.  The solver core never prints or touches the
// filesystem itself; everything it produces arrives here as a
// Result.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solverbench/sudoku/puzzle"
	"github.com/solverbench/sudoku/solver"
)

// OutputName derives the suffix shared by the output files from
// the puzzle file's name: a "puzzle" prefix is dropped, so
// puzzle1.txt produces solution1.txt and performance1.txt.
func OutputName(puzzlePath string) string {
	return strings.TrimPrefix(filepath.Base(puzzlePath), "puzzle")
}

// millis converts a duration to the fractional milliseconds the
// report lines use.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Console writes the solved board and the run's performance
// numbers to w.
func Console(w io.Writer, res solver.Result, total time.Duration) {
	fmt.Fprint(w, puzzle.FormatValues(res.Values))
	fmt.Fprintf(w, "Total clock time: %v\n", millis(total))
	fmt.Fprintf(w, "Search clock time: %v\n", millis(res.Elapsed))
	fmt.Fprintf(w, "Number of nodes generated: %d\n", res.Nodes)
}

// NoSolution writes the failure report: the explicit no-solution
// signal plus the node count, which is still meaningful for
// strategy comparison.
func NoSolution(w io.Writer, res solver.Result, total time.Duration) {
	fmt.Fprintln(w, "No solution exists.")
	fmt.Fprintf(w, "Total clock time: %v\n", millis(total))
	fmt.Fprintf(w, "Search clock time: %v\n", millis(res.Elapsed))
	fmt.Fprintf(w, "Number of nodes generated: %d\n", res.Nodes)
}

// WriteFiles persists one successful run under dir: the solution
// file holds the board in the external 9-line form, and the
// performance file holds the three stat lines.  name is the suffix
// from OutputName.
func WriteFiles(dir, name string, res solver.Result, total time.Duration) error {
	solution := filepath.Join(dir, "solution"+name)
	if err := os.WriteFile(solution, []byte(puzzle.FormatValues(res.Values)), 0644); err != nil {
		return fmt.Errorf("write solution file: %w", err)
	}
	log.Debug().Str("file", solution).Msg("wrote solution")

	performance := filepath.Join(dir, "performance"+name)
	stats := fmt.Sprintf("Total clock time: %v\nSearch clock time: %v\nNumber of nodes generated: %d\n",
		millis(total), millis(res.Elapsed), res.Nodes)
	if err := os.WriteFile(performance, []byte(stats), 0644); err != nil {
		return fmt.Errorf("write performance file: %w", err)
	}
	log.Debug().Str("file", performance).Msg("wrote performance")
	return nil
}
