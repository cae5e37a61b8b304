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

// Command sudosolve solves one 9x9 puzzle file with a chosen
// search strategy and reports how hard the search worked.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/solverbench/sudoku/puzzle"
	"github.com/solverbench/sudoku/report"
	"github.com/solverbench/sudoku/solver"
)

func main() {
	start := time.Now()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := newRootCommand(start).Execute(); err != nil {
		log.Error().Err(err).Msg("run aborted")
		os.Exit(1)
	}
}

func newRootCommand(start time.Time) *cobra.Command {
	var (
		outDir  string
		cpuProf bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "sudosolve <puzzle-file> <strategy>",
		Short: "Solve a 9x9 puzzle and compare search strategies",
		Long: `sudosolve reads a puzzle file (nine lines of nine digits, 0 for a
blank cell), solves it with the chosen strategy, and reports the
solution together with the node count and clock times of the search.

The strategy is one of:

  BF      exhaustive enumeration, blind to constraints
  BT      constraint-checked backtracking
  FC-MRV  backtracking with forward checking and the
          most-constrained-variable heuristic

On success the solution and performance stats are also written to
solution<name> and performance<name> files, where <name> is the
puzzle file's name with any "puzzle" prefix dropped.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if cpuProf {
				defer profile.Start(profile.ProfilePath(outDir)).Stop()
			}
			return run(args[0], args[1], outDir, start)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the solution and performance files")
	cmd.Flags().BoolVar(&cpuProf, "profile", false, "write a CPU profile of the run")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the run's progress")
	return cmd
}

func run(path, strategy, outDir string, start time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open puzzle file: %w", err)
	}
	g, err := puzzle.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("malformed puzzle %s: %w", path, err)
	}
	log.Debug().
		Str("strategy", strategy).
		Int("blanks", len(g.UnassignedCells())).
		Msg("starting search")

	res, err := solver.Solve(g, strategy)
	total := time.Since(start)
	if errors.Is(err, solver.ErrUnsolvable) {
		report.NoSolution(os.Stdout, res, total)
		return err
	}
	if err != nil {
		return err
	}

	report.Console(os.Stdout, res, total)
	if err := report.WriteFiles(outDir, report.OutputName(path), res, total); err != nil {
		return err
	}
	return nil
}
