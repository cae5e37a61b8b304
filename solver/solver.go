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

// Package solver runs three contrasting search strategies over the
// puzzle grid model: exhaustive enumeration, constraint-checked
// backtracking, and backtracking with forward checking and the
// most-constrained-variable heuristic.
//
// The strategies share the grid interface and differ only in how
// they pick the next cell and which candidate values they try.
// Each reports a node count - the number of assignments performed -
// which is the unit used to compare them on identical inputs.
package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/solverbench/sudoku/puzzle"
)

// Strategy selector tokens.
const (
	BruteForce      = "BF"
	Backtracking    = "BT"
	ForwardChecking = "FC-MRV"
)

var (
	// ErrInvalidStrategy reports a selector token naming no known
	// strategy; it is returned before any search runs.
	ErrInvalidStrategy = errors.New("unknown strategy")

	// ErrUnsolvable reports a search space exhausted without
	// reaching a consistent complete assignment.  It is a normal
	// terminal outcome, not a crash, and the Result returned with
	// it still carries the node count accumulated so far.
	ErrUnsolvable = errors.New("no solution exists")
)

// A Result carries what a strategy produced: the final 81 values
// on success, the number of assignments performed, and the
// wall-clock duration of the search step.
type Result struct {
	Values  []int
	Nodes   int
	Elapsed time.Duration
}

// Solve runs the named strategy over an independent copy of the
// grid, so the caller's grid never observes the search's
// mutations.  Search failure surfaces as ErrUnsolvable once every
// alternative is exhausted; failures inside the search are
// expected control flow and are resolved by trying the next
// candidate, never retried.
func Solve(g *puzzle.Grid, strategy string) (Result, error) {
	var search func(*puzzle.Grid) (bool, int)
	switch strategy {
	case BruteForce:
		search = bruteForce
	case Backtracking:
		search = backtrack
	case ForwardChecking:
		search = forwardCheck
	default:
		return Result{}, fmt.Errorf("%w: %q is none of %q, %q, %q",
			ErrInvalidStrategy, strategy, BruteForce, Backtracking, ForwardChecking)
	}

	work := g.Copy()
	start := time.Now()
	solved, nodes := search(work)
	res := Result{Nodes: nodes, Elapsed: time.Since(start)}
	if !solved {
		return res, ErrUnsolvable
	}
	res.Values = work.Values()
	return res, nil
}
