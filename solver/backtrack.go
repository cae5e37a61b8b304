package solver

import (
	"github.com/solverbench/sudoku/puzzle"
)

// backtrack solves by depth-first search: take the first blank
// cell in row-major order, try the values 1..9 ascending, recurse,
// and undo on dead ends.  A value is tried only if no assigned
// peer already holds it, so every assignment keeps the grid
// consistent and a completed grid is a solution.  All nine digits
// are candidates at every cell; the maintained domains are pruned
// by Assign but never consulted here.
//
// Each performed assignment costs one node; values rejected by the
// peer check cost none.
func backtrack(g *puzzle.Grid) (bool, int) {
	nodes := 0
	var recurse func() bool
	recurse = func() bool {
		c, ok := g.FirstUnassigned()
		if !ok {
			return true
		}
		for v := 1; v <= puzzle.SideLen; v++ {
			if !g.LegalValue(c, v) {
				continue
			}
			u := g.Assign(c, v)
			nodes++
			if recurse() {
				return true
			}
			g.Revert(u)
		}
		return false
	}
	return recurse(), nodes
}
