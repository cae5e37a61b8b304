package solver

import (
	"github.com/solverbench/sudoku/puzzle"
)

// bruteForce enumerates digit combinations over the blank cells in
// row-major order, ignoring constraints until a full assignment
// happens to satisfy them.  The blanks form a base-9 odometer:
// every blank starts at 1, each step increments the last cell, and
// a cell passing 9 resets to 1 and carries into the cell before
// it.  The enumeration is exhausted when the carry propagates past
// the first cell.
//
// Every initial fill and every odometer step costs one node.  The
// cost is combinatorial in the number of blanks; the strategy
// exists as a baseline for comparison, not as a practical solver.
func bruteForce(g *puzzle.Grid) (bool, int) {
	blanks := g.UnassignedCells()
	nodes := 0
	for _, c := range blanks {
		g.Place(c, 1)
		nodes++
	}
	for !g.IsConsistent() {
		i := len(blanks) - 1
		for i >= 0 && g.Value(blanks[i]) == puzzle.SideLen {
			g.Place(blanks[i], 1)
			i--
		}
		if i < 0 {
			return false, nodes
		}
		g.Place(blanks[i], g.Value(blanks[i])+1)
		nodes++
	}
	return true, nodes
}
