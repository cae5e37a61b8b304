package solver

import (
	"github.com/solverbench/sudoku/puzzle"
)

// forwardCheck solves like backtrack but lets the maintained
// domains steer the search.  Cell selection takes the blank with
// the smallest candidate domain (most-constrained-variable
// heuristic, ties broken in row-major order), and only domain
// members are tried, since assignment-time pruning has already
// removed the peer conflicts.  A selection that comes back empty
// while blanks remain means every blank is out of candidates: the
// branch is cut off before any value is tried.
//
// When several cells tie for the smallest domain, only the first
// is branched on; exhausting its candidates fails the branch
// rather than moving on to the next tied cell.
func forwardCheck(g *puzzle.Grid) (bool, int) {
	nodes := 0
	var recurse func() bool
	recurse = func() bool {
		if g.IsComplete() {
			return true
		}
		mrv := g.SmallestDomainCells()
		if len(mrv) == 0 {
			return false
		}
		c := mrv[0]
		for _, v := range g.DomainOf(c) {
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
