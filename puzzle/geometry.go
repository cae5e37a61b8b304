package puzzle

/*

Board geometry

The board is the classic 9x9 grid: nine rows, nine columns, and
nine non-overlapping 3x3 blocks.  Two distinct cells are peers
when they share a row, a column, or a block, and a solved board
holds unequal values in every peer pair.

*/

import (
	"fmt"
)

const (
	// SideLen is the number of cells on each side of the board,
	// and also the largest assignable value.
	SideLen = 9

	// BlockLen is the side length of the 3x3 blocks.
	BlockLen = 3

	// CellCount is the total number of cells on the board.
	CellCount = SideLen * SideLen
)

// A Cell identifies one board position by 1-based row and column.
// Cells are lookup keys only; they are never mutated.
type Cell struct {
	Row int
	Col int
}

// CellAt returns the cell at the given 0-based board index,
// counting left-to-right, top-to-bottom (English reading order).
func CellAt(index int) Cell {
	return Cell{Row: index/SideLen + 1, Col: index%SideLen + 1}
}

// index is the inverse of CellAt.
func (c Cell) index() int {
	return (c.Row-1)*SideLen + (c.Col - 1)
}

// String renders the row-letter/column-digit label, A1 through I9.
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'A'+c.Row-1, c.Col)
}

// block numbers the 3x3 blocks 0..8 left-to-right, top-to-bottom.
func block(row, col int) int {
	return (row-1)/BlockLen*BlockLen + (col-1)/BlockLen
}

// peerTable is the static peer relation, computed once and shared
// by every Grid: for each board index, the indices of the 20 cells
// sharing its row, column, or block.  The relation is symmetric
// and never changes.
var peerTable = computePeerTable()

func computePeerTable() [CellCount]intset {
	var table [CellCount]intset
	for i := 0; i < CellCount; i++ {
		ri, ci := i/SideLen+1, i%SideLen+1
		ps := make(intset, 0, 20)
		for j := 0; j < CellCount; j++ {
			if j == i {
				continue
			}
			rj, cj := j/SideLen+1, j%SideLen+1
			if rj == ri || cj == ci || block(rj, cj) == block(ri, ci) {
				ps = append(ps, j)
			}
		}
		table[i] = ps
	}
	return table
}
