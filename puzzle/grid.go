// Package puzzle models a 9x9 constraint board.
//
// A Grid holds the assigned value of every cell (0 meaning blank),
// the set of candidate values still legal for each blank cell, and
// the fixed cells given in the input.  The peer relation - cells
// sharing a row, column, or 3x3 block - is static and shared by all
// grids.  Candidate domains are maintained incrementally: assigning
// a value removes it from the domains of the assigned cell's peers,
// and reverting the assignment puts back exactly what was removed.
//
// The search strategies in the solver package are built entirely on
// this interface; they differ only in which cell they pick next and
// which candidate values they try.
package puzzle

/*

Grids

*/

// A Grid is the aggregate of all 81 cells.  Assigned cells have a
// value of 1..9 and an empty domain; blank cells have a value of 0
// and a domain consistent with their currently assigned peers.
type Grid struct {
	values  [CellCount]int
	domains [CellCount]intset
	fixed   [CellCount]bool
}

// New creates a Grid from 81 initial values in row-major order, 0
// meaning a blank cell.  Inputs that are not exactly 81 values of
// 0..9, or whose given values already conflict, are rejected;
// propagating over an inconsistent given would silently produce
// nonsensical domains.
func New(values []int) (*Grid, error) {
	if len(values) != CellCount {
		return nil, Error{CellCountAttribute, WrongCountCondition,
			ErrorData{CellCount, len(values)}}
	}
	g := &Grid{}
	for i, v := range values {
		if v < 0 || v > SideLen {
			return nil, Error{CellValueAttribute, OutOfRangeCondition,
				ErrorData{CellAt(i), SideLen, v}}
		}
		g.values[i] = v
		g.fixed[i] = v != 0
	}
	for i, v := range g.values {
		if v == 0 {
			continue
		}
		for _, p := range peerTable[i] {
			if p > i && g.values[p] == v {
				return nil, Error{GivenAttribute, ConflictCondition,
					ErrorData{CellAt(i), CellAt(p), v}}
			}
		}
	}
	for i := range g.values {
		if g.values[i] != 0 {
			continue
		}
		d := newIntsetRange(SideLen)
		for _, p := range peerTable[i] {
			if v := g.values[p]; v != 0 {
				d.remove(v)
			}
		}
		g.domains[i] = d
	}
	return g, nil
}

// Value returns the value held by a cell, 0 when blank.
func (g *Grid) Value(c Cell) int {
	return g.values[c.index()]
}

// Fixed reports whether the cell's value was given in the input.
func (g *Grid) Fixed(c Cell) bool {
	return g.fixed[c.index()]
}

// Values returns all 81 cell values in row-major order.  The
// result does not share storage with the grid.
func (g *Grid) Values() []int {
	vs := make([]int, CellCount)
	copy(vs, g.values[:])
	return vs
}

// Assign gives value v to a blank cell: the cell's domain is
// emptied and v is pruned from every peer domain containing it.
// The returned Undo names exactly the mutations performed.
//
// Assign does not verify that v is a member of the cell's domain;
// callers that rely on propagation for dead-end detection must
// consult DomainOf before assigning.
func (g *Grid) Assign(c Cell, v int) Undo {
	i := c.index()
	u := Undo{cell: i, value: v, domain: g.domains[i]}
	g.values[i] = v
	g.domains[i] = nil
	for _, p := range peerTable[i] {
		if g.domains[p].remove(v) {
			u.pruned = append(u.pruned, p)
		}
	}
	return u
}

// Revert undoes one Assign, restoring the parent state exactly:
// the pruned peer domains regain the value, and the cell regains
// its saved domain and becomes blank again.
func (g *Grid) Revert(u Undo) {
	for k := len(u.pruned) - 1; k >= 0; k-- {
		g.domains[u.pruned[k]].insert(u.value)
	}
	g.domains[u.cell] = u.domain
	g.values[u.cell] = 0
}

// Place writes a value with no domain maintenance at all.  It
// exists for the exhaustive strategy, which enumerates blind to
// constraints; the other strategies must use Assign.
func (g *Grid) Place(c Cell, v int) {
	g.values[c.index()] = v
}

// IsComplete reports whether every cell holds a value.
func (g *Grid) IsComplete() bool {
	for _, v := range g.values {
		if v == 0 {
			return false
		}
	}
	return true
}

// IsConsistent reports whether no two peers hold equal nonzero
// values.  This is the board-wide constraint check used by the
// strategies that do not keep domains current.
func (g *Grid) IsConsistent() bool {
	for i, v := range g.values {
		if v == 0 {
			continue
		}
		for _, p := range peerTable[i] {
			if p > i && g.values[p] == v {
				return false
			}
		}
	}
	return true
}

// LegalValue reports whether assigning v to the cell would leave
// the grid consistent: no assigned peer already holds v.
func (g *Grid) LegalValue(c Cell, v int) bool {
	for _, p := range peerTable[c.index()] {
		if g.values[p] == v {
			return false
		}
	}
	return true
}

// DomainOf returns the candidate values still legal for a cell,
// ascending; the result is empty for assigned cells.  It does not
// share storage with the grid, so callers may iterate it across
// intervening assignments.
func (g *Grid) DomainOf(c Cell) []int {
	return newIntsetCopy(g.domains[c.index()])
}

// UnassignedCells returns the blank cells in row-major order.
// The order matters: it is the selection order for backtracking
// search and the enumeration order for exhaustive search.
func (g *Grid) UnassignedCells() []Cell {
	var cells []Cell
	for i, v := range g.values {
		if v == 0 {
			cells = append(cells, CellAt(i))
		}
	}
	return cells
}

// FirstUnassigned returns the first blank cell in row-major order,
// reporting false when the grid is complete.
func (g *Grid) FirstUnassigned() (Cell, bool) {
	for i, v := range g.values {
		if v == 0 {
			return CellAt(i), true
		}
	}
	return Cell{}, false
}

// SmallestDomainCells returns the blank cells whose domains are
// non-empty and of minimum size, in row-major order.  The result
// is empty when every blank cell has an empty domain, which tells
// the caller the position is a dead end without trying a value.
func (g *Grid) SmallestDomainCells() []Cell {
	best := SideLen + 1
	var cells []Cell
	for i, v := range g.values {
		if v != 0 {
			continue
		}
		n := len(g.domains[i])
		if n == 0 || n > best {
			continue
		}
		if n < best {
			best = n
			cells = cells[:0]
		}
		cells = append(cells, CellAt(i))
	}
	return cells
}

// Copy returns an independent working copy of the grid; mutations
// of one are never visible in the other.
func (g *Grid) Copy() *Grid {
	c := &Grid{values: g.values, fixed: g.fixed}
	for i := range g.domains {
		c.domains[i] = newIntsetCopy(g.domains[i])
	}
	return c
}

/*

Undo records

*/

// An Undo records the exact mutations of one Assign: the assigned
// cell, the domain it gave up, and the peers whose domains lost
// the assigned value.  Applying it through Revert restores the
// parent state without duplicating the whole grid at every search
// node.
type Undo struct {
	cell   int
	value  int
	domain intset
	pruned []int
}

/*

Integer sets

*/

// An intset is a small set of integers, represented as a sorted
// slice.  Intsets hold both candidate values and board indices.
type intset []int

// newIntsetRange: make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
