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

package puzzle

/*

Reading and writing boards

The external form of a board is nine whitespace-separated lines of
nine digits, 0 for a blank cell.  Parsing and formatting round-trip:
formatting a grid and parsing the result reproduces the same values.

*/

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a board in the external form and constructs a Grid
// from it.  Inputs that do not hold exactly 81 digit tokens of
// 0..9 are rejected as malformed.
func Parse(r io.Reader) (*Grid, error) {
	values := make([]int, 0, CellCount)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, Error{TokenAttribute, NotADigitCondition,
				ErrorData{scanner.Text()}}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(values)
}

// FormatValues renders 81 row-major values in the external form.
// The reporting side uses it to write solution files.
func FormatValues(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i%SideLen != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
		if i%SideLen == SideLen-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the grid in the external form.
func (g *Grid) String() string {
	return FormatValues(g.Values())
}

// Pretty returns a boxed view of the grid for debugging, blanks
// shown as underscores.
func (g *Grid) Pretty() string {
	var b strings.Builder
	for r := 0; r < SideLen; r++ {
		if r%BlockLen == 0 {
			b.WriteString("+-------+-------+-------+\n")
		}
		for c := 0; c < SideLen; c++ {
			if c%BlockLen == 0 {
				b.WriteString("| ")
			}
			if v := g.values[r*SideLen+c]; v == 0 {
				b.WriteString("_ ")
			} else {
				fmt.Fprintf(&b, "%d ", v)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+-------+-------+-------+\n")
	return b.String()
}
