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

Errors

An Error reports why a board could not be constructed.  It is
structured rather than free-form: an attribute naming the thing
that was wrong, a condition naming the test it failed, and the
values needed to describe the failure.

*/

import (
	"fmt"
)

// An ErrorAttribute names the part of the input that had a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	CellCountAttribute
	CellValueAttribute
	GivenAttribute
	TokenAttribute
	MaxAttribute
)

// An ErrorCondition is the predicate the attribute failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	WrongCountCondition
	OutOfRangeCondition
	ConflictCondition
	NotADigitCondition
	MaxCondition
)

// ErrorData supplies the details of the failure, in the order the
// message for the attribute and condition consumes them.
type ErrorData []interface{}

// An Error combines an attribute, a condition, and the data
// describing how the condition was violated.
type Error struct {
	Attribute ErrorAttribute
	Condition ErrorCondition
	Values    ErrorData
}

// Error produces an English message from the structured parts.
func (e Error) Error() string {
	values := e.Values
	next := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Attribute {
	case CellCountAttribute:
		es = "Cell count"
	case CellValueAttribute:
		es = fmt.Sprintf("Value of cell %v", next())
	case GivenAttribute:
		es = fmt.Sprintf("Given cells %v and %v", next(), next())
	case TokenAttribute:
		es = fmt.Sprintf("Token %q", next())
	default:
		es = "<unknown attribute>"
	}
	es += ": "
	switch e.Condition {
	case WrongCountCondition:
		es += fmt.Sprintf("must be exactly %v values, got %v", next(), next())
	case OutOfRangeCondition:
		es += fmt.Sprintf("must be 0 through %v, got %v", next(), next())
	case ConflictCondition:
		es += fmt.Sprintf("are peers but share the value %v", next())
	case NotADigitCondition:
		es += "is not a digit"
	default:
		es += fmt.Sprintf("supplemental data is %v", values)
	}
	return es
}
