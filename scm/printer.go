/*
Copyright (C) 2026  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package scm

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Output is where display writes. Tests redirect it.
var Output io.Writer = os.Stdout

func String(v Value) string {
	switch v.GetTag() {
	case tagVoid:
		return "#<void>"
	case tagInt:
		return strconv.FormatInt(v.Int(), 10)
	case tagRational:
		n, d := v.Rational()
		return strconv.FormatInt(n, 10) + "/" + strconv.FormatInt(d, 10)
	case tagBool:
		if v.Bool() {
			return "#t"
		}
		return "#f"
	case tagSymbol:
		return v.Text()
	case tagString:
		return strconv.Quote(v.Text())
	case tagNull:
		return "()"
	case tagPair:
		return stringPair(v, make(map[*Pair]bool))
	case tagProc:
		return "#<procedure>"
	case tagTerminate:
		return "#<terminate>"
	default:
		return fmt.Sprintf("<value %d>", v.GetTag())
	}
}

// stringPair renders a chain of cells, switching to dotted notation for an
// improper tail. Cells already rendered in this chain print as ... so a
// cyclic structure still terminates.
func stringPair(v Value, seen map[*Pair]bool) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for {
		p := v.Pair()
		if seen[p] {
			sb.WriteString("...")
			break
		}
		seen[p] = true
		sb.WriteString(stringIn(p.Car, seen))
		if p.Cdr.IsNull() {
			break
		}
		if !p.Cdr.IsPair() {
			sb.WriteString(" . ")
			sb.WriteString(stringIn(p.Cdr, seen))
			break
		}
		sb.WriteByte(' ')
		v = p.Cdr
	}
	sb.WriteByte(')')
	return sb.String()
}

func stringIn(v Value, seen map[*Pair]bool) string {
	if v.IsPair() {
		return stringPair(v, seen)
	}
	return String(v)
}

// Display writes the human-readable form: strings print their raw content,
// everything else its written form.
func Display(v Value) {
	if v.IsString() {
		fmt.Fprint(Output, v.Text())
		return
	}
	fmt.Fprint(Output, String(v))
}
