/*
Copyright (C) 2026  Carl-Philip Hänsch

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

// Pair and list primitives. Cells are freely mutable through set-car! and
// set-cdr!, so any traversal here must cope with cycles.

func wantPair(v Value, who string) *Pair {
	if !v.IsPair() {
		throw(ErrTypeError, "%s expects a pair", who)
	}
	return v.Pair()
}

func pairCar(v Value) Value { return wantPair(v, "car").Car }

func pairCdr(v Value) Value { return wantPair(v, "cdr").Cdr }

func pairSetCar(v, x Value) Value {
	wantPair(v, "set-car!").Car = x
	return NewVoid()
}

func pairSetCdr(v, x Value) Value {
	wantPair(v, "set-cdr!").Cdr = x
	return NewVoid()
}

// listOf builds a fresh proper list by folding from the right.
func listOf(items []Value) Value {
	result := NewNull()
	for i := len(items) - 1; i >= 0; i-- {
		result = NewPair(items[i], result)
	}
	return result
}
