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

import (
	"bytes"
	"testing"
)

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
		{NewRational(1, 3), "1/3"},
		{NewRational(-2, 6), "-1/3"},
		{NewBool(true), "#t"},
		{NewBool(false), "#f"},
		{NewVoid(), "#<void>"},
		{NewNull(), "()"},
		{NewSymbol("foo"), "foo"},
		{NewString("bar"), `"bar"`},
		{NewPair(NewInt(1), NewInt(2)), "(1 . 2)"},
		{listOf([]Value{NewInt(1), NewInt(2), NewInt(3)}), "(1 2 3)"},
		{NewPair(NewInt(1), NewPair(NewInt(2), NewInt(3))), "(1 2 . 3)"},
		{NewProc(&Procedure{}), "#<procedure>"},
	}
	for _, c := range cases {
		if got := String(c.v); got != c.want {
			t.Errorf("expected %s, got %s", c.want, got)
		}
	}
}

func TestStringCyclicStructures(t *testing.T) {
	p := NewPair(NewInt(1), NewInt(2))
	p.Pair().Cdr = p
	if got := String(p); got != "(1 ...)" {
		t.Errorf("cdr cycle should terminate, got %s", got)
	}
	q := NewPair(NewInt(1), NewNull())
	q.Pair().Car = q
	if got := String(q); got != "((...))" {
		t.Errorf("car cycle should terminate, got %s", got)
	}
}

func TestDisplay(t *testing.T) {
	old := Output
	defer func() { Output = old }()
	var buf bytes.Buffer
	Output = &buf

	Display(NewString("hi there"))
	if buf.String() != "hi there" {
		t.Errorf("display should print strings raw, got %q", buf.String())
	}
	buf.Reset()
	Display(listOf([]Value{NewInt(1), NewRational(1, 2)}))
	if buf.String() != "(1 1/2)" {
		t.Errorf("display should print the written form of data, got %q", buf.String())
	}
}

func TestDisplayThroughEval(t *testing.T) {
	old := Output
	defer func() { Output = old }()
	var buf bytes.Buffer
	Output = &buf

	result := run(t, `(display "x=") (display 3/2)`)
	if buf.String() != "x=3/2" {
		t.Errorf("expected x=3/2 on the output sink, got %q", buf.String())
	}
	if !result.IsVoid() {
		t.Error("display should evaluate to void")
	}
}
