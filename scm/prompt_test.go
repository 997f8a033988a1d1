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
	"strings"
	"testing"
)

func TestEvalAll(t *testing.T) {
	en := EmptyEnv()
	result, err := EvalAll("test", "(define x 2) (define y 3) (* x y)", en)
	if err != nil {
		t.Fatal(err)
	}
	if result.Int() != 6 {
		t.Errorf("expected 6, got %s", String(result))
	}
	// the environment carries over to the next source
	result, err = EvalAll("test", "(+ x y)", en)
	if err != nil || result.Int() != 5 {
		t.Errorf("expected 5, got %s (%v)", String(result), err)
	}
}

func TestEvalAllReportsOrigin(t *testing.T) {
	_, err := EvalAll("boom.scm", "(car 1)", EmptyEnv())
	if err == nil || !strings.HasPrefix(err.Error(), "boom.scm: ") {
		t.Errorf("errors should carry their origin, got %v", err)
	}
	_, err = EvalAll("boom.scm", "(foo", EmptyEnv())
	if err == nil || !strings.Contains(err.Error(), "unexpected end of input") {
		t.Errorf("truncated input should be reported, got %v", err)
	}
}

func TestEvalAllStopsAtTerminate(t *testing.T) {
	en := EmptyEnv()
	result, err := EvalAll("test", "(define x 1) (exit) (set! x 2)", en)
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsTerminate() {
		t.Fatal("exit should stop evaluation")
	}
	if v, _ := en.Find("x"); v.Int() != 1 {
		t.Error("forms after exit must not run")
	}
}

func TestEchoHeuristics(t *testing.T) {
	old := Output
	defer func() { Output = old }()
	Output = &strings.Builder{}

	en := EmptyEnv()
	check := func(src string, want bool) {
		t.Helper()
		stxs := ReadAll(src)
		expr, err := Analyze(stxs[0], en)
		if err != nil {
			t.Fatalf("analyze %q: %v", src, err)
		}
		result, err := Evaluate(expr, en)
		if err != nil {
			t.Fatalf("evaluate %q: %v", src, err)
		}
		if got := shouldEcho(expr, result); got != want {
			t.Errorf("%q: expected echo=%v, got %v", src, want, got)
		}
	}
	check("(+ 1 2)", true)
	check("(void)", true)                  // explicit void prints
	check("(define x 1)", false)           // implicit void stays silent
	check("(display 5)", false)            // output already happened
	check("(begin 1 (display 5))", false)
	check("(begin 1 (void))", true)
	check("(if #t (void) 1)", true)
	check("'(1 2)", true)
}
