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

import "testing"

func analyzeErr(t *testing.T, src string) {
	t.Helper()
	en := EmptyEnv()
	for _, stx := range ReadAll(src) {
		if _, err := Analyze(stx, en); err != nil {
			if _, ok := err.(*AnalysisError); !ok {
				t.Fatalf("%q: expected AnalysisError, got %T", src, err)
			}
			return
		}
	}
	t.Fatalf("%q: expected an analysis error, got none", src)
}

func analyzeOK(t *testing.T, src string) *Expr {
	t.Helper()
	en := EmptyEnv()
	stxs := ReadAll(src)
	expr, err := Analyze(stxs[len(stxs)-1], en)
	if err != nil {
		t.Fatalf("%q should analyze: %v", src, err)
	}
	return expr
}

func TestSpecialFormArity(t *testing.T) {
	analyzeErr(t, "(if 1 2)")
	analyzeErr(t, "(if 1 2 3 4)")
	analyzeErr(t, "(quote)")
	analyzeErr(t, "(quote 1 2)")
	analyzeErr(t, "(lambda (x))")
	analyzeErr(t, "(define x)")
	analyzeErr(t, "(define x 1 2)")
	analyzeErr(t, "(set! x)")
	analyzeErr(t, "(set! 1 2)")
	analyzeErr(t, "(let ((x 1)))")
	analyzeErr(t, "(letrec x 1)")
}

func TestMalformedBindings(t *testing.T) {
	analyzeErr(t, "(let ((x)) x)")
	analyzeErr(t, "(let ((x 1 2)) x)")
	analyzeErr(t, "(let ((1 2)) 3)")
	analyzeErr(t, "(lambda (1) 1)")
	analyzeErr(t, "(lambda x x)")
	analyzeErr(t, "(cond ())")
	analyzeErr(t, "(cond 1)")
	analyzeErr(t, "(cond (else))")
	analyzeOK(t, "(cond)")
	analyzeOK(t, "(cond (else 1))")
}

func TestRestMarkerPlacement(t *testing.T) {
	analyzeErr(t, "(lambda (. x) x)")
	analyzeErr(t, "(lambda (a . b c) a)")
	analyzeErr(t, "(lambda (...) 1)")
	analyzeErr(t, "(lambda (a ... b) a)")
	analyzeOK(t, "(lambda (a . b) a)")
	analyzeOK(t, "(lambda (a b ...) a)")
}

func TestDefineCollisions(t *testing.T) {
	analyzeErr(t, "(define if 1)")
	analyzeErr(t, "(define car 1)")
	analyzeErr(t, "(define (lambda x) x)")
	analyzeOK(t, "(define carphone 1)")
}

func TestPrimitiveArityAtAnalysis(t *testing.T) {
	analyzeErr(t, "(car)")
	analyzeErr(t, "(car 1 2)")
	analyzeErr(t, "(cons 1)")
	analyzeErr(t, "(modulo 1)")
	analyzeErr(t, "(< 1)")
	analyzeErr(t, "(-)")
	analyzeOK(t, "(+)")
	analyzeOK(t, "(list)")
}

func TestPrimitiveSpecialization(t *testing.T) {
	if analyzeOK(t, "(car '(1))").kind != ePrimUnary {
		t.Error("car should specialize to the unary node")
	}
	if analyzeOK(t, "(+ 1 2)").kind != ePrimBinary {
		t.Error("two-operand + should specialize to the binary node")
	}
	if analyzeOK(t, "(+ 1 2 3)").kind != ePrimVariadic {
		t.Error("three-operand + should stay variadic")
	}
	if analyzeOK(t, "(cons 1 2)").kind != ePrimBinary {
		t.Error("cons should specialize to the binary node")
	}
}

func TestShadowedHeadsDeferToApplication(t *testing.T) {
	// a bound head is a generic application even for keyword/primitive names
	en := EmptyEnv().Extend("car", NewInt(1))
	stxs := ReadAll("(car 1 2 3)")
	expr, err := Analyze(stxs[0], en)
	if err != nil {
		t.Fatalf("shadowed car must not be arity-checked as a primitive: %v", err)
	}
	if expr.kind != eApply {
		t.Error("shadowed car should analyze as a generic application")
	}
}

func TestUnknownHeadsAreDeferred(t *testing.T) {
	if analyzeOK(t, "(frobnicate 1 2)").kind != eApply {
		t.Error("unknown heads defer to a generic application")
	}
}

func TestFunctionShorthandDesugars(t *testing.T) {
	expr := analyzeOK(t, "(define (f a b) (+ a b))")
	if expr.kind != eDefine || expr.text != "f" {
		t.Fatal("shorthand should produce a define node")
	}
	lambda := expr.sub[0]
	if lambda.kind != eLambda || len(lambda.names) != 2 || lambda.variadic {
		t.Error("shorthand should produce the equivalent lambda")
	}
}
