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

import "fmt"

// Two-phase error taxonomy. An AnalysisError aborts the current top-level
// form before any evaluation; a RuntimeError aborts its evaluation. Both are
// recoverable per form: the driving loop continues with the next one.

type ErrKind int

const (
	ErrUnboundVariable ErrKind = iota
	ErrTypeError
	ErrDivisionByZero
	ErrArityMismatch
	ErrNotAProcedure
	ErrNegativeExponent
	ErrIntegerOverflow
	ErrMalformedDatum
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnboundVariable:
		return "unbound variable"
	case ErrTypeError:
		return "type error"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrNotAProcedure:
		return "not a procedure"
	case ErrNegativeExponent:
		return "negative exponent"
	case ErrIntegerOverflow:
		return "integer overflow"
	case ErrMalformedDatum:
		return "malformed datum"
	}
	return "runtime error"
}

type RuntimeError struct {
	Kind ErrKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Kind.String() + ": " + e.Msg
}

type AnalysisError struct {
	Msg string
}

func (e *AnalysisError) Error() string {
	return "analysis error: " + e.Msg
}

// throw aborts the current form. Exported entry points recover it into an
// error return; internal code unwinds like the rest of the interpreter.
func throw(kind ErrKind, format string, a ...any) {
	panic(&RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, a...)})
}

func throwAnalysis(format string, a ...any) {
	panic(&AnalysisError{Msg: fmt.Sprintf(format, a...)})
}
