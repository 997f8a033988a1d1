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

import "unsafe"

// Value is a compact tagged runtime value. The variant set is closed;
// every consumer switches exhaustively over GetTag().
type Value struct {
	tag  uint16
	num  int64      // tagInt value, tagRational numerator, tagBool 0/1
	den  int64      // tagRational denominator (reduced, always > 0)
	text string     // tagSymbol / tagString payload
	pair *Pair      // tagPair cell
	proc *Procedure // tagProc closure
}

// Type tags. Custom tags are not supported; the variant set is closed.
const (
	tagVoid = iota
	tagInt
	tagRational
	tagBool
	tagSymbol
	tagString
	tagNull
	tagPair
	tagProc
	tagTerminate
)

// Pair is a mutable cons cell. Cells may form cycles; traversals that must
// terminate (list?, rendering) carry their own cycle detection.
type Pair struct {
	Car Value
	Cdr Value
}

// Procedure is a closure: fixed parameter names, an optional trailing rest
// parameter, a body expression and the captured environment handle.
type Procedure struct {
	Params   []string
	Variadic bool
	Body     *Expr
	En       *Env
}

//
// Constructors
//

func NewVoid() Value { return Value{tag: tagVoid} }

func NewInt(n int64) Value { return Value{tag: tagInt, num: n} }

// NewRational reduces num/den and keeps the denominator positive. A result
// with denominator 1 collapses to an Integer. Denominator zero is not
// constructible and fails with DivisionByZero.
func NewRational(num, den int64) Value {
	if den == 0 {
		throw(ErrDivisionByZero, "rational with zero denominator")
	}
	g := gcd(num, den)
	num /= g
	den /= g
	if den < 0 {
		num = -num
		den = -den
	}
	if den == 1 {
		return NewInt(num)
	}
	return Value{tag: tagRational, num: num, den: den}
}

func NewBool(b bool) Value {
	if b {
		return Value{tag: tagBool, num: 1}
	}
	return Value{tag: tagBool}
}

func NewSymbol(s string) Value { return Value{tag: tagSymbol, text: s} }

func NewString(s string) Value { return Value{tag: tagString, text: s} }

func NewNull() Value { return Value{tag: tagNull} }

func NewPair(car, cdr Value) Value {
	return Value{tag: tagPair, pair: &Pair{Car: car, Cdr: cdr}}
}

func NewProc(p *Procedure) Value { return Value{tag: tagProc, proc: p} }

func NewTerminate() Value { return Value{tag: tagTerminate} }

//
// Accessors
//

func (v Value) GetTag() uint16 { return v.tag }

func (v Value) IsVoid() bool      { return v.tag == tagVoid }
func (v Value) IsInt() bool       { return v.tag == tagInt }
func (v Value) IsRational() bool  { return v.tag == tagRational }
func (v Value) IsBool() bool      { return v.tag == tagBool }
func (v Value) IsSymbol() bool    { return v.tag == tagSymbol }
func (v Value) IsString() bool    { return v.tag == tagString }
func (v Value) IsNull() bool      { return v.tag == tagNull }
func (v Value) IsPair() bool      { return v.tag == tagPair }
func (v Value) IsProc() bool      { return v.tag == tagProc }
func (v Value) IsTerminate() bool { return v.tag == tagTerminate }

func (v Value) Int() int64 {
	if v.tag != tagInt {
		panic("not int")
	}
	return v.num
}

// Rational returns numerator and denominator. Integers answer n/1 so the
// numeric tower can promote without a copy.
func (v Value) Rational() (int64, int64) {
	switch v.tag {
	case tagInt:
		return v.num, 1
	case tagRational:
		return v.num, v.den
	}
	panic("not a number")
}

func (v Value) IsNumber() bool { return v.tag == tagInt || v.tag == tagRational }

func (v Value) Bool() bool {
	if v.tag != tagBool {
		panic("not bool")
	}
	return v.num != 0
}

// Truthy implements condition semantics: everything except #f is true.
func (v Value) Truthy() bool {
	return !(v.tag == tagBool && v.num == 0)
}

func (v Value) Text() string {
	if v.tag != tagSymbol && v.tag != tagString {
		panic("not symbol or string")
	}
	return v.text
}

func (v Value) Pair() *Pair {
	if v.tag != tagPair {
		panic("not pair")
	}
	return v.pair
}

func (v Value) Proc() *Procedure {
	if v.tag != tagProc {
		panic("not proc")
	}
	return v.proc
}

// Eq compares like eq?: numbers, booleans and symbols by value, Null/Void by
// kind, everything else by reference identity.
func Eq(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		an, ad := a.Rational()
		bn, bd := b.Rational()
		return an == bn && ad == bd
	}
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case tagBool:
		return a.num == b.num
	case tagSymbol:
		return a.text == b.text
	case tagNull, tagVoid:
		return true
	case tagPair:
		return a.pair == b.pair
	case tagProc:
		return a.proc == b.proc
	case tagString:
		// strings compare by identity of their backing store, not content
		if len(a.text) == 0 && len(b.text) == 0 {
			return true
		}
		return len(a.text) == len(b.text) && unsafe.StringData(a.text) == unsafe.StringData(b.text)
	default:
		return true
	}
}

// IsList walks with two pointers at rates 1 and 2. When they meet on the
// same cell the chain is cyclic; otherwise it is a list iff it ends in Null.
func IsList(v Value) bool {
	tortoise, hare := v, v
	for {
		if hare.IsNull() {
			return true
		}
		if !hare.IsPair() {
			return false
		}
		hare = hare.pair.Cdr
		if hare.IsNull() {
			return true
		}
		if !hare.IsPair() {
			return false
		}
		hare = hare.pair.Cdr
		tortoise = tortoise.pair.Cdr
		if hare.IsPair() && tortoise.IsPair() && hare.pair == tortoise.pair {
			return false
		}
	}
}
