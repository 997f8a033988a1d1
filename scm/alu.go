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

import "math"

/*
 Exact arithmetic on the Integer/Rational tower. Mixed operands promote the
 Integer to numerator/denominator form; every result goes back through
 NewRational, which reduces and collapses denominator 1 to an Integer.
*/

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func wantNumber(v Value, who string) (int64, int64) {
	if !v.IsNumber() {
		throw(ErrTypeError, "%s expects a number", who)
	}
	return v.Rational()
}

func numAdd(a, b Value) Value {
	an, ad := wantNumber(a, "+")
	bn, bd := wantNumber(b, "+")
	return NewRational(an*bd+bn*ad, ad*bd)
}

func numSub(a, b Value) Value {
	an, ad := wantNumber(a, "-")
	bn, bd := wantNumber(b, "-")
	return NewRational(an*bd-bn*ad, ad*bd)
}

func numNeg(a Value) Value {
	an, ad := wantNumber(a, "-")
	return NewRational(-an, ad)
}

func numMul(a, b Value) Value {
	an, ad := wantNumber(a, "*")
	bn, bd := wantNumber(b, "*")
	return NewRational(an*bn, ad*bd)
}

// numDiv relies on NewRational rejecting a zero denominator, which is
// exactly the division-by-zero case here.
func numDiv(a, b Value) Value {
	an, ad := wantNumber(a, "/")
	bn, bd := wantNumber(b, "/")
	return NewRational(an*bd, ad*bn)
}

// numRecip is (/ x) with a single operand.
func numRecip(a Value) Value {
	an, ad := wantNumber(a, "/")
	return NewRational(ad, an)
}

// numModulo is defined on Integers only, with truncated (C-style) remainder.
func numModulo(a, b Value) Value {
	if !a.IsInt() || !b.IsInt() {
		throw(ErrTypeError, "modulo is only defined for integers")
	}
	if b.Int() == 0 {
		throw(ErrDivisionByZero, "modulo by zero")
	}
	return NewInt(a.Int() % b.Int())
}

// numExpt raises an Integer base to a non-negative Integer exponent by
// squaring. Every multiply is overflow-checked so a result that leaves the
// representable range reports IntegerOverflow instead of wrapping.
func numExpt(a, b Value) Value {
	if !a.IsInt() || !b.IsInt() {
		throw(ErrTypeError, "expt is only defined for integers")
	}
	base := a.Int()
	exp := b.Int()
	if exp < 0 {
		throw(ErrNegativeExponent, "expt of %d", exp)
	}
	if base == 0 && exp == 0 {
		throw(ErrTypeError, "0^0 is undefined")
	}
	result := int64(1)
	sq := base
	for exp > 0 {
		if exp%2 == 1 {
			result = mulChecked(result, sq)
		}
		exp /= 2
		if exp > 0 {
			sq = mulChecked(sq, sq)
		}
	}
	return NewInt(result)
}

func mulChecked(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		throw(ErrIntegerOverflow, "expt result out of range")
	}
	r := a * b
	if r/b != a {
		throw(ErrIntegerOverflow, "expt result out of range")
	}
	return r
}

// numCompare orders two numbers exactly by cross-multiplying the
// numerator/denominator pairs. Denominators are always positive, so the
// cross products keep the operand order.
func numCompare(a, b Value, who string) int {
	an, ad := wantNumber(a, who)
	bn, bd := wantNumber(b, who)
	left := an * bd
	right := bn * ad
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}

// chainHolds tests an n-ary comparison chain: every adjacent pair must
// satisfy the relation. ok receives the comparison result of one pair.
func chainHolds(args []Value, who string, ok func(int) bool) Value {
	for i := 0; i+1 < len(args); i++ {
		if !ok(numCompare(args[i], args[i+1], who)) {
			return NewBool(false)
		}
	}
	return NewBool(true)
}
