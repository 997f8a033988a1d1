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

/*
 Evaluation: Expr -> Value
*/

// Evaluate runs one analyzed top-level form. A RuntimeError aborts only this
// form; the caller may continue with the next one.
func Evaluate(e *Expr, en *Env) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				result, err = Value{}, re
				return
			}
			panic(r)
		}
	}()
	return eval(e, en), nil
}

func eval(e *Expr, en *Env) Value {
	switch e.kind {
	case eFixnum:
		return NewInt(e.num)
	case eRational:
		return NewRational(e.num, e.den)
	case eString:
		return NewString(e.text)
	case eBool:
		return NewBool(e.b)
	case eVar:
		if v, ok := en.Find(e.text); ok {
			return v
		}
		if def, ok := declarations[e.text]; ok {
			// primitives become first-class lazily, per reference
			return NewProc(&Procedure{
				Variadic: true,
				Body:     &Expr{kind: ePrimVariadic, op: def.Op, text: def.Name},
			})
		}
		throw(ErrUnboundVariable, "%s", e.text)
	case eQuote:
		return datumToValue(e.datum)
	case ePrimUnary:
		return applyPrim1(e.op, eval(e.sub[0], en))
	case ePrimBinary:
		return applyPrim2(e.op, eval(e.sub[0], en), eval(e.sub[1], en))
	case ePrimVariadic:
		args := make([]Value, len(e.sub))
		for i, sub := range e.sub {
			args[i] = eval(sub, en)
		}
		return applyPrimN(e.op, args)
	case eApply:
		f := eval(e.sub[0], en)
		args := make([]Value, len(e.sub)-1)
		for i, sub := range e.sub[1:] {
			args[i] = eval(sub, en)
		}
		if !f.IsProc() {
			throw(ErrNotAProcedure, "%s", String(f))
		}
		return apply(f.Proc(), args)
	case eLambda:
		return NewProc(&Procedure{Params: e.names, Variadic: e.variadic, Body: e.body, En: en})
	case eDefine:
		// placeholder first, so a failing initializer leaves the name
		// bound to Void rather than half-defined
		en.Define(e.text, NewVoid())
		v := eval(e.sub[0], en)
		en.Modify(e.text, v)
		return NewVoid()
	case eSet:
		v := eval(e.sub[0], en)
		if !en.Modify(e.text, v) {
			throw(ErrUnboundVariable, "set! of %s", e.text)
		}
		return NewVoid()
	case eLet:
		// initializers run against the outer scope
		inner := en
		for i, name := range e.names {
			inner = inner.Extend(name, eval(e.sub[i], en))
		}
		return eval(e.body, inner)
	case eLetrec:
		inner := &Env{scope: en.scope}
		for _, name := range e.names {
			inner.Define(name, NewVoid())
		}
		for i, name := range e.names {
			inner.Modify(name, eval(e.sub[i], inner))
		}
		return eval(e.body, inner)
	case eBegin:
		return evalBegin(e.sub, en)
	case eIf:
		if eval(e.sub[0], en).Truthy() {
			return eval(e.sub[1], en)
		}
		return eval(e.sub[2], en)
	case eCond:
		for _, clause := range e.clauses {
			test := clause[0]
			if test.kind == eVar && test.text == "else" {
				return evalSequence(clause[1:], en)
			}
			v := eval(test, en)
			if v.Truthy() {
				if len(clause) == 1 {
					return v
				}
				return evalSequence(clause[1:], en)
			}
		}
		return NewVoid()
	case eAnd:
		result := NewBool(true)
		for _, sub := range e.sub {
			result = eval(sub, en)
			if !result.Truthy() {
				return NewBool(false)
			}
		}
		return result
	case eOr:
		for _, sub := range e.sub {
			v := eval(sub, en)
			if v.Truthy() {
				return v
			}
		}
		return NewBool(false)
	}
	panic("unknown expression kind")
}

// evalBegin opens an internal scope: a leading run of defines is pre-bound to
// placeholders so the definitions may refer to each other, letrec-style.
func evalBegin(sub []*Expr, en *Env) Value {
	if len(sub) == 0 {
		return NewVoid()
	}
	leading := 0
	for leading < len(sub) && sub[leading].kind == eDefine {
		leading++
	}
	if leading == 0 {
		return evalSequence(sub, en)
	}
	inner := &Env{scope: en.scope}
	for _, d := range sub[:leading] {
		inner.Define(d.text, NewVoid())
	}
	for _, d := range sub[:leading] {
		inner.Modify(d.text, eval(d.sub[0], inner))
	}
	if leading == len(sub) {
		return NewVoid()
	}
	return evalSequence(sub[leading:], inner)
}

func evalSequence(sub []*Expr, en *Env) Value {
	var result Value = NewVoid()
	for _, e := range sub {
		result = eval(e, en)
	}
	return result
}

// apply binds arguments and runs the body in a scope chained onto the
// closure's captured environment. A variadic procedure takes its fixed
// parameters positionally and collects the rest into a fresh list bound to
// the final parameter.
func apply(proc *Procedure, args []Value) Value {
	if proc.En == nil {
		// first-class primitive wrapper
		return applyPrimProc(proc.Body, args)
	}
	// a fresh handle, so body defines stay local to this call
	env := &Env{scope: proc.En.scope}
	if proc.Variadic {
		fixed := len(proc.Params) - 1
		if len(args) < fixed {
			throw(ErrArityMismatch, "expected at least %d arguments, got %d", fixed, len(args))
		}
		for i := 0; i < fixed; i++ {
			env = env.Extend(proc.Params[i], args[i])
		}
		env = env.Extend(proc.Params[fixed], listOf(args[fixed:]))
	} else {
		if len(args) != len(proc.Params) {
			throw(ErrArityMismatch, "expected %d arguments, got %d", len(proc.Params), len(args))
		}
		for i, p := range proc.Params {
			env = env.Extend(p, args[i])
		}
	}
	return eval(proc.Body, env)
}

func applyPrimProc(body *Expr, args []Value) Value {
	def := declarations[body.text]
	if len(args) < def.MinParameter {
		throw(ErrArityMismatch, "%s expects at least %d arguments, got %d", def.Name, def.MinParameter, len(args))
	}
	if def.MaxParameter >= 0 && len(args) > def.MaxParameter {
		throw(ErrArityMismatch, "%s expects at most %d arguments, got %d", def.Name, def.MaxParameter, len(args))
	}
	return applyPrimN(body.op, args)
}

// datumToValue reconstructs a quoted datum as runtime data. A literal dot at
// the second-to-last position of a list with exactly one trailing element
// builds an improper pair chain; any other dot is malformed.
func datumToValue(stx Syntax) Value {
	switch stx.kind {
	case synNumber:
		return NewInt(stx.num)
	case synRational:
		return NewRational(stx.num, stx.den)
	case synString:
		return NewString(stx.text)
	case synBool:
		return NewBool(stx.b)
	case synSymbol:
		if stx.text == "." {
			throw(ErrMalformedDatum, "misplaced . in quoted datum")
		}
		return NewSymbol(stx.text)
	case synList:
		items := stx.list
		tail := NewNull()
		end := len(items)
		for i, item := range items {
			if item.IsSymbol() && item.SymbolName() == "." {
				if i == 0 || i != len(items)-2 {
					throw(ErrMalformedDatum, "misplaced . in quoted datum")
				}
				tail = datumToValue(items[len(items)-1])
				end = i
				break
			}
		}
		result := tail
		for i := end - 1; i >= 0; i-- {
			result = NewPair(datumToValue(items[i]), result)
		}
		return result
	}
	panic("unknown syntax kind")
}

//
// Primitive dispatch. The unary and binary entry points exist as a dispatch
// shortcut; applyPrimN routes to them so all arities compute alike.
//

func applyPrim1(op primOp, a Value) Value {
	switch op {
	case opCar:
		return pairCar(a)
	case opCdr:
		return pairCdr(a)
	case opIsList:
		return NewBool(IsList(a))
	case opIsBoolean:
		return NewBool(a.IsBool())
	case opIsInt:
		return NewBool(a.IsInt())
	case opIsNull:
		return NewBool(a.IsNull())
	case opIsPair:
		return NewBool(a.IsPair())
	case opIsProcedure:
		return NewBool(a.IsProc())
	case opIsSymbol:
		return NewBool(a.IsSymbol())
	case opIsString:
		return NewBool(a.IsString())
	case opNot:
		return NewBool(!a.Truthy())
	case opDisplay:
		Display(a)
		return NewVoid()
	}
	panic("unary dispatch of unknown primitive")
}

func applyPrim2(op primOp, a, b Value) Value {
	switch op {
	case opAdd:
		return numAdd(a, b)
	case opSub:
		return numSub(a, b)
	case opMul:
		return numMul(a, b)
	case opDiv:
		return numDiv(a, b)
	case opModulo:
		return numModulo(a, b)
	case opExpt:
		return numExpt(a, b)
	case opLt:
		return NewBool(numCompare(a, b, "<") < 0)
	case opLe:
		return NewBool(numCompare(a, b, "<=") <= 0)
	case opNumEq:
		return NewBool(numCompare(a, b, "=") == 0)
	case opGe:
		return NewBool(numCompare(a, b, ">=") >= 0)
	case opGt:
		return NewBool(numCompare(a, b, ">") > 0)
	case opCons:
		return NewPair(a, b)
	case opSetCar:
		return pairSetCar(a, b)
	case opSetCdr:
		return pairSetCdr(a, b)
	case opEq:
		return NewBool(Eq(a, b))
	case opList:
		return listOf([]Value{a, b})
	}
	panic("binary dispatch of unknown primitive")
}

func applyPrimN(op primOp, args []Value) Value {
	switch op {
	case opAdd:
		result := NewInt(0)
		for _, arg := range args {
			result = numAdd(result, arg)
		}
		return result
	case opMul:
		result := NewInt(1)
		for _, arg := range args {
			result = numMul(result, arg)
		}
		return result
	case opSub:
		if len(args) == 1 {
			return numNeg(args[0])
		}
		result := args[0]
		for _, arg := range args[1:] {
			result = numSub(result, arg)
		}
		return result
	case opDiv:
		if len(args) == 1 {
			return numRecip(args[0])
		}
		result := args[0]
		for _, arg := range args[1:] {
			result = numDiv(result, arg)
		}
		return result
	case opLt:
		return chainHolds(args, "<", func(c int) bool { return c < 0 })
	case opLe:
		return chainHolds(args, "<=", func(c int) bool { return c <= 0 })
	case opNumEq:
		return chainHolds(args, "=", func(c int) bool { return c == 0 })
	case opGe:
		return chainHolds(args, ">=", func(c int) bool { return c >= 0 })
	case opGt:
		return chainHolds(args, ">", func(c int) bool { return c > 0 })
	case opList:
		return listOf(args)
	case opVoid:
		return NewVoid()
	case opExit:
		return NewTerminate()
	}
	switch len(args) {
	case 1:
		return applyPrim1(op, args[0])
	case 2:
		return applyPrim2(op, args[0], args[1])
	}
	panic("variadic dispatch of unknown primitive")
}
