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

/*
 Analysis: Syntax -> Expr

 Head symbols resolve in shadow-precedence order: environment binding first,
 then keyword, then primitive, then deferred generic application. The
 analyzer therefore tracks the same lexical scopes the evaluator will build,
 extending a scratch environment for lambda parameters and let/letrec names.
*/

// Analyze converts one reader datum into an executable expression node.
// A malformed form aborts with an AnalysisError before any evaluation.
func Analyze(datum Syntax, en *Env) (expr *Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ae, ok := r.(*AnalysisError); ok {
				expr, err = nil, ae
				return
			}
			panic(r)
		}
	}()
	return analyze(datum, en), nil
}

func analyze(datum Syntax, en *Env) *Expr {
	switch datum.kind {
	case synNumber:
		return &Expr{kind: eFixnum, num: datum.num}
	case synRational:
		return &Expr{kind: eRational, num: datum.num, den: datum.den}
	case synString:
		return &Expr{kind: eString, text: datum.text}
	case synBool:
		return &Expr{kind: eBool, b: datum.b}
	case synSymbol:
		return &Expr{kind: eVar, text: datum.text}
	case synList:
		return analyzeList(datum, en)
	}
	panic("unknown syntax kind")
}

func analyzeList(datum Syntax, en *Env) *Expr {
	stxs := datum.List()
	if len(stxs) == 0 {
		// () is the empty-list literal
		return &Expr{kind: eQuote, datum: datum}
	}

	if stxs[0].IsSymbol() {
		op := stxs[0].SymbolName()
		// a local binding shadows both keywords and primitives
		if _, bound := en.Find(op); !bound {
			if kind, ok := reservedWords[op]; ok {
				return analyzeSpecial(kind, op, stxs, en)
			}
			if def, ok := declarations[op]; ok {
				return analyzePrimitive(def, stxs, en)
			}
			// fall through: op may become bound before evaluation
		}
	}

	// generic application
	sub := make([]*Expr, len(stxs))
	for i, stx := range stxs {
		sub[i] = analyze(stx, en)
	}
	return &Expr{kind: eApply, sub: sub}
}

func analyzeSpecial(kind exprKind, op string, stxs []Syntax, en *Env) *Expr {
	switch kind {
	case eIf:
		if len(stxs) != 4 {
			throwAnalysis("if requires exactly 3 operands")
		}
		return &Expr{kind: eIf, sub: []*Expr{
			analyze(stxs[1], en),
			analyze(stxs[2], en),
			analyze(stxs[3], en),
		}}
	case eBegin:
		sub := make([]*Expr, 0, len(stxs)-1)
		for _, stx := range stxs[1:] {
			sub = append(sub, analyze(stx, en))
		}
		return &Expr{kind: eBegin, sub: sub}
	case eQuote:
		if len(stxs) != 2 {
			throwAnalysis("quote requires exactly 1 operand")
		}
		// the operand is carried through unanalyzed
		return &Expr{kind: eQuote, datum: stxs[1]}
	case eLambda:
		if len(stxs) < 3 {
			throwAnalysis("lambda needs a parameter list and at least one body form")
		}
		params, variadic := analyzeParams(stxs[1])
		return analyzeLambdaTail(params, variadic, stxs[2:], en)
	case eDefine:
		return analyzeDefine(stxs, en)
	case eSet:
		if len(stxs) != 3 {
			throwAnalysis("set! requires a name and a value")
		}
		if !stxs[1].IsSymbol() {
			throwAnalysis("set! expects a symbol")
		}
		return &Expr{kind: eSet, text: stxs[1].SymbolName(), sub: []*Expr{analyze(stxs[2], en)}}
	case eLet, eLetrec:
		return analyzeLet(kind, op, stxs, en)
	case eCond:
		clauses := make([][]*Expr, 0, len(stxs)-1)
		for _, stx := range stxs[1:] {
			if !stx.IsList() || len(stx.List()) == 0 {
				throwAnalysis("malformed cond clause")
			}
			items := stx.List()
			// a bodyless clause yields its test's value; else has none
			if len(items) == 1 && items[0].IsSymbol() && items[0].SymbolName() == "else" {
				throwAnalysis("else clause needs a body")
			}
			clause := make([]*Expr, 0, len(items))
			for _, e := range items {
				clause = append(clause, analyze(e, en))
			}
			clauses = append(clauses, clause)
		}
		return &Expr{kind: eCond, clauses: clauses}
	case eAnd, eOr:
		sub := make([]*Expr, 0, len(stxs)-1)
		for _, stx := range stxs[1:] {
			sub = append(sub, analyze(stx, en))
		}
		return &Expr{kind: kind, sub: sub}
	}
	throwAnalysis("unknown keyword %s", op)
	return nil
}

// analyzeParams reads a parameter list. A trailing rest marker makes the
// procedure variadic: either (a . rest) with a literal dot, or the
// (a rest ...) spelling where ... follows the rest name.
func analyzeParams(stx Syntax) ([]string, bool) {
	if !stx.IsList() {
		throwAnalysis("lambda parameters must be a list")
	}
	items := stx.List()
	params := make([]string, 0, len(items))
	variadic := false
	for i, p := range items {
		if !p.IsSymbol() {
			throwAnalysis("lambda parameter must be a symbol")
		}
		switch p.SymbolName() {
		case ".":
			if i == 0 || i != len(items)-2 {
				throwAnalysis("misplaced . in parameter list")
			}
			variadic = true
		case "...":
			if i != len(items)-1 || len(params) == 0 {
				throwAnalysis("misplaced ... in parameter list")
			}
			variadic = true
		default:
			params = append(params, p.SymbolName())
		}
	}
	return params, variadic
}

// analyzeLambdaTail analyzes body forms in a scope where the parameters
// shadow keywords and primitives; several forms wrap into an implicit begin.
func analyzeLambdaTail(params []string, variadic bool, bodyStxs []Syntax, en *Env) *Expr {
	inner := en
	for _, p := range params {
		inner = inner.Extend(p, NewVoid())
	}
	var body *Expr
	if len(bodyStxs) == 1 {
		body = analyze(bodyStxs[0], inner)
	} else {
		sub := make([]*Expr, 0, len(bodyStxs))
		for _, stx := range bodyStxs {
			sub = append(sub, analyze(stx, inner))
		}
		body = &Expr{kind: eBegin, sub: sub}
	}
	return &Expr{kind: eLambda, names: params, variadic: variadic, body: body}
}

func analyzeDefine(stxs []Syntax, en *Env) *Expr {
	if len(stxs) < 3 {
		throwAnalysis("define requires a name and a value")
	}
	// function shorthand: (define (name params...) body...)
	if stxs[1].IsList() {
		head := stxs[1].List()
		if len(head) == 0 || !head[0].IsSymbol() {
			throwAnalysis("define expects a name")
		}
		name := head[0].SymbolName()
		checkRedefinable(name)
		params, variadic := analyzeParams(ListSyntax(head[1:]))
		lambda := analyzeLambdaTail(params, variadic, stxs[2:], en)
		return &Expr{kind: eDefine, text: name, sub: []*Expr{lambda}}
	}
	if len(stxs) != 3 {
		throwAnalysis("define requires exactly 2 operands")
	}
	if !stxs[1].IsSymbol() {
		throwAnalysis("define expects a symbol")
	}
	name := stxs[1].SymbolName()
	checkRedefinable(name)
	return &Expr{kind: eDefine, text: name, sub: []*Expr{analyze(stxs[2], en)}}
}

func checkRedefinable(name string) {
	if IsReserved(name) {
		throwAnalysis("cannot define reserved word %s", name)
	}
	if IsPrimitive(name) {
		throwAnalysis("cannot define primitive %s", name)
	}
}

func analyzeLet(kind exprKind, op string, stxs []Syntax, en *Env) *Expr {
	if len(stxs) < 3 {
		throwAnalysis("%s requires a binding list and a body", op)
	}
	if !stxs[1].IsList() {
		throwAnalysis("%s bindings must be a list", op)
	}
	bindings := stxs[1].List()
	names := make([]string, 0, len(bindings))
	initStxs := make([]Syntax, 0, len(bindings))
	for _, b := range bindings {
		if !b.IsList() || len(b.List()) != 2 {
			throwAnalysis("each %s binding must be (name expr)", op)
		}
		pair := b.List()
		if !pair[0].IsSymbol() {
			throwAnalysis("%s binding name must be a symbol", op)
		}
		names = append(names, pair[0].SymbolName())
		initStxs = append(initStxs, pair[1])
	}

	inner := en
	for _, name := range names {
		inner = inner.Extend(name, NewVoid())
	}

	// let initializers see the outer scope, letrec initializers the new one
	initEnv := en
	if kind == eLetrec {
		initEnv = inner
	}
	inits := make([]*Expr, 0, len(initStxs))
	for _, stx := range initStxs {
		inits = append(inits, analyze(stx, initEnv))
	}

	var body *Expr
	if len(stxs) == 3 {
		body = analyze(stxs[2], inner)
	} else {
		sub := make([]*Expr, 0, len(stxs)-2)
		for _, stx := range stxs[2:] {
			sub = append(sub, analyze(stx, inner))
		}
		body = &Expr{kind: eBegin, sub: sub}
	}
	return &Expr{kind: kind, names: names, sub: inits, body: body}
}

// analyzePrimitive arity-checks a call against the catalogue and picks the
// unary, binary or variadic node shape. The shapes are a dispatch detail:
// all of them compute identical results for identical inputs.
func analyzePrimitive(def *Declaration, stxs []Syntax, en *Env) *Expr {
	n := len(stxs) - 1
	if n < def.MinParameter {
		throwAnalysis("%s expects at least %d operands, got %d", def.Name, def.MinParameter, n)
	}
	if def.MaxParameter >= 0 && n > def.MaxParameter {
		throwAnalysis("%s expects at most %d operands, got %d", def.Name, def.MaxParameter, n)
	}
	sub := make([]*Expr, n)
	for i, stx := range stxs[1:] {
		sub[i] = analyze(stx, en)
	}
	switch {
	case def.MinParameter == 1 && def.MaxParameter == 1:
		return &Expr{kind: ePrimUnary, op: def.Op, sub: sub}
	case def.MinParameter == 2 && def.MaxParameter == 2:
		return &Expr{kind: ePrimBinary, op: def.Op, sub: sub}
	case n == 2:
		return &Expr{kind: ePrimBinary, op: def.Op, sub: sub}
	default:
		return &Expr{kind: ePrimVariadic, op: def.Op, sub: sub}
	}
}
