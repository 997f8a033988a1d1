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

// Expr is one node of the executable expression tree. Built once per
// top-level form by Analyze, retained for the program lifetime (lambda
// bodies live on inside captured Procedure values).
type Expr struct {
	kind     exprKind
	op       primOp    // which primitive for ePrimUnary/Binary/Variadic
	num, den int64     // eFixnum / eRational payload
	text     string    // eString, eVar, eDefine/eSet target
	b        bool      // eBool payload
	names    []string  // eLambda params, eLet/eLetrec binding names
	variadic bool      // eLambda rest-parameter flag
	sub      []*Expr   // operands, body forms, initializers
	body     *Expr     // eLambda/eLet/eLetrec body
	clauses  [][]*Expr // eCond clauses, each test first
	datum    Syntax    // eQuote carries the datum unanalyzed
}

type exprKind uint16

const (
	eFixnum = exprKind(iota)
	eRational
	eString
	eBool
	eVar
	eQuote
	ePrimUnary
	ePrimBinary
	ePrimVariadic
	eApply // sub[0] is the operator, the rest operands
	eLambda
	eDefine
	eSet
	eLet
	eLetrec
	eBegin
	eIf // sub = condition, consequent, alternative
	eCond
	eAnd
	eOr
)

// primOp enumerates the fixed catalogue of built-in operators.
type primOp uint16

const (
	opAdd = primOp(iota)
	opSub
	opMul
	opDiv
	opModulo
	opExpt
	opLt
	opLe
	opNumEq
	opGe
	opGt
	opCons
	opCar
	opCdr
	opList
	opSetCar
	opSetCdr
	opIsList
	opEq
	opIsBoolean
	opIsInt
	opIsNull
	opIsPair
	opIsProcedure
	opIsSymbol
	opIsString
	opNot
	opDisplay
	opVoid
	opExit
)
