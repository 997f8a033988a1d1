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

// Syntax is one reader datum. The analyzer consumes it, quote carries it
// through unevaluated; nobody mutates it.
type Syntax struct {
	kind uint16
	num  int64
	den  int64
	text string
	b    bool
	list []Syntax
}

const (
	synNumber = iota
	synRational
	synString
	synSymbol
	synBool
	synList
)

func NumberSyntax(n int64) Syntax { return Syntax{kind: synNumber, num: n} }

func RationalSyntax(num, den int64) Syntax {
	return Syntax{kind: synRational, num: num, den: den}
}

func StringSyntax(s string) Syntax { return Syntax{kind: synString, text: s} }

func SymbolSyntax(s string) Syntax { return Syntax{kind: synSymbol, text: s} }

func BoolSyntax(b bool) Syntax { return Syntax{kind: synBool, b: b} }

func ListSyntax(items []Syntax) Syntax { return Syntax{kind: synList, list: items} }

func (s Syntax) IsSymbol() bool { return s.kind == synSymbol }
func (s Syntax) IsList() bool   { return s.kind == synList }

func (s Syntax) SymbolName() string {
	if s.kind != synSymbol {
		panic("not symbol syntax")
	}
	return s.text
}

func (s Syntax) List() []Syntax {
	if s.kind != synList {
		panic("not list syntax")
	}
	return s.list
}
