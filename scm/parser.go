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

import (
	"strconv"
	"strings"
)

// errIncomplete signals an unterminated form so the REPL can keep the line
// open and prompt for a continuation instead of reporting an error.
type incompleteInput struct{}

func (incompleteInput) Error() string { return "expecting matching )" }

var errIncomplete = incompleteInput{}

// ReadAll turns source text into one Syntax datum per top-level form.
func ReadAll(s string) []Syntax {
	tokens := tokenize(s)
	result := make([]Syntax, 0)
	for len(tokens) > 0 {
		result = append(result, readFrom(&tokens))
	}
	return result
}

// Syntactic Analysis
func readFrom(tokens *[]Syntax) Syntax {
	if len(*tokens) == 0 {
		panic(errIncomplete)
	}
	// pop first element from tokens
	token := (*tokens)[0]
	*tokens = (*tokens)[1:]
	if token.IsSymbol() {
		switch token.SymbolName() {
		case "(":
			items := make([]Syntax, 0)
			for {
				if len(*tokens) == 0 {
					panic(errIncomplete)
				}
				next := (*tokens)[0]
				if next.IsSymbol() && next.SymbolName() == ")" {
					*tokens = (*tokens)[1:]
					return ListSyntax(items)
				}
				items = append(items, readFrom(tokens))
			}
		case ")":
			throwAnalysis("unexpected )")
		case "'":
			quoted := readFrom(tokens)
			return ListSyntax([]Syntax{SymbolSyntax("quote"), quoted})
		}
	}
	return token
}

// finishAtom classifies a bare token: integer, rational literal n/d,
// #t/#f, otherwise symbol. The dot of dotted-pair notation stays a symbol.
func finishAtom(s string) Syntax {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberSyntax(n)
	}
	if i := strings.IndexByte(s, '/'); i > 0 && i < len(s)-1 {
		num, err1 := strconv.ParseInt(s[:i], 10, 64)
		den, err2 := strconv.ParseInt(s[i+1:], 10, 64)
		if err1 == nil && err2 == nil {
			return RationalSyntax(num, den)
		}
	}
	switch s {
	case "#t":
		return BoolSyntax(true)
	case "#f":
		return BoolSyntax(false)
	}
	return SymbolSyntax(s)
}

// Lexical Analysis
func tokenize(s string) []Syntax {
	/* tokenizer state machine:
		0 = expecting next item
		1 = inside atom (number, rational or symbol)
		2 = inside string
		3 = inside escaping sequence of string
		4 = inside ; line comment

	tokens are atoms, strings, or the punctuation symbols ( ) '
	*/

	stringreplacer := strings.NewReplacer("\\\"", "\"", "\\\\", "\\", "\\n", "\n", "\\r", "\r", "\\t", "\t")
	state := 0
	startToken := 0
	result := make([]Syntax, 0)
	for i, ch := range s {
		if state == 1 && ch != ' ' && ch != '\r' && ch != '\n' && ch != '\t' && ch != ')' && ch != '(' && ch != ';' && ch != '"' {
			// another character added to the atom
		} else if state == 2 && ch != '"' && ch != '\\' {
			// another character added to string
		} else if state == 2 && ch == '\\' {
			// escape sequence
			state = 3
		} else if state == 3 {
			state = 2 // continue with string
		} else if state == 2 && ch == '"' {
			// finish string
			result = append(result, StringSyntax(stringreplacer.Replace(s[startToken+1:i])))
			state = 0
		} else if state == 4 && ch != '\n' {
			// consume another comment character
		} else if state == 4 {
			// newline ends the comment
			state = 0
		} else {
			// otherwise: state change!
			if state == 1 {
				result = append(result, finishAtom(s[startToken:i]))
			}
			// now detect what to parse next
			startToken = i
			if ch == '(' {
				result = append(result, SymbolSyntax("("))
				state = 0
			} else if ch == ')' {
				result = append(result, SymbolSyntax(")"))
				state = 0
			} else if ch == '\'' {
				result = append(result, SymbolSyntax("'"))
				state = 0
			} else if ch == '"' {
				// start string
				state = 2
			} else if ch == ';' {
				// start line comment
				state = 4
			} else if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
				// white space
				state = 0
			} else {
				// everything else starts an atom
				state = 1
			}
		}
	}
	// in the end: finish unfinished atoms
	if state == 1 {
		result = append(result, finishAtom(s[startToken:]))
	}
	if state == 2 || state == 3 {
		panic(errIncomplete)
	}
	return result
}
