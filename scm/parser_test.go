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

func TestReadAtoms(t *testing.T) {
	stxs := ReadAll("42 -7 1/2 #t #f foo \"bar\" .")
	if len(stxs) != 8 {
		t.Fatalf("expected 8 data, got %d", len(stxs))
	}
	if stxs[0].kind != synNumber || stxs[0].num != 42 {
		t.Error("42 should read as a number")
	}
	if stxs[1].kind != synNumber || stxs[1].num != -7 {
		t.Error("-7 should read as a number")
	}
	if stxs[2].kind != synRational || stxs[2].num != 1 || stxs[2].den != 2 {
		t.Error("1/2 should read as a rational")
	}
	if stxs[3].kind != synBool || !stxs[3].b {
		t.Error("#t should read as true")
	}
	if stxs[4].kind != synBool || stxs[4].b {
		t.Error("#f should read as false")
	}
	if !stxs[5].IsSymbol() || stxs[5].SymbolName() != "foo" {
		t.Error("foo should read as a symbol")
	}
	if stxs[6].kind != synString || stxs[6].text != "bar" {
		t.Error("\"bar\" should read as a string")
	}
	if !stxs[7].IsSymbol() || stxs[7].SymbolName() != "." {
		t.Error(". should stay a symbol")
	}
}

func TestReadNesting(t *testing.T) {
	stxs := ReadAll("(a (b c) ())")
	if len(stxs) != 1 {
		t.Fatalf("expected 1 datum, got %d", len(stxs))
	}
	outer := stxs[0].List()
	if len(outer) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(outer))
	}
	if !outer[0].IsSymbol() || len(outer[1].List()) != 2 || len(outer[2].List()) != 0 {
		t.Error("nesting shape is wrong")
	}
}

func TestReadQuoteShorthand(t *testing.T) {
	stxs := ReadAll("'(1 2)")
	wrapped := stxs[0].List()
	if len(wrapped) != 2 || !wrapped[0].IsSymbol() || wrapped[0].SymbolName() != "quote" {
		t.Fatal("'x should read as (quote x)")
	}
	if len(wrapped[1].List()) != 2 {
		t.Error("the quoted datum should survive unchanged")
	}
}

func TestReadComments(t *testing.T) {
	stxs := ReadAll("1 ; a comment (ignored\n2")
	if len(stxs) != 2 || stxs[0].num != 1 || stxs[1].num != 2 {
		t.Errorf("comments should vanish, got %d data", len(stxs))
	}
}

func TestReadStringEscapes(t *testing.T) {
	stxs := ReadAll(`"a\nb" "say \"hi\"" "back\\slash"`)
	if stxs[0].text != "a\nb" {
		t.Errorf("expected escape to resolve, got %q", stxs[0].text)
	}
	if stxs[1].text != `say "hi"` {
		t.Errorf("expected quote escape to resolve, got %q", stxs[1].text)
	}
	if stxs[2].text != `back\slash` {
		t.Errorf("expected backslash escape to resolve, got %q", stxs[2].text)
	}
}

func TestReadIncompleteForm(t *testing.T) {
	for _, src := range []string{"(foo", "(foo (bar)", `"unterminated`} {
		func() {
			defer func() {
				r := recover()
				if _, ok := r.(incompleteInput); !ok {
					t.Errorf("%q should signal incomplete input, got %v", src, r)
				}
			}()
			ReadAll(src)
		}()
	}
}

func TestReadUnexpectedClose(t *testing.T) {
	defer func() {
		if _, ok := recover().(*AnalysisError); !ok {
			t.Error("a stray ) should be an analysis error")
		}
	}()
	ReadAll(")")
}

func TestSymbolsThatLookNumeric(t *testing.T) {
	if !ReadAll("1/0x")[0].IsSymbol() {
		t.Error("1/0x is not a rational, it should stay a symbol")
	}
	if !ReadAll("-")[0].IsSymbol() {
		t.Error("- alone should stay a symbol")
	}
	if ReadAll("1/0")[0].kind != synRational {
		t.Error("1/0 reads as a rational; the error comes later at evaluation")
	}
}
