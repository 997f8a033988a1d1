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

import "os"
import "fmt"
import "strings"
import "path/filepath"

// Declaration describes one built-in operator: documentation, arity range
// and the dispatch code the analyzer compiles it to. The tables are filled
// during init and read-only afterwards.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 = unbounded
	Params       []DeclarationParameter
	Returns      string // any | number | int | bool | list | pair | symbol | string | nil | void
	Op           primOp
}

type DeclarationParameter struct {
	Name string
	Type string
	Desc string
}

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)

// reservedWords maps keywords to the expression kind their special form
// analyzes to. Consulted after environment bindings (shadowing) and before
// the primitive table.
var reservedWords = map[string]exprKind{
	"if":     eIf,
	"begin":  eBegin,
	"quote":  eQuote,
	"lambda": eLambda,
	"define": eDefine,
	"set!":   eSet,
	"let":    eLet,
	"letrec": eLetrec,
	"cond":   eCond,
	"and":    eAnd,
	"or":     eOr,
}

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

func Declare(def *Declaration) {
	declaration_titles = append(declaration_titles, def.Name)
	declarations[def.Name] = def
}

// IsPrimitive tells whether name is a built-in operator (before shadowing).
func IsPrimitive(name string) bool {
	_, ok := declarations[name]
	return ok
}

// IsReserved tells whether name is a special-form keyword.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

func init() {
	DeclareTitle("Arithmetic")
	Declare(&Declaration{
		"+", "adds exact numbers; the empty sum is 0",
		0, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to add"},
		}, "number", opAdd,
	})
	Declare(&Declaration{
		"-", "subtracts the remaining numbers from the first one; negates a single argument",
		1, -1,
		[]DeclarationParameter{
			{"value...", "number", "values"},
		}, "number", opSub,
	})
	Declare(&Declaration{
		"*", "multiplies exact numbers; the empty product is 1",
		0, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to multiply"},
		}, "number", opMul,
	})
	Declare(&Declaration{
		"/", "divides the first number by the remaining ones; inverts a single argument",
		1, -1,
		[]DeclarationParameter{
			{"value...", "number", "values"},
		}, "number", opDiv,
	})
	Declare(&Declaration{
		"modulo", "remainder of integer division",
		2, 2,
		[]DeclarationParameter{
			{"dividend", "int", "dividend"},
			{"divisor", "int", "divisor"},
		}, "int", opModulo,
	})
	Declare(&Declaration{
		"expt", "raises an integer base to a non-negative integer exponent",
		2, 2,
		[]DeclarationParameter{
			{"base", "int", "base"},
			{"exponent", "int", "non-negative exponent"},
		}, "int", opExpt,
	})

	DeclareTitle("Comparison")
	Declare(&Declaration{
		"<", "tells if every adjacent pair of numbers is strictly increasing",
		2, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to compare"},
		}, "bool", opLt,
	})
	Declare(&Declaration{
		"<=", "tells if every adjacent pair of numbers is non-decreasing",
		2, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to compare"},
		}, "bool", opLe,
	})
	Declare(&Declaration{
		"=", "tells if all numbers are equal",
		2, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to compare"},
		}, "bool", opNumEq,
	})
	Declare(&Declaration{
		">=", "tells if every adjacent pair of numbers is non-increasing",
		2, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to compare"},
		}, "bool", opGe,
	})
	Declare(&Declaration{
		">", "tells if every adjacent pair of numbers is strictly decreasing",
		2, -1,
		[]DeclarationParameter{
			{"value...", "number", "values to compare"},
		}, "bool", opGt,
	})

	DeclareTitle("Pairs and Lists")
	Declare(&Declaration{
		"cons", "builds a fresh mutable pair",
		2, 2,
		[]DeclarationParameter{
			{"car", "any", "first element"},
			{"cdr", "any", "second element"},
		}, "pair", opCons,
	})
	Declare(&Declaration{
		"car", "first element of a pair",
		1, 1,
		[]DeclarationParameter{
			{"pair", "pair", "pair to read"},
		}, "any", opCar,
	})
	Declare(&Declaration{
		"cdr", "second element of a pair",
		1, 1,
		[]DeclarationParameter{
			{"pair", "pair", "pair to read"},
		}, "any", opCdr,
	})
	Declare(&Declaration{
		"list", "builds a proper list from its arguments",
		0, -1,
		[]DeclarationParameter{
			{"value...", "any", "elements"},
		}, "list", opList,
	})
	Declare(&Declaration{
		"set-car!", "replaces the first element of a pair in place",
		2, 2,
		[]DeclarationParameter{
			{"pair", "pair", "pair to mutate"},
			{"value", "any", "new car"},
		}, "void", opSetCar,
	})
	Declare(&Declaration{
		"set-cdr!", "replaces the second element of a pair in place",
		2, 2,
		[]DeclarationParameter{
			{"pair", "pair", "pair to mutate"},
			{"value", "any", "new cdr"},
		}, "void", opSetCdr,
	})
	Declare(&Declaration{
		"list?", "tells if the value is a proper list; cycle-safe",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsList,
	})

	DeclareTitle("Predicates")
	Declare(&Declaration{
		"eq?", "identity comparison: numbers, booleans and symbols by value, the rest by reference",
		2, 2,
		[]DeclarationParameter{
			{"a", "any", "first value"},
			{"b", "any", "second value"},
		}, "bool", opEq,
	})
	Declare(&Declaration{
		"boolean?", "tells if the value is a boolean",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsBoolean,
	})
	Declare(&Declaration{
		"integer?", "tells if the value is an integer; rationals answer #f",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsInt,
	})
	Declare(&Declaration{
		"null?", "tells if the value is the empty list",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsNull,
	})
	Declare(&Declaration{
		"pair?", "tells if the value is a pair",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsPair,
	})
	Declare(&Declaration{
		"procedure?", "tells if the value is a procedure",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsProcedure,
	})
	Declare(&Declaration{
		"symbol?", "tells if the value is a symbol",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsSymbol,
	})
	Declare(&Declaration{
		"string?", "tells if the value is a string",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to examine"},
		}, "bool", opIsString,
	})

	DeclareTitle("Logic and Control")
	Declare(&Declaration{
		"not", "negates a boolean; everything else answers #f",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to negate"},
		}, "bool", opNot,
	})
	Declare(&Declaration{
		"void", "answers the void value",
		0, 0,
		nil, "void", opVoid,
	})
	Declare(&Declaration{
		"exit", "evaluates to the termination sentinel understood by the driving loop",
		0, 0,
		nil, "void", opExit,
	})

	DeclareTitle("IO")
	Declare(&Declaration{
		"display", "writes a textual rendering to the output sink; strings print raw",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to display"},
		}, "void", opDisplay,
	})
}

func Help(topic string) {
	if topic == "" {
		fmt.Println("Available scm functions:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Println("")
				fmt.Println("-- " + title[1:] + " --")
			} else {
				fmt.Println("  " + title + ": " + strings.Split(declarations[title].Desc, "\n")[0])
			}
		}
		fmt.Println("")
		fmt.Println("get further information by typing (help \"functionname\") to get more info")
		return
	}
	def, ok := declarations[topic]
	if !ok {
		fmt.Println("function not found: " + topic)
		return
	}
	fmt.Println("Help for: " + def.Name)
	fmt.Println("===")
	fmt.Println("")
	fmt.Println(def.Desc)
	fmt.Println("")
	if def.MaxParameter < 0 {
		fmt.Println("Allowed nø of parameters: ", def.MinParameter, "+")
	} else {
		fmt.Println("Allowed nø of parameters: ", def.MinParameter, "-", def.MaxParameter)
	}
	fmt.Println("")
	for _, p := range def.Params {
		fmt.Println(" - " + p.Name + " (" + p.Type + "): " + p.Desc)
	}
	fmt.Println("")
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

// WriteDocumentation generates Markdown docs:
// - index.md with links to chapters
// - one <chapter>.md file per chapter, containing all builtins of that chapter
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type Chapter struct {
		Title string
		Slug  string
		Fns   []*Declaration
	}

	var chapters []*Chapter
	var current *Chapter
	usedSlugs := map[string]int{}

	uniqSlug := func(s string) string {
		base := slugify(s)
		if usedSlugs[base] == 0 {
			usedSlugs[base] = 1
			return base
		}
		for i := 2; ; i++ {
			candidate := fmt.Sprintf("%s-%d", base, i)
			if usedSlugs[candidate] == 0 {
				usedSlugs[candidate] = 1
				return candidate
			}
		}
	}

	for _, t := range declaration_titles {
		if len(t) > 0 && t[0] == '#' {
			title := strings.TrimSpace(t[1:])
			ch := &Chapter{Title: title, Slug: uniqSlug(title)}
			chapters = append(chapters, ch)
			current = ch
			continue
		}
		def, ok := declarations[t]
		if !ok || current == nil {
			continue
		}
		current.Fns = append(current.Fns, def)
	}

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprint(indexFile, "# Documentation\n\n")
	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}

		fmt.Fprintf(f, "# %s\n\n", ch.Title)

		for _, def := range ch.Fns {
			fmt.Fprintf(f, "## %s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", def.Desc)
			}
			if def.MaxParameter < 0 {
				fmt.Fprintf(f, "**Allowed number of parameters:** %d or more\n\n", def.MinParameter)
			} else {
				fmt.Fprintf(f, "**Allowed number of parameters:** %d–%d\n\n", def.MinParameter, def.MaxParameter)
			}

			fmt.Fprint(f, "### Parameters\n\n")
			if len(def.Params) == 0 {
				fmt.Fprint(f, "_This function has no parameters._\n\n")
			} else {
				for _, p := range def.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}

			fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
		}

		_ = f.Close()
	}

	return nil
}
