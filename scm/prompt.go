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
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

var ReplInstance *readline.Instance

// Repl reads forms line by line. An unterminated form keeps the line open
// under a continuation prompt instead of reporting an error.
func Repl(en *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".miniscm-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()
	ReplInstance = l

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}
		// help is a shell command, not part of the language
		if trimmed := strings.TrimSpace(line); trimmed == "(help)" || trimmed == "help" {
			Help("")
			continue
		} else if strings.HasPrefix(trimmed, "(help ") && strings.HasSuffix(trimmed, ")") {
			Help(strings.Trim(trimmed[6:len(trimmed)-1], " \""))
			continue
		}

		// anti-panic func
		terminate := false
		func() {
			defer func() {
				if r := recover(); r != nil {
					if _, incomplete := r.(incompleteInput); incomplete {
						// keep oldline
						oldline = line + "\n"
						l.SetPrompt(contprompt)
						return
					}
					if ae, ok := r.(*AnalysisError); ok {
						fmt.Println(ae.Error())
					} else if re, ok := r.(*RuntimeError); ok {
						fmt.Println(re.Error())
					} else {
						fmt.Println("panic:", r, string(debug.Stack()))
					}
					oldline = ""
					l.SetPrompt(newprompt)
				}
			}()
			for _, stx := range ReadAll(line) {
				expr, err := Analyze(stx, en)
				if err != nil {
					fmt.Println(err.Error())
					break
				}
				result, err := Evaluate(expr, en)
				if err != nil {
					fmt.Println(err.Error())
					break
				}
				if result.IsTerminate() {
					terminate = true
					break
				}
				if shouldEcho(expr, result) {
					fmt.Print(resultprompt)
					fmt.Println(String(result))
				}
			}
			oldline = ""
			l.SetPrompt(newprompt)
		}()
		if terminate {
			break
		}
	}
}

// shouldEcho decides whether the REPL prints a result. Void results stay
// silent unless the form was an explicit (void) call; non-void results stay
// silent when the form was a display call, whose output already happened.
func shouldEcho(expr *Expr, result Value) bool {
	if result.IsVoid() {
		return isExplicitVoidCall(expr)
	}
	return !isDisplayCall(expr)
}

func isExplicitVoidCall(e *Expr) bool {
	switch e.kind {
	case ePrimVariadic:
		return e.op == opVoid
	case eApply:
		return e.sub[0].kind == eVar && e.sub[0].text == "void"
	case eBegin:
		return len(e.sub) > 0 && isExplicitVoidCall(e.sub[len(e.sub)-1])
	case eIf:
		return isExplicitVoidCall(e.sub[1]) || isExplicitVoidCall(e.sub[2])
	case eCond:
		for _, clause := range e.clauses {
			if len(clause) > 1 && isExplicitVoidCall(clause[len(clause)-1]) {
				return true
			}
		}
	}
	return false
}

func isDisplayCall(e *Expr) bool {
	switch e.kind {
	case ePrimUnary:
		return e.op == opDisplay
	case eApply:
		return e.sub[0].kind == eVar && e.sub[0].text == "display"
	case eBegin:
		return len(e.sub) > 0 && isDisplayCall(e.sub[len(e.sub)-1])
	case eIf:
		return isDisplayCall(e.sub[1]) || isDisplayCall(e.sub[2])
	case eCond:
		for _, clause := range e.clauses {
			if len(clause) > 1 && isDisplayCall(clause[len(clause)-1]) {
				return true
			}
		}
	}
	return false
}

// EvalAll reads, analyzes and evaluates every form of a source text against
// en. It stops at the first error or at a Terminate value and returns the
// last result.
func EvalAll(origin, source string, en *Env) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case incompleteInput:
				err = fmt.Errorf("%s: unexpected end of input", origin)
			case *AnalysisError:
				err = fmt.Errorf("%s: %w", origin, e)
			default:
				panic(r)
			}
		}
	}()
	result = NewVoid()
	for _, stx := range ReadAll(source) {
		expr, aerr := Analyze(stx, en)
		if aerr != nil {
			return Value{}, fmt.Errorf("%s: %w", origin, aerr)
		}
		result, aerr = Evaluate(expr, en)
		if aerr != nil {
			return Value{}, fmt.Errorf("%s: %w", origin, aerr)
		}
		if result.IsTerminate() {
			break
		}
	}
	return result, nil
}
