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
 Environments
*/

// Frame holds exactly one binding plus the parent link. Frames never link
// downwards, so the frame graph stays acyclic even when pair values cycle.
type Frame struct {
	name  string
	cell  Value
	outer *Frame
}

// Env is a shared handle onto the innermost frame. Closures and the driving
// loop may hold the same handle; a Define through one of them is visible
// through all (single-threaded aliasing, no locking).
type Env struct {
	scope *Frame
}

func EmptyEnv() *Env {
	return &Env{}
}

// Find walks innermost to outermost; the first name match wins.
func (e *Env) Find(name string) (Value, bool) {
	for f := e.scope; f != nil; f = f.outer {
		if f.name == name {
			return f.cell, true
		}
	}
	return Value{}, false
}

// Extend allocates a child frame under a fresh handle. The receiver is
// unchanged.
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{scope: &Frame{name: name, cell: v, outer: e.scope}}
}

// Modify updates the nearest existing binding in place. It never creates a
// binding; absence is reported to the caller.
func (e *Env) Modify(name string, v Value) bool {
	for f := e.scope; f != nil; f = f.outer {
		if f.name == name {
			f.cell = v
			return true
		}
	}
	return false
}

// Define pushes a binding onto this handle so every holder of the handle
// sees it. Used by define and by the letrec placeholder pass.
func (e *Env) Define(name string, v Value) {
	e.scope = &Frame{name: name, cell: v, outer: e.scope}
}
