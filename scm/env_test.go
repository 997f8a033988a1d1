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

func TestEnvFindInnermostWins(t *testing.T) {
	en := EmptyEnv().Extend("x", NewInt(1)).Extend("y", NewInt(2)).Extend("x", NewInt(3))
	v, ok := en.Find("x")
	if !ok || v.Int() != 3 {
		t.Errorf("innermost x should win, got %s", String(v))
	}
	if _, ok := en.Find("z"); ok {
		t.Error("z should be unbound")
	}
}

func TestEnvExtendLeavesReceiverUnchanged(t *testing.T) {
	outer := EmptyEnv()
	outer.Extend("x", NewInt(1))
	if _, ok := outer.Find("x"); ok {
		t.Error("Extend must not mutate the receiver")
	}
}

func TestEnvDefineIsSharedThroughHandles(t *testing.T) {
	// a closure holding the same handle sees later defines
	en := EmptyEnv()
	alias := en
	en.Define("x", NewInt(1))
	if v, ok := alias.Find("x"); !ok || v.Int() != 1 {
		t.Error("Define must be visible through every holder of the handle")
	}
	// a child handle made before the define does not see it
	child := en.Extend("y", NewInt(2))
	en.Define("z", NewInt(3))
	if _, ok := child.Find("z"); ok {
		t.Error("a child handle snapshots its parent frame")
	}
}

func TestEnvModify(t *testing.T) {
	en := EmptyEnv().Extend("x", NewInt(1)).Extend("y", NewInt(2))
	if !en.Modify("x", NewInt(9)) {
		t.Fatal("x is bound, Modify should succeed")
	}
	if v, _ := en.Find("x"); v.Int() != 9 {
		t.Error("Modify should update in place")
	}
	if en.Modify("nope", NewInt(1)) {
		t.Error("Modify must never create bindings")
	}
}

func TestEnvShadowedBindingSurvivesModify(t *testing.T) {
	en := EmptyEnv().Extend("x", NewInt(1))
	inner := en.Extend("x", NewInt(2))
	inner.Modify("x", NewInt(5))
	if v, _ := en.Find("x"); v.Int() != 1 {
		t.Error("Modify through the inner handle must hit the innermost frame only")
	}
	if v, _ := inner.Find("x"); v.Int() != 5 {
		t.Error("the innermost frame should carry the new value")
	}
}
