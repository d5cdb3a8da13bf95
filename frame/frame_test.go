/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package frame

import (
	"testing"

	"devt.de/krotik/bp/value"
)

func TestMakeLookupSet(t *testing.T) {
	s := NewStack()

	if err := s.Make("a", value.Integer(1)); err != nil {
		t.Fatal(err)
	}
	v, err := s.Lookup("a")
	if err != nil || v != value.Integer(1) {
		t.Errorf("Lookup(a) = %v, %v, want 1, nil", v, err)
	}

	if err := s.Set("a", value.Integer(2)); err != nil {
		t.Fatal(err)
	}
	v, _ = s.Lookup("a")
	if v != value.Integer(2) {
		t.Errorf("after Set, Lookup(a) = %v, want 2", v)
	}
}

func TestMakeDuplicateInTopFrameErrors(t *testing.T) {
	s := NewStack()
	s.Make("a", value.Integer(1))
	if err := s.Make("a", value.Integer(2)); err == nil {
		t.Error("expected redeclaration in the same frame to fail")
	}
}

func TestLookupUnknownErrors(t *testing.T) {
	s := NewStack()
	if _, err := s.Lookup("nope"); err == nil {
		t.Error("expected lookup of an unknown identifier to fail")
	}
}

func TestBaseFrameCannotBePopped(t *testing.T) {
	s := NewStack()
	if err := s.DestructivePop(); err == nil {
		t.Error("expected popping the base frame to fail")
	}
	if _, _, err := s.ConstructivePop(); err == nil {
		t.Error("expected constructive-popping the base frame to fail")
	}
}

func TestDestructivePopDiscardsVariables(t *testing.T) {
	s := NewStack()
	s.Push(If, nil)
	s.Make("local", value.Integer(1))

	if err := s.DestructivePop(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Lookup("local"); err == nil {
		t.Error("expected the discarded frame's variable to be gone")
	}
}

func TestConstructivePopMergesIntoParent(t *testing.T) {
	s := NewStack()
	s.Push(If, "cond")
	s.Make("a", value.Integer(1))

	kind, cond, err := s.ConstructivePop()
	if err != nil {
		t.Fatal(err)
	}
	if kind != If || cond != "cond" {
		t.Errorf("ConstructivePop returned %v, %v, want If, \"cond\"", kind, cond)
	}

	v, err := s.Lookup("a")
	if err != nil || v != value.Integer(1) {
		t.Errorf("after constructive pop, Lookup(a) = %v, %v, want 1, nil", v, err)
	}
}

func TestConstructivePopPromotesIntegerToFloat(t *testing.T) {
	s := NewStack()
	s.Make("x", value.Float(0))

	s.Push(While, nil)
	s.Make("x", value.Integer(3))

	if _, _, err := s.ConstructivePop(); err != nil {
		t.Fatal(err)
	}

	v, err := s.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := v.(value.Float); !ok || f != 3 {
		t.Errorf("after loop-carried redeclaration, x = %v, want Float(3)", v)
	}
}

func TestDeleteRemovesFromContainingFrame(t *testing.T) {
	s := NewStack()
	s.Push(For, nil)
	s.Make("x", value.Integer(1))

	if err := s.Delete("x"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Lookup("x"); err == nil {
		t.Error("expected x to be gone after Delete")
	}
}

func TestDepth(t *testing.T) {
	s := NewStack()
	if s.Depth() != 1 {
		t.Errorf("fresh stack depth = %d, want 1", s.Depth())
	}
	s.Push(If, nil)
	if s.Depth() != 2 {
		t.Errorf("after one push, depth = %d, want 2", s.Depth())
	}
}
