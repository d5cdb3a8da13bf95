/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package frame implements the environment stack: a stack of scoped
name-to-value frames threaded explicitly through the evaluator (spec.md
§4.5). The stack always holds at least one BASE frame, which can never
be popped.
*/
package frame

import (
	"devt.de/krotik/common/sortutil"

	"devt.de/krotik/bp/bperr"
	"devt.de/krotik/bp/value"
)

/*
Kind identifies a frame's origin construct.
*/
type Kind int

const (
	Base Kind = iota
	If
	While
	For
)

func (k Kind) String() string {
	switch k {
	case Base:
		return "BASE"
	case If:
		return "IF"
	case While:
		return "WHILE"
	case For:
		return "FOR"
	}
	return "UNKNOWN"
}

/*
Frame is one scope level: a name-to-value mapping, its originating
construct, and a condition slot whose meaning depends on Kind (spec.md
§4.6 describes each signal's condition payload).
*/
type Frame struct {
	Kind      Kind
	Condition interface{}
	vars      map[string]value.Value
}

func newFrame(kind Kind, condition interface{}) *Frame {
	return &Frame{Kind: kind, Condition: condition, vars: map[string]value.Value{}}
}

/*
Stack is the environment stack threaded through the evaluator. Index 0
is the BASE frame (invariant I6: never popped, stack never empty).
*/
type Stack struct {
	frames []*Frame
}

/*
NewStack returns a fresh environment with just the BASE frame.
*/
func NewStack() *Stack {
	return &Stack{frames: []*Frame{newFrame(Base, nil)}}
}

/*
Depth returns the current number of frames.
*/
func (s *Stack) Depth() int {
	return len(s.frames)
}

/*
Top returns the top frame.
*/
func (s *Stack) Top() *Frame {
	return s.frames[len(s.frames)-1]
}

/*
Push opens a new frame of the given kind with the given condition
payload.
*/
func (s *Stack) Push(kind Kind, condition interface{}) {
	s.frames = append(s.frames, newFrame(kind, condition))
}

/*
DestructivePop discards the top frame and every variable it declared.
The BASE frame can never be popped.
*/
func (s *Stack) DestructivePop() error {
	if len(s.frames) <= 1 {
		return bperr.New("", bperr.Runtime, bperr.ErrInvalidState, "cannot pop the base frame", 0)
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

/*
ConstructivePop copies every name-to-value entry of the top frame into
the frame below, then discards the top frame, returning its Kind and
Condition for the runner to interpret (spec.md §4.5 "Constructive
pop"). A name that already exists in the frame below is overwritten
after a value.Reconcile kind check (with Integer->Float promotion)
rather than rejected as a redeclaration. IF and WHILE frames use this;
FOR frames delete their loop variable first (see Stack.Delete and the
runner).
*/
func (s *Stack) ConstructivePop() (Kind, interface{}, error) {
	if len(s.frames) <= 1 {
		return Base, nil, bperr.New("", bperr.Runtime, bperr.ErrInvalidState, "cannot pop the base frame", 0)
	}

	top := s.frames[len(s.frames)-1]
	below := s.frames[len(s.frames)-2]

	for name, v := range top.vars {
		if existing, exists := below.vars[name]; exists {
			// A repeated declaration from a prior loop iteration:
			// spec.md §9(e) treats this as assignment-if-type-matches.
			promoted, err := value.Reconcile(existing, v)
			if err != nil {
				return Base, nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
					"loop-carried redeclaration of "+name+" changes its type", 0)
			}
			below.vars[name] = promoted
			continue
		}
		below.vars[name] = v
	}

	s.frames = s.frames[:len(s.frames)-1]
	return top.Kind, top.Condition, nil
}

/*
Lookup scans the stack top-down for name (spec.md §4.5 "lookup").
*/
func (s *Stack) Lookup(name string) (value.Value, error) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].vars[name]; ok {
			return v, nil
		}
	}
	return nil, bperr.New("", bperr.Name, bperr.ErrUnknownIdentifier, name, 0)
}

/*
Make declares name in the top frame (spec.md §4.5 "make"). A duplicate
name in the top frame is an error.
*/
func (s *Stack) Make(name string, v value.Value) error {
	top := s.Top()
	if _, exists := top.vars[name]; exists {
		return bperr.New("", bperr.Name, bperr.ErrRedeclaration, name, 0)
	}
	top.vars[name] = v
	return nil
}

/*
Set locates the frame containing name and replaces its value, rejecting
a type mismatch (spec.md §4.5 "set").
*/
func (s *Stack) Set(name string, v value.Value) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if existing, ok := s.frames[i].vars[name]; ok {
			promoted, err := value.Reconcile(existing, v)
			if err != nil {
				return bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
					"cannot assign a "+v.Kind().String()+" to "+name, 0)
			}
			s.frames[i].vars[name] = promoted
			return nil
		}
	}
	return bperr.New("", bperr.Name, bperr.ErrUnknownIdentifier, name, 0)
}

/*
Delete removes name from its containing frame (spec.md §4.5 "delete").
Used by the runner to strip a FOR loop's variable before its
constructive pop, so it never leaks outward.
*/
func (s *Stack) Delete(name string) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i].vars[name]; ok {
			delete(s.frames[i].vars, name)
			return nil
		}
	}
	return bperr.New("", bperr.Name, bperr.ErrUnknownIdentifier, name, 0)
}

/*
DumpString renders the current frame stack for debugging, innermost
frame first, with variable names sorted for deterministic output via
the devt.de/krotik sortutil helpers used elsewhere in this stack for
debug/pretty-print ordering.
*/
func (s *Stack) DumpString() string {
	var out string
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		names := make([]interface{}, 0, len(f.vars))
		for n := range f.vars {
			names = append(names, n)
		}
		sortutil.InterfaceStrings(names)

		out += f.Kind.String() + ": "
		for _, n := range names {
			out += n.(string) + " "
		}
		out += "\n"
	}
	return out
}
