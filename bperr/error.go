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
Package bperr contains the error types shared by every BP package: a
classified, traceable RuntimeError plus the sentinel error values spec.md
§7 groups into Lexical, Structural, Type, Name and Runtime kinds.
*/
package bperr

import (
	"encoding/json"
	"errors"
	"fmt"
)

/*
Kind classifies a RuntimeError into one of spec.md §7's five error
categories.
*/
type Kind int

const (
	Lexical Kind = iota
	Structural
	Type
	Name
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "Lexical"
	case Structural:
		return "Structural"
	case Type:
		return "Type"
	case Name:
		return "Name"
	case Runtime:
		return "Runtime"
	}
	return "Unknown"
}

/*
Sentinel error types, used for equality checks against RuntimeError.Type.
*/
var (
	ErrLexical           = errors.New("lexical error")
	ErrNoMatchingForm    = errors.New("no structure graph matches this line")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrRedeclaration     = errors.New("identifier already declared in this scope")
	ErrTypeMismatch      = errors.New("operand has the wrong type")
	ErrDivideByZero      = errors.New("division by zero")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrEmptyCollection   = errors.New("collection is empty")
	ErrKeyNotFound       = errors.New("key not found in dictionary")
	ErrNotIterable       = errors.New("value is not iterable")
	ErrNotANumber        = errors.New("operand is not numeric")
	ErrNotABoolean       = errors.New("operand is not boolean")
	ErrInvalidState      = errors.New("invalid interpreter state")

	// ErrHalt is not a user-facing error. No BP package returns it; the
	// runner stops at the end of the program without an error value.
	ErrHalt = errors.New("*** halt ***")
)

/*
RuntimeError is the traceable error type every BP package returns
(spec.md §7). It mirrors source, type, detail and position the way the
rest of the devt.de/krotik stack reports interpreter errors.
*/
type RuntimeError struct {
	Source string // name of the source file or REPL input
	Kind   Kind
	Type   error // sentinel error, used for equality checks
	Detail string
	Line   int
	Trace  []string
}

/*
New creates a RuntimeError.
*/
func New(source string, kind Kind, t error, detail string, line int) error {
	return &RuntimeError{Source: source, Kind: kind, Type: t, Detail: detail, Line: line}
}

/*
Error returns a human-readable string representation of this error.
*/
func (re *RuntimeError) Error() string {
	ret := fmt.Sprintf("bp %v error in %s: %v (%v)", re.Kind, re.Source, re.Type, re.Detail)
	if re.Line != 0 {
		ret = fmt.Sprintf("%s (Line:%d)", ret, re.Line)
	}
	return ret
}

/*
AddTrace adds a trace step, innermost call first.
*/
func (re *RuntimeError) AddTrace(step string) {
	re.Trace = append(re.Trace, step)
}

/*
ToJSONObject returns this RuntimeError as a JSON object.
*/
func (re *RuntimeError) ToJSONObject() map[string]interface{} {
	t := ""
	if re.Type != nil {
		t = re.Type.Error()
	}
	return map[string]interface{}{
		"Source": re.Source,
		"Kind":   re.Kind.String(),
		"Type":   t,
		"Detail": re.Detail,
		"Line":   re.Line,
		"Trace":  re.Trace,
	}
}

/*
MarshalJSON serializes this RuntimeError into a JSON string.
*/
func (re *RuntimeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(re.ToJSONObject())
}
