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
Package value implements the closed, tagged virtual-value universe
(spec.md §3, §4.3): Integer, Float, Character, String, Boolean, Tuple,
Array, Stack, Queue, PriorityQueue, Dictionary and DictionaryPair.
Every variant checks its own validity at construction so invalid states
are unrepresentable once a Value exists.
*/
package value

import (
	"strconv"

	"devt.de/krotik/bp/bperr"
)

/*
Kind identifies a virtual-value variant.
*/
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindCharacter
	KindString
	KindBoolean
	KindTuple
	KindArray
	KindStack
	KindQueue
	KindPriorityQueue
	KindDictionaryPair
	KindDictionary
)

var kindNames = map[Kind]string{
	KindInteger: "INTEGER", KindFloat: "FLOAT", KindCharacter: "CHARACTER",
	KindString: "STRING", KindBoolean: "BOOLEAN", KindTuple: "TUPLE",
	KindArray: "ARRAY", KindStack: "STACK", KindQueue: "QUEUE",
	KindPriorityQueue: "PRIORITYQUEUE", KindDictionaryPair: "DICTIONARYPAIR",
	KindDictionary: "DICTIONARY",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

/*
Value is any virtual-value instance. Every concrete type in this package
implements it.
*/
type Value interface {
	Kind() Kind
}

/*
Integer is a signed integer value.
*/
type Integer int64

func (Integer) Kind() Kind { return KindInteger }

/*
NewIntegerFromLiteral parses a lexer-produced integer literal.
*/
func NewIntegerFromLiteral(lit string) (Integer, error) {
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return 0, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
			"not a valid integer literal: "+lit, 0)
	}
	return Integer(n), nil
}

/*
Float is an IEEE-754 double.
*/
type Float float64

func (Float) Kind() Kind { return KindFloat }

/*
NewFloatFromLiteral parses a lexer-produced decimal or integer literal.
*/
func NewFloatFromLiteral(lit string) (Float, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
			"not a valid float literal: "+lit, 0)
	}
	return Float(f), nil
}

/*
Character is one code point.
*/
type Character rune

func (Character) Kind() Kind { return KindCharacter }

/*
NewCharacterFromLiteral converts a lexer-produced single-character
literal payload.
*/
func NewCharacterFromLiteral(lit string) (Character, error) {
	r := []rune(lit)
	if len(r) != 1 {
		return 0, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
			"not a single character: "+lit, 0)
	}
	return Character(r[0]), nil
}

/*
String is a code-point sequence, indexable per spec.md §4.3.
*/
type String struct {
	Runes []rune
}

func (String) Kind() Kind { return KindString }

/*
NewString builds a String value from raw text.
*/
func NewString(s string) String {
	return String{Runes: []rune(s)}
}

func (s String) String() string {
	return string(s.Runes)
}

/*
Boolean is a two-valued truth value: true for TRUE, false for FALSE
(spec.md §4.3).
*/
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

/*
NewBooleanFromLiteral accepts the lexer's TRUE/FALSE payload.
*/
func NewBooleanFromLiteral(lit string) (Boolean, error) {
	switch lit {
	case "TRUE":
		return Boolean(true), nil
	case "FALSE":
		return Boolean(false), nil
	}
	return false, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
		"not a valid boolean literal: "+lit, 0)
}

/*
SameKind reports whether two values share a runtime kind, treating an
Integer as compatible with an existing Float the way Reconcile does
(spec.md §8's "declared kind" invariant).
*/
func SameKind(a, b Value) bool {
	_, err := Reconcile(a, b)
	return err == nil
}

/*
Reconcile checks incoming against existing's kind and returns the value
to actually store, promoting an Integer to Float when existing already
holds a Float (spec.md §4.4, the same int->float promotion rule
declaration-with-value applies). Any other kind mismatch is an error.
*/
func Reconcile(existing, incoming Value) (Value, error) {
	if existing.Kind() == incoming.Kind() {
		return incoming, nil
	}
	if existing.Kind() == KindFloat {
		if i, ok := incoming.(Integer); ok {
			return Float(i), nil
		}
	}
	return nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
		"value kind "+incoming.Kind().String()+" is not compatible with "+existing.Kind().String(), 0)
}

/*
DeepCopy returns an independent copy of v so that dereferencing a
variable for use as an operand can never alias frame state (spec.md
§4.4).
*/
func DeepCopy(v Value) Value {
	switch t := v.(type) {
	case Integer, Float, Character, Boolean:
		return t
	case String:
		cp := make([]rune, len(t.Runes))
		copy(cp, t.Runes)
		return String{Runes: cp}
	case *Tuple:
		return &Tuple{Items: copyValues(t.Items)}
	case *Array:
		return &Array{Items: copyValues(t.Items)}
	case *Stack:
		return &Stack{Items: copyValues(t.Items)}
	case *Queue:
		return &Queue{Items: copyValues(t.Items)}
	case *PriorityQueue:
		items := make([]PriorityQueueItem, len(t.Items))
		for i, it := range t.Items {
			items[i] = PriorityQueueItem{Value: DeepCopy(it.Value), Priority: it.Priority}
		}
		return &PriorityQueue{Items: items}
	case *DictionaryPair:
		return &DictionaryPair{Key: DeepCopy(t.Key), Val: DeepCopy(t.Val)}
	case *Dictionary:
		return t.clone()
	}
	return v
}

func copyValues(vs []Value) []Value {
	cp := make([]Value, len(vs))
	for i, v := range vs {
		cp[i] = DeepCopy(v)
	}
	return cp
}
