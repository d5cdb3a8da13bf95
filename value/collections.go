/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package value

import (
	"devt.de/krotik/bp/bperr"
)

/*
Tuple is an ordered, immutable-after-construction list of values.
*/
type Tuple struct {
	Items []Value
}

func (*Tuple) Kind() Kind { return KindTuple }

/*
NewTuple builds a Tuple from its literal elements.
*/
func NewTuple(items []Value) *Tuple {
	return &Tuple{Items: items}
}

/*
Array is an ordered, mutable list of values supporting append and join
(spec.md §3). It has no remove operation.
*/
type Array struct {
	Items []Value
}

func (*Array) Kind() Kind { return KindArray }

/*
NewArray builds an Array from its literal elements.
*/
func NewArray(items []Value) *Array {
	return &Array{Items: items}
}

/*
Append adds v to the tail of the array, in place.
*/
func (a *Array) Append(v Value) {
	a.Items = append(a.Items, v)
}

/*
JoinArrays implements ARRAY + ARRAY (spec.md §4.3): concatenation.
*/
func JoinArrays(a, b *Array) *Array {
	items := make([]Value, 0, len(a.Items)+len(b.Items))
	items = append(items, a.Items...)
	items = append(items, b.Items...)
	return &Array{Items: items}
}

/*
indexAsInt extracts a plain int from an Integer index argument.
*/
func indexAsInt(v Value) (int, error) {
	i, ok := v.(Integer)
	if !ok {
		return 0, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "index must be an integer", 0)
	}
	return int(i), nil
}

/*
indexRange extracts the two-element [a,b] integer index pair used by
READBYINDEX's range form.
*/
func indexRange(v Value) (a, b int, ok bool, err error) {
	items, isRange := collectionItems(v)
	if !isRange || len(items) != 2 {
		return 0, 0, false, nil
	}
	lo, err := indexAsInt(items[0])
	if err != nil {
		return 0, 0, false, err
	}
	hi, err := indexAsInt(items[1])
	if err != nil {
		return 0, 0, false, err
	}
	return lo, hi, true, nil
}

func collectionItems(v Value) ([]Value, bool) {
	switch t := v.(type) {
	case *Array:
		return t.Items, true
	case *Tuple:
		return t.Items, true
	}
	return nil, false
}

/*
StringReadByIndex implements the half-open [a,b) string-slicing form and
the single-code-point form (spec.md §4.3 "String indexing").
*/
func StringReadByIndex(s String, idx Value) (Value, error) {
	if lo, hi, ok, err := indexRange(idx); err != nil {
		return nil, err
	} else if ok {
		if lo < 0 || hi > len(s.Runes) || lo > hi {
			return nil, bperr.New("", bperr.Runtime, bperr.ErrIndexOutOfRange,
				"string slice index out of range", 0)
		}
		return String{Runes: append([]rune{}, s.Runes[lo:hi]...)}, nil
	}

	i, err := indexAsInt(idx)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(s.Runes) {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrIndexOutOfRange,
			"string index out of range", 0)
	}
	return Character(s.Runes[i]), nil
}

/*
ArrayReadByIndex implements the inclusive [a,b] array-slicing form and
the single-element form (spec.md §4.3 "Array indexing" — the off-by-one
asymmetry against string indexing is a deliberate preserved quirk, §9).
*/
func ArrayReadByIndex(a *Array, idx Value) (Value, error) {
	if lo, hi, ok, err := indexRange(idx); err != nil {
		return nil, err
	} else if ok {
		if lo < 0 || hi >= len(a.Items) || lo > hi {
			return nil, bperr.New("", bperr.Runtime, bperr.ErrIndexOutOfRange,
				"array slice index out of range", 0)
		}
		return &Array{Items: append([]Value{}, a.Items[lo:hi+1]...)}, nil
	}

	i, err := indexAsInt(idx)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(a.Items) {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrIndexOutOfRange,
			"array index out of range", 0)
	}
	return a.Items[i], nil
}

/*
Length returns the LENGTH of a collection or string (spec.md §4.4).
*/
func Length(v Value) (int, error) {
	switch t := v.(type) {
	case String:
		return len(t.Runes), nil
	case *Tuple:
		return len(t.Items), nil
	case *Array:
		return len(t.Items), nil
	case *Stack:
		return len(t.Items), nil
	case *Queue:
		return len(t.Items), nil
	case *PriorityQueue:
		return len(t.Items), nil
	case *Dictionary:
		return t.Count, nil
	}
	return 0, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "value has no length", 0)
}
