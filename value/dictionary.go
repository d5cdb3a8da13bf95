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
	"fmt"
	"hash/fnv"
	"math"

	"devt.de/krotik/common/errorutil"

	"devt.de/krotik/bp/bperr"
)

/*
DictionaryPair is the transient (key, value) carrier produced by the
DICTIONARY_PAIR structure graph (spec.md §3).
*/
type DictionaryPair struct {
	Key Value
	Val Value
}

func (*DictionaryPair) Kind() Kind { return KindDictionaryPair }

/*
dictSlot is one table slot of a Dictionary. A slot is "empty" when
neither used nor tomb is set; "live" when used; "tombstoned" when it
held a pair that was later removed (spec.md §4.3 "Remove").
*/
type dictSlot struct {
	key  Value
	val  Value
	used bool
	tomb bool
}

/*
Dictionary is an open-addressed hash table with linear probing
(spec.md §4.3). The implementation follows the corrected semantics of
spec.md §9 (a)(b)(c): real exponentiation for initial capacity,
wrap-around probing in removal, and tombstone-traversing lookup that
only stops at a truly empty slot.
*/
type Dictionary struct {
	Count int
	slots []dictSlot
}

func (*Dictionary) Kind() Kind { return KindDictionary }

/*
initialCapacity computes max(8, 2^(round(log2(n))+1)) for n initial
pairs, per spec.md §4.3 and the corrected reading of §9(a) ("the source
writes this as XOR of integers, which is a bug; use real exponentiation").
*/
func initialCapacity(n int) int {
	if n == 0 {
		return 8
	}
	exp := math.Round(math.Log2(float64(n))) + 1
	cap := int(math.Pow(2, exp))
	if cap < 8 {
		cap = 8
	}
	return cap
}

/*
NewDictionary builds a Dictionary from initial pairs, rejecting
duplicate keys the way Insert does.
*/
func NewDictionary(pairs []*DictionaryPair) (*Dictionary, error) {
	d := &Dictionary{slots: make([]dictSlot, initialCapacity(len(pairs)))}
	for _, p := range pairs {
		if err := d.Insert(p.Key, p.Val); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dictionary) clone() *Dictionary {
	cp := &Dictionary{Count: d.Count, slots: make([]dictSlot, len(d.slots))}
	for i, s := range d.slots {
		cp.slots[i] = s
		if s.used {
			cp.slots[i].key = DeepCopy(s.key)
			cp.slots[i].val = DeepCopy(s.val)
		}
	}
	return cp
}

/*
hashKey reduces a scalar virtual value to a table index modulo capacity.
Only scalar kinds (spec.md §4.3 "the key's underlying scalar value") are
valid dictionary keys.
*/
func hashKey(key Value, capacity int) (uint64, error) {
	var canonical string

	switch k := key.(type) {
	case Integer:
		canonical = fmt.Sprintf("i:%d", k)
	case Float:
		canonical = fmt.Sprintf("f:%v", float64(k))
	case Character:
		canonical = fmt.Sprintf("c:%d", k)
	case Boolean:
		canonical = fmt.Sprintf("b:%v", bool(k))
	case String:
		canonical = "s:" + string(k.Runes)
	default:
		return 0, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
			"dictionary keys must be a scalar value", 0)
	}

	h := fnv.New64a()
	h.Write([]byte(canonical))
	return h.Sum64() % uint64(capacity), nil
}

func keysEqual(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case Character:
		y, ok := b.(Character)
		return ok && x == y
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && string(x.Runes) == string(y.Runes)
	}
	return false
}

/*
resize doubles the table and reinserts every live pair, clearing all
tombstones (spec.md §4.3 "Load factor").
*/
func (d *Dictionary) resize() {
	old := d.slots
	d.slots = make([]dictSlot, len(old)*2)
	d.Count = 0
	for _, s := range old {
		if s.used {
			errorutil.AssertOk(d.Insert(s.key, s.val))
		}
	}
}

/*
Insert adds a new key-value pair, rejecting duplicate keys (spec.md
§4.3 "Insert"). It probes forward with wrap-around, remembering the
first tombstone seen so a deleted slot can be reused instead of growing
the probe chain indefinitely.
*/
func (d *Dictionary) Insert(key, val Value) error {
	if (d.Count+1)*2 > len(d.slots) {
		d.resize()
	}

	start, err := hashKey(key, len(d.slots))
	if err != nil {
		return err
	}

	firstTomb := -1
	capacity := len(d.slots)
	for i := 0; i < capacity; i++ {
		idx := (int(start) + i) % capacity
		slot := &d.slots[idx]

		if !slot.used && !slot.tomb {
			target := idx
			if firstTomb >= 0 {
				target = firstTomb
			}
			d.slots[target] = dictSlot{key: key, val: val, used: true}
			d.Count++
			return nil
		}

		if slot.used {
			if keysEqual(slot.key, key) {
				return bperr.New("", bperr.Runtime, bperr.ErrKeyNotFound,
					"duplicate dictionary key on insert", 0)
			}
			continue
		}

		// tombstone: remember the first one, keep probing for duplicates
		if firstTomb < 0 {
			firstTomb = idx
		}
	}

	if firstTomb >= 0 {
		d.slots[firstTomb] = dictSlot{key: key, val: val, used: true}
		d.Count++
		return nil
	}

	return bperr.New("", bperr.Runtime, bperr.ErrInvalidState, "dictionary table is full", 0)
}

/*
find probes from hash(key) forward, traversing tombstones and stopping
only on a match or a truly empty (never-used) slot — the corrected
reading of spec.md §9(c).
*/
func (d *Dictionary) find(key Value) (int, bool, error) {
	capacity := len(d.slots)
	start, err := hashKey(key, capacity)
	if err != nil {
		return 0, false, err
	}

	for i := 0; i < capacity; i++ {
		idx := (int(start) + i) % capacity
		slot := &d.slots[idx]

		if slot.used && keysEqual(slot.key, key) {
			return idx, true, nil
		}
		if !slot.used && !slot.tomb {
			return 0, false, nil
		}
		// tombstone or non-matching live slot: keep probing
	}

	return 0, false, nil
}

/*
Lookup returns the value stored under key (spec.md §4.3 "Lookup").
*/
func (d *Dictionary) Lookup(key Value) (Value, error) {
	idx, ok, err := d.find(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrKeyNotFound, "key not found in dictionary", 0)
	}
	return d.slots[idx].val, nil
}

/*
Remove deletes the pair stored under key, marking the slot a tombstone
so later probes continue past it (spec.md §4.3 "Remove", and §9(b): the
probe that locates the slot must wrap around the table, unlike the
source's "postion" typo which silently disabled wrap-around).
*/
func (d *Dictionary) Remove(key Value) error {
	idx, ok, err := d.find(key)
	if err != nil {
		return err
	}
	if !ok {
		return bperr.New("", bperr.Runtime, bperr.ErrKeyNotFound, "key not found in dictionary", 0)
	}
	d.slots[idx] = dictSlot{tomb: true}
	d.Count--
	return nil
}

/*
ListKeys returns the live keys in table order (spec.md §4.3 "LISTKEYS").
*/
func (d *Dictionary) ListKeys() *Array {
	keys := make([]Value, 0, d.Count)
	for _, s := range d.slots {
		if s.used {
			keys = append(keys, s.key)
		}
	}
	return &Array{Items: keys}
}
