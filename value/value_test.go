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

import "testing"

func TestAddPromotesIntegerToFloat(t *testing.T) {
	v, err := Add(Integer(2), Float(1.5))
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := v.(Float); !ok || f != 3.5 {
		t.Errorf("Add(2, 1.5) = %v, want Float(3.5)", v)
	}
}

func TestAddStringConcatenation(t *testing.T) {
	v, err := Add(NewString("foo"), NewString("bar"))
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := v.(String); !ok || s.String() != "foobar" {
		t.Errorf("Add(foo, bar) = %v, want foobar", v)
	}
}

func TestArrayAddAssociativityAndLength(t *testing.T) {
	a := NewArray([]Value{Integer(1), Integer(2)})
	b := NewArray([]Value{Integer(3)})
	c := NewArray([]Value{Integer(4), Integer(5)})

	left, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	leftArr := left.(*Array)
	left2, err := Add(leftArr, c)
	if err != nil {
		t.Fatal(err)
	}

	right, err := Add(b, c)
	if err != nil {
		t.Fatal(err)
	}
	right2, err := Add(a, right.(*Array))
	if err != nil {
		t.Fatal(err)
	}

	lLen, _ := Length(left2)
	rLen, _ := Length(right2)
	aLen, _ := Length(a)
	bLen, _ := Length(b)
	if lLen != rLen {
		t.Errorf("(a+b)+c has length %d, a+(b+c) has length %d", lLen, rLen)
	}
	if combined, _ := Length(left); combined != aLen+bLen {
		t.Errorf("LENGTH(a+b) = %d, want LENGTH(a)+LENGTH(b) = %d", combined, aLen+bLen)
	}
}

func TestIntDivAndModRejectFloats(t *testing.T) {
	if _, err := IntDiv(Float(4), Integer(2)); err == nil {
		t.Error("expected // to reject a float operand")
	}
	if _, err := Mod(Integer(4), Float(2)); err == nil {
		t.Error("expected % to reject a float operand")
	}
}

func TestIntDivByZero(t *testing.T) {
	if _, err := IntDiv(Integer(4), Integer(0)); err == nil {
		t.Error("expected integer division by zero to error")
	}
}

func TestStringVsArraySlicingAsymmetry(t *testing.T) {
	s := NewString("abcde")
	sv, err := StringReadByIndex(s, NewArray([]Value{Integer(1), Integer(3)}))
	if err != nil {
		t.Fatal(err)
	}
	if sv.(String).String() != "bc" {
		t.Errorf("string slice [1,3) = %q, want \"bc\"", sv.(String).String())
	}

	a := NewArray([]Value{Integer(10), Integer(20), Integer(30), Integer(40), Integer(50)})
	av, err := ArrayReadByIndex(a, NewArray([]Value{Integer(1), Integer(3)}))
	if err != nil {
		t.Fatal(err)
	}
	got := av.(*Array).Items
	if len(got) != 3 || got[0] != Integer(20) || got[2] != Integer(40) {
		t.Errorf("array slice [1,3] = %v, want [20,30,40]", got)
	}
}

func TestStackLIFOOrder(t *testing.T) {
	s := NewStack()
	s.AddItem(Integer(1))
	s.AddItem(Integer(2))
	s.AddItem(Integer(3))

	v, err := s.PopItem()
	if err != nil || v != Integer(3) {
		t.Errorf("PopItem() = %v, %v, want 3, nil", v, err)
	}
	v, _ = s.PopItem()
	if v != Integer(2) {
		t.Errorf("second PopItem() = %v, want 2", v)
	}
}

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue()
	q.AddItem(Integer(1))
	q.AddItem(Integer(2))
	q.AddItem(Integer(3))

	v, err := q.PopItem()
	if err != nil || v != Integer(1) {
		t.Errorf("PopItem() = %v, %v, want 1, nil", v, err)
	}
	v, _ = q.PopItem()
	if v != Integer(2) {
		t.Errorf("second PopItem() = %v, want 2", v)
	}
}

func TestEmptyStackAndQueueError(t *testing.T) {
	if _, err := NewStack().PopItem(); err == nil {
		t.Error("expected an error popping an empty stack")
	}
	if _, err := NewQueue().ReadItem(); err == nil {
		t.Error("expected an error reading an empty queue")
	}
}

func TestPriorityQueueNewcomerBeforeEqualPriority(t *testing.T) {
	pq := NewPriorityQueue()
	pq.AddItem(NewString("first"), 5)
	pq.AddItem(NewString("second"), 5)

	// A newcomer of equal priority is inserted before the existing item,
	// further from the tail, so the older item is popped first: "first"
	// exits before "second".
	v, err := pq.PopItem()
	if err != nil {
		t.Fatal(err)
	}
	if v.(String).String() != "first" {
		t.Errorf("PopItem() = %v, want \"first\" to exit before \"second\"", v)
	}
}

func TestPriorityQueueOrdersByPriority(t *testing.T) {
	pq := NewPriorityQueue()
	pq.AddItem(NewString("low"), 1)
	pq.AddItem(NewString("hi"), 10)
	pq.AddItem(NewString("mid"), 5)

	v, _ := pq.PopItem()
	if v.(String).String() != "hi" {
		t.Errorf("first pop = %v, want \"hi\"", v)
	}
	v, _ = pq.PopItem()
	if v.(String).String() != "mid" {
		t.Errorf("second pop = %v, want \"mid\"", v)
	}
}

func TestDictionaryInsertLookup(t *testing.T) {
	d, err := NewDictionary(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Insert(NewString("k"), Integer(2)); err != nil {
		t.Fatal(err)
	}
	v, err := d.Lookup(NewString("k"))
	if err != nil || v != Integer(2) {
		t.Errorf("Lookup(k) = %v, %v, want 2, nil", v, err)
	}
}

func TestDictionaryRemoveThenLookupFails(t *testing.T) {
	d, _ := NewDictionary(nil)
	d.Insert(NewString("k"), Integer(1))
	if err := d.Remove(NewString("k")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Lookup(NewString("k")); err == nil {
		t.Error("expected lookup of a removed key to fail")
	}
}

func TestDictionarySurvivesRehash(t *testing.T) {
	d, _ := NewDictionary(nil)
	for i := 0; i < 50; i++ {
		key := NewString(string(rune('a' + i%26)))
		_ = d.Insert(Integer(i), Integer(i*2))
		_ = key
	}
	for i := 0; i < 50; i++ {
		v, err := d.Lookup(Integer(i))
		if err != nil || v != Integer(i*2) {
			t.Errorf("Lookup(%d) = %v, %v, want %d, nil", i, v, err, i*2)
		}
	}
}

func TestDictionaryDuplicateKeyRejected(t *testing.T) {
	d, _ := NewDictionary(nil)
	if err := d.Insert(Integer(1), Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := d.Insert(Integer(1), Integer(2)); err == nil {
		t.Error("expected a duplicate key insert to fail")
	}
}

func TestDictionaryProbeTraversesTombstones(t *testing.T) {
	// Insert two keys hashing to the same bucket, remove the first, then
	// confirm the second, which sits past the tombstone in the probe
	// chain, is still reachable (spec.md §9(c): the probe must not stop
	// at a tombstone).
	c, _ := NewDictionary(nil)
	first := Integer(0)
	home, _ := hashKey(first, len(c.slots))
	second := Integer(1)
	for {
		if h, _ := hashKey(second, len(c.slots)); h == home {
			break
		}
		second++
	}
	if err := c.Insert(first, Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := c.Insert(second, Integer(2)); err != nil {
		t.Fatal(err)
	}
	if err := c.Remove(first); err != nil {
		t.Fatal(err)
	}
	if v, err := c.Lookup(second); err != nil || v != Integer(2) {
		t.Errorf("Lookup(%d) past a tombstone = %v, %v, want 2, nil", second, v, err)
	}

	// Removing one key of a larger table leaves every other key reachable.
	d, _ := NewDictionary(nil)
	for i := 0; i < 8; i++ {
		if err := d.Insert(Integer(i), Integer(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Remove(Integer(3)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if i == 3 {
			continue
		}
		v, err := d.Lookup(Integer(i))
		if err != nil || v != Integer(i) {
			t.Errorf("Lookup(%d) after removing 3 = %v, %v, want %d, nil", i, v, err, i)
		}
	}
}

func TestReconcilePromotion(t *testing.T) {
	v, err := Reconcile(Float(0), Integer(4))
	if err != nil {
		t.Fatal(err)
	}
	if v != Float(4) {
		t.Errorf("Reconcile(Float, Integer) = %v, want Float(4)", v)
	}

	if _, err := Reconcile(Integer(0), Float(4)); err == nil {
		t.Error("expected Reconcile(Integer, Float) to fail; only int->float promotion is allowed")
	}
}
