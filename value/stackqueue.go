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

import "devt.de/krotik/bp/bperr"

/*
Stack holds a list whose tail is the top (spec.md §4.3). ADDITEM appends
to the tail, giving LIFO order.
*/
type Stack struct {
	Items []Value
}

func (*Stack) Kind() Kind { return KindStack }

/*
NewStack returns an empty stack (the zero value of the STACK declarator,
spec.md §4.4 "declaration-without-value").
*/
func NewStack() *Stack { return &Stack{} }

/*
AddItem pushes v onto the stack's tail.
*/
func (s *Stack) AddItem(v Value) {
	s.Items = append(s.Items, v)
}

/*
ReadItem returns the tail element without removing it.
*/
func (s *Stack) ReadItem() (Value, error) {
	if len(s.Items) == 0 {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrEmptyCollection, "stack is empty", 0)
	}
	return s.Items[len(s.Items)-1], nil
}

/*
PopItem removes and returns the tail element.
*/
func (s *Stack) PopItem() (Value, error) {
	v, err := s.ReadItem()
	if err != nil {
		return nil, err
	}
	s.Items = s.Items[:len(s.Items)-1]
	return v, nil
}

/*
Queue holds a list whose tail is the head of the queue, i.e. the next
item to be read or popped (spec.md §4.3). ADDITEM prepends to the
index-0 end, so the oldest item is always closest to the tail.
*/
type Queue struct {
	Items []Value
}

func (*Queue) Kind() Kind { return KindQueue }

/*
NewQueue returns an empty queue.
*/
func NewQueue() *Queue { return &Queue{} }

/*
AddItem enqueues v at index 0, the end opposite the tail.
*/
func (q *Queue) AddItem(v Value) {
	q.Items = append([]Value{v}, q.Items...)
}

/*
ReadItem returns the tail element (the oldest enqueued item) without
removing it.
*/
func (q *Queue) ReadItem() (Value, error) {
	if len(q.Items) == 0 {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrEmptyCollection, "queue is empty", 0)
	}
	return q.Items[len(q.Items)-1], nil
}

/*
PopItem removes and returns the tail element.
*/
func (q *Queue) PopItem() (Value, error) {
	v, err := q.ReadItem()
	if err != nil {
		return nil, err
	}
	q.Items = q.Items[:len(q.Items)-1]
	return v, nil
}

/*
PriorityQueueItem pairs a value with its integer priority.
*/
type PriorityQueueItem struct {
	Value    Value
	Priority int
}

/*
PriorityQueue keeps items sorted ascending by priority; the tail holds
the highest-priority item (spec.md §4.3).
*/
type PriorityQueue struct {
	Items []PriorityQueueItem
}

func (*PriorityQueue) Kind() Kind { return KindPriorityQueue }

/*
NewPriorityQueue returns an empty priority queue.
*/
func NewPriorityQueue() *PriorityQueue { return &PriorityQueue{} }

/*
AddItem inserts value immediately before the first existing item whose
priority is >= priority, or appends it if none exists. This places a
newcomer ahead of (i.e. exiting after) any existing item of equal
priority (spec.md §8 "Boundary behaviours").
*/
func (pq *PriorityQueue) AddItem(v Value, priority int) {
	insertAt := len(pq.Items)
	for i, it := range pq.Items {
		if it.Priority >= priority {
			insertAt = i
			break
		}
	}

	pq.Items = append(pq.Items, PriorityQueueItem{})
	copy(pq.Items[insertAt+1:], pq.Items[insertAt:])
	pq.Items[insertAt] = PriorityQueueItem{Value: v, Priority: priority}
}

/*
ReadItem returns the tail (highest-priority) item's value.
*/
func (pq *PriorityQueue) ReadItem() (Value, error) {
	if len(pq.Items) == 0 {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrEmptyCollection, "priority queue is empty", 0)
	}
	return pq.Items[len(pq.Items)-1].Value, nil
}

/*
PopItem removes and returns the tail (highest-priority) item's value.
*/
func (pq *PriorityQueue) PopItem() (Value, error) {
	v, err := pq.ReadItem()
	if err != nil {
		return nil, err
	}
	pq.Items = pq.Items[:len(pq.Items)-1]
	return v, nil
}
