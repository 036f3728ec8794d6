package orderbook

import "container/heap"

// Entry is the handle returned by PriorityQueue.Insert. It records its own
// heap slot, which is rewritten on every swap, so it keeps resolving to the
// same element until it is removed.
type Entry[V any] struct {
	key   *Key
	value V
	index int
}

func (e *Entry[V]) Key() Key {
	return *e.key
}

func (e *Entry[V]) Value() V {
	return e.value
}

// entryHeap implements heap.Interface
type entryHeap[V any] struct {
	items []*Entry[V]
	cmp   Comparator
}

func (h entryHeap[V]) Len() int {
	return len(h.items)
}

func (h entryHeap[V]) Less(i, j int) bool {
	return h.cmp(*h.items[i].key, *h.items[j].key) < 0
}

func (h entryHeap[V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *entryHeap[V]) Push(x any) {
	e := x.(*Entry[V])
	e.index = len(h.items)
	h.items = append(h.items, e)
}

func (h *entryHeap[V]) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	e.index = -1
	return e
}

// PriorityQueue is an adaptable binary heap. The minimum is defined by the
// comparator given to NewPriorityQueue.
type PriorityQueue[V any] struct {
	h entryHeap[V]
}

func NewPriorityQueue[V any](cmp Comparator) *PriorityQueue[V] {
	return &PriorityQueue[V]{
		h: entryHeap[V]{cmp: cmp},
	}
}

func (q *PriorityQueue[V]) Len() int {
	return q.h.Len()
}

func (q *PriorityQueue[V]) IsEmpty() bool {
	return q.h.Len() == 0
}

// Insert adds value under key. The key is held by reference.
func (q *PriorityQueue[V]) Insert(key *Key, value V) *Entry[V] {
	e := &Entry[V]{key: key, value: value}
	heap.Push(&q.h, e)
	return e
}

// Min returns the root entry without removing it.
func (q *PriorityQueue[V]) Min() (*Entry[V], bool) {
	if q.IsEmpty() {
		return nil, false
	}
	return q.h.items[0], true
}

func (q *PriorityQueue[V]) RemoveMin() (*Entry[V], bool) {
	if q.IsEmpty() {
		return nil, false
	}
	return heap.Pop(&q.h).(*Entry[V]), true
}

// Remove takes a live entry out of the queue from any position.
func (q *PriorityQueue[V]) Remove(e *Entry[V]) error {
	if !q.owns(e) {
		return ErrEntryNotLive
	}
	heap.Remove(&q.h, e.index)
	return nil
}

// ReplaceKey overwrites the entry's key in place. Heap order is not restored;
// call Heapify once all edits are done.
func (q *PriorityQueue[V]) ReplaceKey(e *Entry[V], key Key) error {
	if !q.owns(e) {
		return ErrEntryNotLive
	}
	*e.key = key
	return nil
}

// Heapify rebuilds heap order over the whole backing array.
func (q *PriorityQueue[V]) Heapify() {
	heap.Init(&q.h)
}

func (q *PriorityQueue[V]) owns(e *Entry[V]) bool {
	return e != nil && e.index >= 0 && e.index < len(q.h.items) && q.h.items[e.index] == e
}
