package graph

import "container/heap"

// Frontier is a min-priority queue of (item, priority) pairs in which the same
// item may appear several times. Stale duplicates are expected to be discarded
// by the consumer when popped (lazy deletion instead of decrease-key).
//
// Items with equal priority pop in insertion order.
type Frontier[T any] struct {
	entries entries[T]
	seq     int
	key     func(T) int
	best    map[int]float64
}

// NewFrontier returns an empty frontier. When key is non-nil, InsertIfBetter
// treats items with the same key as equivalent; when nil it always inserts.
func NewFrontier[T any](key func(T) int) *Frontier[T] {
	f := &Frontier[T]{key: key}
	if key != nil {
		f.best = make(map[int]float64)
	}
	return f
}

// Insert pushes item unconditionally.
func (f *Frontier[T]) Insert(item T, priority float64) {
	heap.Push(&f.entries, entry[T]{item: item, priority: priority, seq: f.seq})
	f.seq++
}

// InsertIfBetter pushes item only if no equivalent item was ever inserted with
// a priority less than or equal to priority. It reports whether it pushed.
func (f *Frontier[T]) InsertIfBetter(item T, priority float64) bool {
	if f.key != nil {
		k := f.key(item)
		if p, ok := f.best[k]; ok && p <= priority {
			return false
		}
		f.best[k] = priority
	}
	f.Insert(item, priority)
	return true
}

// PopMin removes and returns the item with the lowest priority. It panics on
// an empty frontier.
func (f *Frontier[T]) PopMin() (T, float64) {
	e := heap.Pop(&f.entries).(entry[T])
	return e.item, e.priority
}

// Peek returns the item with the lowest priority without removing it. It
// panics on an empty frontier.
func (f *Frontier[T]) Peek() (T, float64) {
	e := f.entries[0]
	return e.item, e.priority
}

// Empty reports whether no entry is left, stale duplicates included.
func (f *Frontier[T]) Empty() bool {
	return len(f.entries) == 0
}

// Size returns the number of queued entries, stale duplicates included.
func (f *Frontier[T]) Size() int {
	return len(f.entries)
}

type entry[T any] struct {
	item     T
	priority float64
	seq      int
}

type entries[T any] []entry[T]

func (h entries[T]) Len() int { return len(h) }

func (h entries[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
