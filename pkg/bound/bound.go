// Package bound implements a fixed-capacity FIFO queue over a circular
// buffer. Push and Pop are O(1) index arithmetic with no per-element
// allocation. The buffer carries one extra reserved slot so that full and
// empty stay distinguishable by comparing the head and tail indices alone,
// without a count field.
//
// The queue is not safe for concurrent use.
package bound

import (
	"iter"

	"github.com/unixisevil/queue/pkg/queue"
)

var _ queue.Queue[int] = (*BoundQueue[int])(nil)

// BoundQueue is a fixed-capacity ring buffer queue.
//
// Exactly the slots in the circular half-open range [head, tail) hold live
// elements; every other slot holds the zero value of T. Pop and Clear zero
// vacated slots so the queue never retains a reference the caller considers
// released.
type BoundQueue[T any] struct {
	buf  []T // requested capacity + 1 slots; one slot stays reserved
	head int // index of the oldest element, equal to tail when empty
	tail int // index of the next slot to write
}

// New creates a queue that holds up to size elements. The underlying buffer
// allocates size+1 slots; the reserved slot never stores an element and is
// not reported by Cap. A size below 1 is clamped to 1.
func New[T any](size int) *BoundQueue[T] {
	if size < 1 {
		size = 1
	}
	return &BoundQueue[T]{buf: make([]T, size+1)}
}

// next advances a slot index by one with wraparound.
func (q *BoundQueue[T]) next(i int) int {
	i++
	if i == len(q.buf) {
		return 0
	}
	return i
}

// Push stores item at the tail. If the queue is full the item is discarded,
// Push returns false, and the queue is unchanged.
func (q *BoundQueue[T]) Push(item T) bool {
	next := q.next(q.tail)
	if next == q.head {
		return false
	}
	q.buf[q.tail] = item
	q.tail = next
	return true
}

// Pop removes and returns the oldest element, or the zero value and false
// when the queue is empty. The vacated slot is zeroed.
func (q *BoundQueue[T]) Pop() (T, bool) {
	var zero T
	if q.head == q.tail {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = q.next(q.head)
	return v, true
}

// IsEmpty reports whether the queue holds no elements.
func (q *BoundQueue[T]) IsEmpty() bool { return q.head == q.tail }

// IsFull reports whether the next Push would discard its item. The
// comparison wraps, so fullness is detected even when tail sits in the last
// slot and head is 0.
func (q *BoundQueue[T]) IsFull() bool { return q.next(q.tail) == q.head }

// Len returns the number of elements currently stored.
func (q *BoundQueue[T]) Len() int {
	return (q.tail - q.head + len(q.buf)) % len(q.buf)
}

// Cap returns the capacity requested at construction. The raw allocation is
// one slot larger; that slot is an implementation detail and never reported.
func (q *BoundQueue[T]) Cap() int { return len(q.buf) - 1 }

// All returns a forward walk over the stored elements in FIFO order. The
// walk follows the same wraparound rule as Pop and stops at tail without
// visiting the reserved slot. It does not mutate the queue and can be
// restarted by calling All again. Pushing or popping while a walk is in
// progress is not supported.
func (q *BoundQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := q.head; i != q.tail; i = q.next(i) {
			if !yield(q.buf[i]) {
				return
			}
		}
	}
}

// Mut is like All but yields a pointer to each occupied slot so elements
// can be updated in place.
func (q *BoundQueue[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := q.head; i != q.tail; i = q.next(i) {
			if !yield(&q.buf[i]) {
				return
			}
		}
	}
}

// Drain returns a sequence that consumes the queue by repeated Pop. Unlike
// All it is not restartable: every yielded element has been removed, and the
// queue is empty once the sequence ends.
func (q *BoundQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Clear releases every stored element and resets the queue to empty. Each
// occupied slot is zeroed exactly once; slots outside [head, tail) are never
// touched.
func (q *BoundQueue[T]) Clear() {
	var zero T
	for i := q.head; i != q.tail; i = q.next(i) {
		q.buf[i] = zero
	}
	q.head, q.tail = 0, 0
}
