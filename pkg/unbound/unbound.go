// Package unbound implements an unbounded FIFO queue over a singly-linked
// chain of nodes, one allocation per element. Push and Pop are O(1) through
// the head and tail pointers.
//
// The queue is not safe for concurrent use.
package unbound

import (
	"iter"

	"github.com/unixisevil/queue/pkg/queue"
)

var _ queue.Queue[string] = (*UnboundQueue[string])(nil)

// node holds one element and the link to its successor. A node is reachable
// from exactly one predecessor, or from the queue head for the first node.
type node[T any] struct {
	next *node[T]
	val  T
}

// UnboundQueue is an unbounded linked-chain queue.
//
// Invariant: head == nil, tail == nil and length == 0 hold together, and
// walking next links from head reaches tail in exactly length-1 steps. The
// tail pointer is an append alias only; the chain is released exclusively
// by detaching nodes at the head.
type UnboundQueue[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int // cached count, maintained by every Push and Pop
}

// New creates an empty queue.
func New[T any]() *UnboundQueue[T] { return &UnboundQueue[T]{} }

// Push appends item at the tail. It allocates one node and always returns
// true; the queue has no capacity limit.
func (q *UnboundQueue[T]) Push(item T) bool {
	n := &node[T]{val: item}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
	return true
}

// Pop detaches and returns the head element, or the zero value and false
// when the queue is empty. The detached node is unlinked so the rest of the
// chain never stays reachable through it.
func (q *UnboundQueue[T]) Pop() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.length--
	return n.val, true
}

// IsEmpty reports whether the queue holds no elements.
func (q *UnboundQueue[T]) IsEmpty() bool { return q.head == nil }

// Len returns the cached element count.
func (q *UnboundQueue[T]) Len() int { return q.length }

// All returns a forward walk of the chain from head in FIFO order. It
// detaches nothing and can be restarted by calling All again. Pushing or
// popping while a walk is in progress is not supported.
func (q *UnboundQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Mut is like All but yields a pointer to each stored element so it can be
// updated in place.
func (q *UnboundQueue[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.val) {
				return
			}
		}
	}
}

// Drain returns a sequence that consumes the queue by repeated Pop. Unlike
// All it is not restartable: every yielded element has been removed, and the
// queue is empty once the sequence ends.
func (q *UnboundQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Clear detaches and discards nodes one at a time until the chain is empty.
// Teardown always walks the chain iteratively; the queue never releases a
// long chain through one cascading reference.
func (q *UnboundQueue[T]) Clear() {
	for {
		if _, ok := q.Pop(); !ok {
			return
		}
	}
}
