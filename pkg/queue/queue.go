// Package queue defines the capability contract shared by the two storage
// engines in this module: the fixed-capacity ring buffer in pkg/bound and
// the linked-chain queue in pkg/unbound.
//
// Queues are single-threaded. No method is safe for concurrent use; a queue
// shared across goroutines must be serialized by the caller, for example
// behind one mutex guarding the whole queue.
package queue

// Queue is a generic FIFO queue.
type Queue[T any] interface {
	// Push appends an item at the tail of the FIFO order.
	// It returns false when a bounded engine discards the item because the
	// queue is full; unbounded engines always return true.
	Push(item T) bool

	// Pop removes and returns the oldest element.
	// On an empty queue it returns the zero value and false. An empty queue
	// is a normal outcome, not an error.
	Pop() (T, bool)

	// IsEmpty reports in O(1) whether the queue holds no elements.
	IsEmpty() bool
}
