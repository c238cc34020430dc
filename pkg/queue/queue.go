package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue has no free capacity.
var ErrQueueFull = errors.New("queue is full")

// Queue is a FIFO of pending items shared between a producer and the game loop.
// Implementations must be thread-safe.
type Queue interface {
	// Enqueue adds an item to the end of the queue without blocking.
	Enqueue(item interface{}) error
	// ReadAllMessages removes and returns every pending item in order.
	ReadAllMessages() ([]interface{}, error)
	// Size returns the number of pending items.
	Size() int
	// Clear drops every pending item.
	Clear()
}
