package queue

import (
	"errors"
	"rudp/application/network/connection"
	"sync"
)

var (
	ErrFull   = errors.New("pending connection queue is full")
	ErrClosed = errors.New("pending connection queue is closed")
)

// PendingQueue is a FIFO of discovered peers bounded by the listener's
// connection capacity. TryPop never blocks. A new queue is open; Close
// discards queued peers and rejects offers until Open.
type PendingQueue struct {
	mu       sync.Mutex
	items    []connection.Pending
	capacity int
	closed   bool
}

func NewPendingQueue(capacity int) *PendingQueue {
	if capacity < 0 {
		capacity = 0
	}
	return &PendingQueue{
		items:    make([]connection.Pending, 0, capacity),
		capacity: capacity,
	}
}

func (q *PendingQueue) Offer(p connection.Pending) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if len(q.items) >= q.capacity {
		return ErrFull
	}
	p.Hello = append([]byte(nil), p.Hello...)
	q.items = append(q.items, p)
	return nil
}

func (q *PendingQueue) TryPop() (*connection.Pending, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}
	head := q.items[0]
	q.items[0] = connection.Pending{}
	q.items = q.items[1:]
	return &head, true
}

// SetCapacity changes the admission limit. Peers already queued above a
// reduced capacity stay queued; only new offers are rejected.
func (q *PendingQueue) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	q.mu.Lock()
	q.capacity = capacity
	q.mu.Unlock()
}

func (q *PendingQueue) Capacity() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.capacity
}

func (q *PendingQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *PendingQueue) Open() {
	q.mu.Lock()
	q.closed = false
	q.mu.Unlock()
}

// Close drops every queued peer. Offers racing with Close either land before
// it and are dropped, or are rejected with ErrClosed.
func (q *PendingQueue) Close() {
	q.mu.Lock()
	q.closed = true
	clear(q.items)
	q.items = q.items[:0]
	q.mu.Unlock()
}
