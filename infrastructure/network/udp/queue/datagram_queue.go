package queue

import (
	"io"
	"net/netip"
	"rudp/application/network/datagram"
	"rudp/infrastructure/settings"
	"sync"
	"sync/atomic"
)

// datagramSlot holds a single UDP datagram. Slots are preallocated and reused,
// so no per-datagram allocations happen once the queue is created.
type datagramSlot struct {
	n    int
	from netip.AddrPort
	data [settings.MaxPacketSize]byte
}

// DatagramQueue is a bounded ring buffer of datagramSlot.
// When full, new datagrams are dropped so the socket keeps draining.
type DatagramQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     []datagramSlot
	head    int
	tail    int
	count   int
	closed  bool
	dropped atomic.Uint64
}

func NewDatagramQueue(capacity int) *DatagramQueue {
	if capacity <= 0 {
		capacity = settings.DefaultQueueCapacity
	}
	q := &DatagramQueue{
		buf: make([]datagramSlot, capacity),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue copies the datagram into the next free slot if there is space.
func (q *DatagramQueue) Enqueue(d datagram.Datagram) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	if q.count == len(q.buf) {
		q.dropped.Add(1)
		return false
	}

	slot := &q.buf[q.tail]
	if len(d.Payload) > len(slot.data) {
		q.dropped.Add(1)
		return false
	}

	slot.n = copy(slot.data[:], d.Payload)
	slot.from = d.From

	q.tail = (q.tail + 1) % len(q.buf)
	q.count++
	q.cond.Signal()
	return true
}

// ReadInto blocks until there is a datagram or the queue is closed.
// Datagrams still queued at Close are drained before io.EOF is returned.
func (q *DatagramQueue) ReadInto(dst []byte) (int, netip.AddrPort, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.closed {
		q.cond.Wait()
	}

	if q.count == 0 && q.closed {
		return 0, netip.AddrPort{}, io.EOF
	}

	slot := &q.buf[q.head]
	if len(dst) < slot.n {
		return 0, netip.AddrPort{}, io.ErrShortBuffer
	}

	n := copy(dst, slot.data[:slot.n])
	from := slot.from

	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return n, from, nil
}

func (q *DatagramQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped returns how many datagrams were rejected for lack of space.
func (q *DatagramQueue) Dropped() uint64 {
	return q.dropped.Load()
}

func (q *DatagramQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
