package queue

import (
	"net/netip"
	"rudp/application/network/connection"
	"rudp/application/network/datagram"
)

// DatagramBuffer decouples the receive loop from datagram processing.
type DatagramBuffer interface {
	// Enqueue copies d and reports whether it was accepted. It never blocks.
	Enqueue(d datagram.Datagram) bool
	// ReadInto blocks until a datagram is available or the buffer is closed.
	ReadInto(dst []byte) (int, netip.AddrPort, error)
	Close()
}

// PendingConnections holds peers discovered by the handshake layer until accepted.
type PendingConnections interface {
	Offer(p connection.Pending) error
	TryPop() (*connection.Pending, bool)
	SetCapacity(capacity int)
	Capacity() int
	Len() int
	Open()
	Close()
}

var (
	_ DatagramBuffer     = (*DatagramQueue)(nil)
	_ PendingConnections = (*PendingQueue)(nil)
)
