package listeners

import (
	"net/netip"
	"rudp/application/network/connection"
)

// DatagramListener is the caller-facing lifecycle of a UDP listener.
type DatagramListener interface {
	Start(addr netip.AddrPort) error
	Close() error
	// Accept never blocks. It returns nil, nil when no peer is pending.
	Accept() (*connection.Pending, error)
	IsAlive() bool
}
