package connection

import (
	"net/netip"
	"time"
)

// Pending is a peer discovered by the handshake layer and queued until the
// embedding application picks it up via Accept.
type Pending struct {
	Peer         netip.AddrPort
	Hello        []byte
	DiscoveredAt time.Time
}
