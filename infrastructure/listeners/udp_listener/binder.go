package udp_listener

import (
	"errors"
	"fmt"
	"net/netip"
	"rudp/application/network/datagram"
	"syscall"
)

// Binder creates a non-blocking datagram socket bound to addr.
// On success the caller is the sole owner of the returned socket.
type Binder interface {
	Bind(addr netip.AddrPort) (datagram.Socket, error)
}

func classifyBindError(addr netip.AddrPort, err error) error {
	if errors.Is(err, syscall.EADDRINUSE) {
		return fmt.Errorf("%w: %s: %w", ErrAddressInUse, addr, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrBindingError, addr, err)
}
