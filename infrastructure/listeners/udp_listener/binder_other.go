//go:build !linux

package udp_listener

import (
	"errors"
	"fmt"
	"net/netip"
	"rudp/application/network/datagram"
)

type SocketBinder struct {
}

func NewSocketBinder() Binder {
	return &SocketBinder{}
}

func (b *SocketBinder) Bind(_ netip.AddrPort) (datagram.Socket, error) {
	return nil, fmt.Errorf("%w: %w", ErrSocketCreationFailed, errors.ErrUnsupported)
}
