//go:build linux

package udp_listener

import (
	"fmt"
	"net/netip"
	"rudp/application/network/datagram"
	"rudp/infrastructure/PAL/network/linux/epoll"

	"golang.org/x/sys/unix"
)

type SocketBinder struct {
}

func NewSocketBinder() Binder {
	return &SocketBinder{}
}

func (b *SocketBinder) Bind(addr netip.AddrPort) (datagram.Socket, error) {
	if !addr.Addr().Is4() {
		return nil, fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidAddress, addr)
	}

	fd, socketErr := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, unix.IPPROTO_UDP)
	if socketErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrSocketCreationFailed, socketErr)
	}

	shouldCloseFd := true
	defer func() {
		if shouldCloseFd {
			_ = unix.Close(fd)
		}
	}()

	sockaddr := &unix.SockaddrInet4{
		Port: int(addr.Port()),
		Addr: addr.Addr().As4(),
	}
	if bindErr := unix.Bind(fd, sockaddr); bindErr != nil {
		return nil, classifyBindError(addr, bindErr)
	}

	socket, socketWrapErr := epoll.NewDatagramSocket(fd)
	if socketWrapErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrSocketCreationFailed, socketWrapErr)
	}

	shouldCloseFd = false
	return socket, nil
}
