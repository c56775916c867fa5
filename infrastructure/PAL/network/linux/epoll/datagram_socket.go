//go:build linux

// Package epoll provides a non-blocking datagram socket whose readiness is
// awaited with epoll(7) so receive loops can idle without spinning or
// parking inside recvmsg(2).
package epoll

import (
	"errors"
	"io"
	"net/netip"
	"rudp/application/network/datagram"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// DatagramSocket wraps a non-blocking UDP fd and one epoll instance watching
// EPOLLIN|ERR for it.
//
// Concurrency:
// - ReadFrom and WaitReadable belong to a single reader goroutine.
// - Close must not race with the reader; the owner stops the reader first.
type DatagramSocket struct {
	fd     int
	ep     int
	closed atomic.Bool
}

// NewDatagramSocket takes ownership of fd on success.
// On error, ownership remains with the caller (fd is not closed).
func NewDatagramSocket(fd int) (*DatagramSocket, error) {
	if fd < 0 {
		return nil, errors.New("invalid fd")
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, err
	}

	ep, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}

	ev := unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLERR,
		Fd:     int32(fd),
	}
	if err := unix.EpollCtl(ep, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		_ = unix.Close(ep)
		return nil, err
	}

	return &DatagramSocket{fd: fd, ep: ep}, nil
}

// ReadFrom performs a single non-blocking receive.
// It returns datagram.ErrWouldBlock when the socket queue is empty and
// datagram.ErrTruncated (with n = len(p)) when the datagram did not fit.
func (s *DatagramSocket) ReadFrom(p []byte) (int, netip.AddrPort, error) {
	if s.closed.Load() {
		return 0, netip.AddrPort{}, io.ErrClosedPipe
	}
	for {
		n, _, recvFlags, from, err := unix.Recvmsg(s.fd, p, nil, 0)
		if err == nil {
			addr := addrPortFromSockaddr(from)
			if recvFlags&unix.MSG_TRUNC != 0 {
				return n, addr, datagram.ErrTruncated
			}
			return n, addr, nil
		}
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK):
			return 0, netip.AddrPort{}, datagram.ErrWouldBlock
		case errors.Is(err, unix.EBADF):
			return 0, netip.AddrPort{}, io.ErrClosedPipe
		default:
			return 0, netip.AddrPort{}, err
		}
	}
}

// WaitReadable waits up to timeout for EPOLLIN. Timeouts and EINTR return nil.
func (s *DatagramSocket) WaitReadable(timeout time.Duration) error {
	if s.closed.Load() {
		return io.ErrClosedPipe
	}
	msec := int(timeout / time.Millisecond)
	if timeout > 0 && msec == 0 {
		msec = 1
	}

	var evs [1]unix.EpollEvent
	n, err := unix.EpollWait(s.ep, evs[:], msec)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return nil
		}
		if errors.Is(err, unix.EBADF) || s.closed.Load() {
			return io.ErrClosedPipe
		}
		return err
	}
	if n <= 0 {
		return nil
	}
	if evs[0].Events&unix.EPOLLERR != 0 {
		soErr, err := unix.GetsockoptInt(s.fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if err != nil {
			return err
		}
		if soErr != 0 {
			return syscall.Errno(soErr)
		}
	}
	return nil
}

func (s *DatagramSocket) LocalAddr() netip.AddrPort {
	sa, err := unix.Getsockname(s.fd)
	if err != nil {
		return netip.AddrPort{}
	}
	return addrPortFromSockaddr(sa)
}

// Close closes the epoll instance first, then the data fd.
// It is safe to call multiple times.
func (s *DatagramSocket) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	var firstErr error
	if err := unix.Close(s.ep); err != nil {
		firstErr = err
	}
	if err := unix.Close(s.fd); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func addrPortFromSockaddr(sa unix.Sockaddr) netip.AddrPort {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		return netip.AddrPortFrom(netip.AddrFrom4(a.Addr), uint16(a.Port))
	case *unix.SockaddrInet6:
		return netip.AddrPortFrom(netip.AddrFrom16(a.Addr), uint16(a.Port))
	default:
		return netip.AddrPort{}
	}
}
