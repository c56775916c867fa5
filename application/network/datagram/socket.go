package datagram

import (
	"errors"
	"net/netip"
	"time"
)

var (
	// ErrWouldBlock reports that no datagram is currently queued on a non-blocking socket.
	ErrWouldBlock = errors.New("no datagram available")
	// ErrTruncated reports a datagram longer than the supplied buffer. The datagram is consumed.
	ErrTruncated = errors.New("datagram truncated")
)

// Socket is a bound, non-blocking datagram socket.
//
// ReadFrom and WaitReadable must only be called from one goroutine at a time,
// and never concurrently with Close.
type Socket interface {
	ReadFrom(p []byte) (int, netip.AddrPort, error)
	// WaitReadable blocks for at most timeout. A nil error does not guarantee
	// that a datagram is ready: callers retry ReadFrom and treat ErrWouldBlock as normal.
	WaitReadable(timeout time.Duration) error
	LocalAddr() netip.AddrPort
	Close() error
}
