package udp_listener

import (
	"errors"
	"fmt"
	"io"
	"net/netip"
	"rudp/application/network/datagram"
	"sync"
	"sync/atomic"
	"time"
)

type fakeRead struct {
	payload []byte
	from    netip.AddrPort
	err     error
}

// ListenerFakeSocket is a scripted datagram.Socket. Reads pop scripted
// results and fall back to ErrWouldBlock. Any call after Close is recorded.
type ListenerFakeSocket struct {
	mu            sync.Mutex
	reads         []fakeRead
	local         netip.AddrPort
	waitErr       error
	closeErr      error
	closed        atomic.Bool
	closeCalls    atomic.Int32
	useAfterClose atomic.Bool
	readCalls     atomic.Int64
	waitCalls     atomic.Int64
	lastWait      atomic.Int64
}

func newListenerFakeSocket(local string) *ListenerFakeSocket {
	return &ListenerFakeSocket{local: netip.MustParseAddrPort(local)}
}

func (s *ListenerFakeSocket) push(r fakeRead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads = append(s.reads, r)
}

func (s *ListenerFakeSocket) setWaitErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitErr = err
}

func (s *ListenerFakeSocket) ReadFrom(p []byte) (int, netip.AddrPort, error) {
	s.readCalls.Add(1)
	if s.closed.Load() {
		s.useAfterClose.Store(true)
		return 0, netip.AddrPort{}, io.ErrClosedPipe
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reads) == 0 {
		return 0, netip.AddrPort{}, datagram.ErrWouldBlock
	}
	r := s.reads[0]
	s.reads = s.reads[1:]
	n := copy(p, r.payload)
	return n, r.from, r.err
}

func (s *ListenerFakeSocket) WaitReadable(timeout time.Duration) error {
	s.waitCalls.Add(1)
	s.lastWait.Store(int64(timeout))
	if s.closed.Load() {
		s.useAfterClose.Store(true)
		return io.ErrClosedPipe
	}
	s.mu.Lock()
	err := s.waitErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	return nil
}

func (s *ListenerFakeSocket) LocalAddr() netip.AddrPort {
	return s.local
}

func (s *ListenerFakeSocket) Close() error {
	s.closeCalls.Add(1)
	s.closed.Store(true)
	return s.closeErr
}

// ListenerFakeBinder hands out prepared sockets, or fails with err.
type ListenerFakeBinder struct {
	mu      sync.Mutex
	sockets []*ListenerFakeSocket
	err     error
	calls   int
	addrs   []netip.AddrPort
}

func (b *ListenerFakeBinder) Bind(addr netip.AddrPort) (datagram.Socket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	b.addrs = append(b.addrs, addr)
	if b.err != nil {
		return nil, b.err
	}
	if len(b.sockets) == 0 {
		return nil, errors.New("fake binder: no socket prepared")
	}
	s := b.sockets[0]
	b.sockets = b.sockets[1:]
	return s, nil
}

type ListenerRecordingSink struct {
	mu        sync.Mutex
	datagrams []datagram.Datagram
}

func (r *ListenerRecordingSink) Handle(d datagram.Datagram) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.datagrams = append(r.datagrams, datagram.Datagram{
		From:    d.From,
		Payload: append([]byte(nil), d.Payload...),
	})
}

func (r *ListenerRecordingSink) snapshot() []datagram.Datagram {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]datagram.Datagram(nil), r.datagrams...)
}

type ListenerRecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *ListenerRecordingLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *ListenerRecordingLogger) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func waitUntil(cond func() bool, d time.Duration) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}
