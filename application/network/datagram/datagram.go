package datagram

import "net/netip"

// Datagram is a single UDP payload together with its sender.
//
// Payload aliases the listener's receive buffer: it is only valid for the
// duration of the Sink.Handle call. Sinks that keep the bytes must copy them.
type Datagram struct {
	From    netip.AddrPort
	Payload []byte
}

// Sink consumes datagrams produced by a receive loop.
// Handle is called from the receive goroutine and must not block for long.
type Sink interface {
	Handle(d Datagram)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(d Datagram)

func (f SinkFunc) Handle(d Datagram) {
	f(d)
}
