package udp_listener

import (
	"errors"
	"fmt"
	"rudp/application/logging"
	"rudp/application/network/datagram"
	"rudp/infrastructure/telemetry/trafficstats"
	"sync/atomic"
	"time"
)

// receiveLoop drains a bound socket into a sink until alive turns false.
// It borrows the socket: it never closes it and never touches it after run returns.
type receiveLoop struct {
	socket   datagram.Socket
	alive    *atomic.Bool
	sink     datagram.Sink
	stats    *trafficstats.Collector
	logger   logging.Logger
	idleWait time.Duration
	buffer   []byte
}

func newReceiveLoop(
	socket datagram.Socket,
	alive *atomic.Bool,
	sink datagram.Sink,
	stats *trafficstats.Collector,
	logger logging.Logger,
	idleWait time.Duration,
	bufferSize int,
) *receiveLoop {
	return &receiveLoop{
		socket:   socket,
		alive:    alive,
		sink:     sink,
		stats:    stats,
		logger:   logger,
		idleWait: idleWait,
		buffer:   make([]byte, bufferSize),
	}
}

// run returns nil once alive is observed false, or the first hard socket error.
// ErrWouldBlock is the normal idle condition and only leads to a bounded wait.
func (l *receiveLoop) run() error {
	for l.alive.Load() {
		n, from, readErr := l.socket.ReadFrom(l.buffer)
		switch {
		case readErr == nil:
			l.stats.AddDatagram(n)
			l.sink.Handle(datagram.Datagram{From: from, Payload: l.buffer[:n]})
		case errors.Is(readErr, datagram.ErrWouldBlock):
			if waitErr := l.socket.WaitReadable(l.idleWait); waitErr != nil {
				return fmt.Errorf("failed to wait for datagrams: %w", waitErr)
			}
		case errors.Is(readErr, datagram.ErrTruncated):
			l.stats.AddTruncated()
			l.logger.Printf("datagram dropped: from %s exceeds %d bytes", from, len(l.buffer))
		default:
			return fmt.Errorf("failed to read datagram: %w", readErr)
		}
	}
	return nil
}
