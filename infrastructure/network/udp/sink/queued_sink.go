package sink

import (
	"context"
	"errors"
	"io"
	"rudp/application/network/datagram"
	"rudp/infrastructure/network/udp/queue"
	"rudp/infrastructure/settings"
	"rudp/infrastructure/telemetry/trafficstats"
)

// QueuedSink copies datagrams into a bounded buffer so that a slow consumer
// cannot stall the socket drain. Datagrams that do not fit are dropped and counted.
type QueuedSink struct {
	buffer queue.DatagramBuffer
	stats  *trafficstats.Collector
}

func NewQueuedSink(buffer queue.DatagramBuffer, stats *trafficstats.Collector) *QueuedSink {
	return &QueuedSink{
		buffer: buffer,
		stats:  stats,
	}
}

func (s *QueuedSink) Handle(d datagram.Datagram) {
	if !s.buffer.Enqueue(d) && s.stats != nil {
		s.stats.AddDropped()
	}
}

// Drain forwards buffered datagrams to next until ctx is done. Datagrams
// already buffered when ctx ends are still delivered before Drain returns.
func (s *QueuedSink) Drain(ctx context.Context, next datagram.Sink) error {
	stop := context.AfterFunc(ctx, s.buffer.Close)
	defer stop()

	buf := make([]byte, settings.MaxPacketSize)
	for {
		n, from, readErr := s.buffer.ReadInto(buf)
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
		next.Handle(datagram.Datagram{From: from, Payload: buf[:n]})
	}
}
