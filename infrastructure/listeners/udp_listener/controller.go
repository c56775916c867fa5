package udp_listener

import (
	"errors"
	"fmt"
	"net/netip"
	"rudp/application/listeners"
	"rudp/application/logging"
	"rudp/application/network/connection"
	"rudp/application/network/datagram"
	"rudp/infrastructure/network/udp/queue"
	"rudp/infrastructure/network/udp/sink"
	"rudp/infrastructure/settings"
	"rudp/infrastructure/telemetry/trafficstats"
	"sync"
	"sync/atomic"
	"time"

	infraLogging "rudp/infrastructure/logging"

	"golang.org/x/sync/errgroup"
)

// failureBacklog bounds how many unread receive-loop failures are retained.
const failureBacklog = 4

type Options struct {
	// Logger defaults to the standard logger with a "[listener]" prefix.
	Logger logging.Logger
	// Sink defaults to a LoggingSink on Logger.
	Sink datagram.Sink
	// Binder defaults to the platform SocketBinder.
	Binder Binder
	// Stats defaults to a fresh collector.
	Stats *trafficstats.Collector
	// IdleWait bounds each readiness wait when the socket is empty.
	IdleWait time.Duration
	// BufferSize is the receive buffer length, see settings.ReceiveBufferSize.
	BufferSize int
}

// session is everything that exists only while the controller is Listening.
type session struct {
	socket datagram.Socket
	group  *errgroup.Group
}

// Controller owns a UDP socket and the goroutine draining it.
//
// States: Idle (no socket) and Listening (socket bound, receive loop running).
// Start and Close are serialized by mu; IsAlive, Accept and Offer never take
// mu and may be called from any goroutine, including from the sink. The
// pending queue is open only while Listening, so an Offer racing with Close
// cannot outlive the session.
//
// A Listening controller holds an OS socket until Close. Callers must always
// Close it; nothing releases the socket on garbage collection.
type Controller struct {
	mu        sync.Mutex
	session   *session
	alive     atomic.Bool
	localAddr atomic.Pointer[netip.AddrPort]

	pending  queue.PendingConnections
	binder   Binder
	sink     datagram.Sink
	stats    *trafficstats.Collector
	logger   logging.Logger
	idleWait time.Duration
	bufSize  int
	failures chan error
}

var _ listeners.DatagramListener = (*Controller)(nil)

func NewController(maxConnections int, opts Options) (*Controller, error) {
	if maxConnections < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxConnections)
	}

	pending := queue.NewPendingQueue(maxConnections)
	pending.Close()

	c := &Controller{
		pending:  pending,
		binder:   opts.Binder,
		sink:     opts.Sink,
		stats:    opts.Stats,
		logger:   opts.Logger,
		idleWait: opts.IdleWait,
		bufSize:  settings.ReceiveBufferSize(opts.BufferSize),
		failures: make(chan error, failureBacklog),
	}
	if c.logger == nil {
		c.logger = infraLogging.NewComponentLogger("listener", nil)
	}
	if c.sink == nil {
		c.sink = sink.NewLoggingSink(c.logger)
	}
	if c.binder == nil {
		c.binder = NewSocketBinder()
	}
	if c.stats == nil {
		c.stats = trafficstats.NewCollector(time.Second, 0)
	}
	if c.idleWait <= 0 {
		c.idleWait = settings.DefaultIdleWait
	}
	return c, nil
}

// Start binds addr and launches the receive loop. It is all or nothing: on
// error the controller stays Idle and holds no socket.
func (c *Controller) Start(addr netip.AddrPort) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return ErrAlreadyStarted
	}
	// the previous session's failure, if any, was published before it went Idle
	c.drainFailures()

	socket, bindErr := c.binder.Bind(addr)
	if bindErr != nil {
		return bindErr
	}

	s := &session{
		socket: socket,
		group:  &errgroup.Group{},
	}
	c.session = s
	bound := socket.LocalAddr()
	c.localAddr.Store(&bound)
	c.pending.Open()
	c.alive.Store(true)

	loop := newReceiveLoop(socket, &c.alive, c.sink, c.stats, c.logger, c.idleWait, c.bufSize)
	s.group.Go(func() error {
		if loopErr := loop.run(); loopErr != nil {
			c.publishFailure(loopErr)
			return loopErr
		}
		return nil
	})
	go c.supervise(s)

	c.logger.Printf("listening on %s (UDP)", bound)
	return nil
}

// Close stops the receive loop, waits until it has returned, and only then
// releases the socket.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	if s == nil {
		return ErrNoSocket
	}

	c.alive.Store(false)
	// a loop failure was already published by the loop goroutine
	_ = s.group.Wait()

	c.detach()
	if closeErr := s.socket.Close(); closeErr != nil {
		return fmt.Errorf("failed to release socket: %w", closeErr)
	}
	c.logger.Printf("listener closed")
	return nil
}

// Accept returns the next peer queued by the handshake layer, or nil when
// none is pending. It never blocks.
func (c *Controller) Accept() (*connection.Pending, error) {
	if !c.alive.Load() {
		return nil, ErrNoSocket
	}
	p, ok := c.pending.TryPop()
	if !ok {
		return nil, nil
	}
	return p, nil
}

// Offer queues a discovered peer for Accept, enforcing the connection capacity.
func (c *Controller) Offer(p connection.Pending) error {
	if !c.alive.Load() {
		return ErrNoSocket
	}
	if offerErr := c.pending.Offer(p); offerErr != nil {
		if errors.Is(offerErr, queue.ErrClosed) {
			return ErrNoSocket
		}
		if errors.Is(offerErr, queue.ErrFull) {
			return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, c.pending.Capacity())
		}
		return offerErr
	}
	return nil
}

func (c *Controller) IsAlive() bool {
	return c.alive.Load()
}

func (c *Controller) MaxConnections() int {
	return c.pending.Capacity()
}

func (c *Controller) SetMaxConnections(maxConnections int) error {
	if maxConnections < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxConnections)
	}
	c.pending.SetCapacity(maxConnections)
	return nil
}

// LocalAddr reports the bound address, or the zero value while Idle.
func (c *Controller) LocalAddr() netip.AddrPort {
	if addr := c.localAddr.Load(); addr != nil {
		return *addr
	}
	return netip.AddrPort{}
}

// Failures delivers hard receive-loop errors. After a failure the controller
// has already returned to Idle and released its socket. Unread failures are
// discarded by the next Start.
func (c *Controller) Failures() <-chan error {
	return c.failures
}

func (c *Controller) Stats() trafficstats.Snapshot {
	return c.stats.Snapshot()
}

// supervise tears the session down if its loop stops on its own.
func (c *Controller) supervise(s *session) {
	if loopErr := s.group.Wait(); loopErr == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != s {
		// Close got there first.
		return
	}
	c.alive.Store(false)
	c.detach()
	if closeErr := s.socket.Close(); closeErr != nil {
		c.logger.Printf("failed to release socket after receive loop failure: %v", closeErr)
	}
	c.logger.Printf("receive loop stopped, listener is idle")
}

// detach returns the controller to Idle. c.mu must be held.
func (c *Controller) detach() {
	c.session = nil
	c.localAddr.Store(nil)
	c.pending.Close()
}

// drainFailures discards failures nobody read. c.mu must be held.
func (c *Controller) drainFailures() {
	for {
		select {
		case <-c.failures:
		default:
			return
		}
	}
}

func (c *Controller) publishFailure(err error) {
	c.logger.Printf("receive loop failed: %v", err)
	select {
	case c.failures <- err:
	default:
		c.logger.Printf("failure backlog full, dropping: %v", err)
	}
}
