package listener

import (
	"net/netip"
	"rudp/application/logging"
	"rudp/application/network/datagram"
	"rudp/infrastructure/listeners/udp_listener"
	"rudp/infrastructure/settings"
	"rudp/infrastructure/telemetry/trafficstats"
)

// Listener is the part of udp_listener.Controller the runner drives.
type Listener interface {
	Close() error
	IsAlive() bool
	LocalAddr() netip.AddrPort
	Failures() <-chan error
	Stats() trafficstats.Snapshot
	SetMaxConnections(maxConnections int) error
}

type Starter interface {
	Start(conf settings.Listener, sink datagram.Sink, stats *trafficstats.Collector) (Listener, error)
}

type udpStarter struct {
	logger logging.Logger
}

func NewUDPStarter(logger logging.Logger) Starter {
	return &udpStarter{logger: logger}
}

func (s *udpStarter) Start(conf settings.Listener, sink datagram.Sink, stats *trafficstats.Collector) (Listener, error) {
	controller, startupErr := udp_listener.Startup(conf.MaxConnections, conf.Host, conf.Port, udp_listener.Options{
		Logger:     s.logger,
		Sink:       sink,
		Stats:      stats,
		IdleWait:   conf.IdleWaitMs.Or(settings.DefaultIdleWait),
		BufferSize: conf.MTU,
	})
	if startupErr != nil {
		return nil, startupErr
	}
	return controller, nil
}
