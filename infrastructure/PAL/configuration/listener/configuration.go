package listener

import (
	"fmt"
	"net/netip"
	"rudp/infrastructure/settings"
)

type Configuration struct {
	Listener settings.Listener `json:"Listener"`
	// StatsIntervalMs is how often the runner logs receive statistics.
	StatsIntervalMs settings.Milliseconds `json:"StatsIntervalMs"`
}

func NewDefaultConfiguration() *Configuration {
	configuration := &Configuration{}
	return configuration.EnsureDefaults()
}

// EnsureDefaults fills zero values. A zero Port in the file means DefaultPort;
// an ephemeral port can only be requested through RUDP_PORT=0.
func (c *Configuration) EnsureDefaults() *Configuration {
	if c.Listener.Host == "" {
		c.Listener.Host = settings.DefaultHost
	}
	if c.Listener.Port == 0 {
		c.Listener.Port = settings.DefaultPort
	}
	if c.Listener.MaxConnections == 0 {
		c.Listener.MaxConnections = settings.DefaultMaxConnections
	}
	if c.Listener.MTU == 0 {
		c.Listener.MTU = settings.DefaultEthernetMTU
	}
	if c.Listener.IdleWaitMs == 0 {
		c.Listener.IdleWaitMs = settings.Milliseconds(settings.DefaultIdleWait.Milliseconds())
	}
	if c.Listener.QueueCapacity == 0 {
		c.Listener.QueueCapacity = settings.DefaultQueueCapacity
	}
	if c.StatsIntervalMs == 0 {
		c.StatsIntervalMs = settings.Milliseconds(settings.DefaultStatsInterval.Milliseconds())
	}
	return c
}

func (c *Configuration) Validate() error {
	l := c.Listener
	addr, parseErr := netip.ParseAddr(l.Host)
	if parseErr != nil || !addr.Is4() {
		return fmt.Errorf("invalid 'Host': %q is not an IPv4 address", l.Host)
	}
	if l.Port < 0 || l.Port > 65535 {
		return fmt.Errorf("invalid 'Port': %d: must be in 0..65535", l.Port)
	}
	if l.MaxConnections < 1 {
		return fmt.Errorf("invalid 'MaxConnections': %d: must be > 0", l.MaxConnections)
	}
	if l.MTU < settings.MinimumIPv4MTU || l.MTU > settings.MaxPacketSize {
		return fmt.Errorf(
			"invalid 'MTU': %d: expected %d..%d",
			l.MTU, settings.MinimumIPv4MTU, settings.MaxPacketSize,
		)
	}
	if l.IdleWaitMs < 0 {
		return fmt.Errorf("invalid 'IdleWaitMs': %d: must not be negative", l.IdleWaitMs)
	}
	if l.QueueCapacity < 0 {
		return fmt.Errorf("invalid 'QueueCapacity': %d: must not be negative", l.QueueCapacity)
	}
	if c.StatsIntervalMs < 0 {
		return fmt.Errorf("invalid 'StatsIntervalMs': %d: must not be negative", c.StatsIntervalMs)
	}
	return nil
}
