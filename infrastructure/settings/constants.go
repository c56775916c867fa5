package settings

import "time"

const (
	DefaultEthernetMTU = 1500
	MinimumIPv4MTU     = 576
	// MaxPacketSize is the largest datagram the protocol is expected to carry.
	// The receive buffer is sized to it; longer datagrams are dropped as truncated.
	MaxPacketSize = DefaultEthernetMTU
)

const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 19132
	DefaultMaxConnections = 10
	DefaultIdleWait       = 50 * time.Millisecond
	DefaultQueueCapacity  = 256
	DefaultStatsInterval  = 30 * time.Second
)
