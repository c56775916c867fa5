package trafficstats

import (
	"context"
	"sync/atomic"
	"time"
)

type Snapshot struct {
	Datagrams uint64
	Bytes     uint64
	Truncated uint64
	Dropped   uint64
	// DatagramRate and ByteRate are per-second, optionally EMA-smoothed.
	DatagramRate uint64
	ByteRate     uint64
}

// Collector counts inbound datagrams for one listener. The Add* methods are
// allocation-free and safe to call from the receive goroutine while another
// goroutine takes snapshots.
type Collector struct {
	datagrams atomic.Uint64
	bytes     atomic.Uint64
	truncated atomic.Uint64
	dropped   atomic.Uint64

	datagramRate atomic.Uint64
	byteRate     atomic.Uint64

	sampleInterval time.Duration
	emaAlpha       float64

	// accessed only from the single sampler goroutine in Start()
	lastDatagrams uint64
	lastBytes     uint64
	datagramEMA   float64
	byteEMA       float64
	started       atomic.Bool
}

func NewCollector(sampleInterval time.Duration, emaAlpha float64) *Collector {
	if sampleInterval <= 0 {
		sampleInterval = time.Second
	}
	if emaAlpha < 0 {
		emaAlpha = 0
	}
	if emaAlpha > 1 {
		emaAlpha = 1
	}
	return &Collector{
		sampleInterval: sampleInterval,
		emaAlpha:       emaAlpha,
	}
}

// Start samples rates until ctx is done. Only the first call runs the sampler.
func (c *Collector) Start(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		return
	}

	ticker := time.NewTicker(c.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.updateRates(c.sampleInterval)
		}
	}
}

// AddDatagram records one successfully received datagram of n bytes.
func (c *Collector) AddDatagram(n int) {
	c.datagrams.Add(1)
	if n > 0 {
		c.bytes.Add(uint64(n))
	}
}

func (c *Collector) AddTruncated() {
	c.truncated.Add(1)
}

func (c *Collector) AddDropped() {
	c.dropped.Add(1)
}

func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Datagrams:    c.datagrams.Load(),
		Bytes:        c.bytes.Load(),
		Truncated:    c.truncated.Load(),
		Dropped:      c.dropped.Load(),
		DatagramRate: c.datagramRate.Load(),
		ByteRate:     c.byteRate.Load(),
	}
}

func (c *Collector) updateRates(interval time.Duration) {
	seconds := interval.Seconds()
	if seconds <= 0 {
		return
	}

	datagramsNow := c.datagrams.Load()
	bytesNow := c.bytes.Load()

	datagramDelta := datagramsNow - c.lastDatagrams
	byteDelta := bytesNow - c.lastBytes
	c.lastDatagrams = datagramsNow
	c.lastBytes = bytesNow

	datagramsPerSec := float64(datagramDelta) / seconds
	bytesPerSec := float64(byteDelta) / seconds

	if c.emaAlpha > 0 {
		c.datagramEMA = smooth(c.datagramEMA, datagramsPerSec, c.emaAlpha)
		c.byteEMA = smooth(c.byteEMA, bytesPerSec, c.emaAlpha)
		datagramsPerSec = c.datagramEMA
		bytesPerSec = c.byteEMA
	}

	c.datagramRate.Store(uint64(datagramsPerSec))
	c.byteRate.Store(uint64(bytesPerSec))
}

func smooth(prev, sample, alpha float64) float64 {
	if prev == 0 {
		return sample
	}
	return alpha*sample + (1-alpha)*prev
}
