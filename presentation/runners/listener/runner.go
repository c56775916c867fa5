package listener

import (
	"context"
	"errors"
	"fmt"
	listenerConfig "rudp/infrastructure/PAL/configuration/listener"
	"rudp/infrastructure/listeners/udp_listener"
	"rudp/infrastructure/network/udp/queue"
	"rudp/infrastructure/network/udp/sink"
	"rudp/infrastructure/settings"
	"rudp/infrastructure/telemetry/trafficstats"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	rateSampleInterval = time.Second
	rateEMAAlpha       = 0.3
	configPollInterval = time.Minute
)

type Runner struct {
	deps    AppDependencies
	starter Starter
}

func NewRunner(deps AppDependencies, starter Starter) *Runner {
	return &Runner{
		deps:    deps,
		starter: starter,
	}
}

// Run starts the listener and blocks until ctx is done or the receive loop fails.
// A cancelled ctx is a clean shutdown and yields nil.
func (r *Runner) Run(ctx context.Context) error {
	conf := r.deps.Configuration()
	logger := r.deps.Logger()

	stats := trafficstats.NewCollector(rateSampleInterval, rateEMAAlpha)
	queued := sink.NewQueuedSink(queue.NewDatagramQueue(conf.Listener.QueueCapacity), stats)

	listener, startErr := r.starter.Start(conf.Listener, queued, stats)
	if startErr != nil {
		return fmt.Errorf("failed to start listener on %s:%d: %w", conf.Listener.Host, conf.Listener.Port, startErr)
	}
	defer func() {
		if closeErr := closeListener(listener); closeErr != nil {
			logger.Printf("failed to close listener: %v", closeErr)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats.Start(gctx)
		return nil
	})
	g.Go(func() error {
		return queued.Drain(gctx, sink.NewLoggingSink(logger))
	})
	g.Go(func() error {
		r.reportStats(gctx, listener, conf.StatsIntervalMs.Or(settings.DefaultStatsInterval))
		return nil
	})
	if manager := r.deps.ConfigurationManager(); manager != nil {
		watcher := listenerConfig.NewConfigWatcher(manager, listener, configPollInterval, logger)
		g.Go(func() error {
			return watcher.Watch(gctx)
		})
	}
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return closeListener(listener)
		case failure := <-listener.Failures():
			return fmt.Errorf("listener on %s failed: %w", listener.LocalAddr(), failure)
		}
	})

	return g.Wait()
}

func (r *Runner) reportStats(ctx context.Context, listener Listener, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.deps.Logger().Printf("final: %s", listener.Stats())
			return
		case <-ticker.C:
			r.deps.Logger().Printf("%s: %s", listener.LocalAddr(), listener.Stats())
		}
	}
}

// closeListener tolerates a listener that already went idle on its own.
func closeListener(listener Listener) error {
	if closeErr := listener.Close(); closeErr != nil && !errors.Is(closeErr, udp_listener.ErrNoSocket) {
		return closeErr
	}
	return nil
}
