package shutdown

import (
	"context"
	"os"
	"rudp/application/logging"
	palSignal "rudp/infrastructure/PAL/signal"
	"rudp/presentation/signals"
	"sync"
)

// Handler cancels the application context on the first shutdown signal.
type Handler struct {
	appCtx       context.Context
	appCtxCancel context.CancelFunc
	// 1-sized: os/signal drops signals on a full channel.
	signalChan     chan os.Signal
	once           sync.Once
	signalProvider palSignal.Provider
	notifier       signals.Notifier
	logger         logging.Logger
}

func NewHandler(
	appCtx context.Context,
	appCtxCancel context.CancelFunc,
	signalProvider palSignal.Provider,
	notifier signals.Notifier,
	logger logging.Logger,
) signals.Handler {
	return &Handler{
		appCtx:         appCtx,
		appCtxCancel:   appCtxCancel,
		signalChan:     make(chan os.Signal, 1),
		signalProvider: signalProvider,
		notifier:       notifier,
		logger:         logger,
	}
}

// Handle is idempotent; the subscription ends with the first signal or with appCtx.
func (h *Handler) Handle() {
	h.once.Do(func() {
		h.notifier.Notify(h.signalChan, h.signalProvider.ShutdownSignals()...)
		go h.await()
	})
}

func (h *Handler) await() {
	defer h.notifier.Stop(h.signalChan)
	select {
	case sig := <-h.signalChan:
		h.logger.Printf("received %v, shutting down", sig)
		h.appCtxCancel()
	case <-h.appCtx.Done():
	}
}
