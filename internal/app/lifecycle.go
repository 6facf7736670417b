package app

import (
	"context"

	"bin-tally/internal/logger"
	"bin-tally/internal/shutdown"
)

type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

func (l *Lifecycle) Register(component shutdown.Shutdownable) {
	l.manager.Register(component)
}

// Listen turns SIGINT/SIGTERM into a shutdown request and then calls
// onSignal. The caller still has to call Shutdown.
func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

// RequestShutdown asks the running event loop to stop.
func (l *Lifecycle) RequestShutdown() {
	l.manager.Request()
}

// Context is done once shutdown has been requested.
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

// Shutdown is idempotent; the window close intercept, a signal and the
// end of the event loop may all reach it.
func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}
