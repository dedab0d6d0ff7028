package app

import (
	"sync"

	"binblock/internal/logger"
)

// Shutdownable is implemented by components that need teardown when the
// shell exits.
type Shutdownable interface {
	Shutdown()
}

// ShutdownFunc adapts a bare function to Shutdownable.
type ShutdownFunc func()

func (f ShutdownFunc) Shutdown() { f() }

// Lifecycle runs registered components' shutdown in reverse registration
// order, exactly once. Both the window close intercept and the signal
// handler funnel through here.
type Lifecycle struct {
	components []Shutdownable
	names      []string
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{logger: log}
}

func (l *Lifecycle) Add(name string, c Shutdownable) {
	l.components = append(l.components, c)
	l.names = append(l.names, name)
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		for i := len(l.components) - 1; i >= 0; i-- {
			l.components[i].Shutdown()
			l.logger.Debug("Lifecycle", "component shutdown completed", map[string]interface{}{
				"component": l.names[i],
			})
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
