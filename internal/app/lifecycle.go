package app

import (
	"shared-data/internal/logger"
)

// Closer is the part of the controller torn down on exit.
type Closer interface {
	Shutdown() error
}

type Lifecycle struct {
	controller Closer
	logger     logger.Logger
	isShutdown bool
	err        error
}

func NewLifecycle(controller Closer, log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Lifecycle{
		controller: controller,
		logger:     log,
	}
}

// Shutdown runs once; later calls return immediately.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if err := l.controller.Shutdown(); err != nil {
		l.err = err
		l.logger.Error("Lifecycle", err, map[string]interface{}{
			"stage": "persist",
		})
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

// Err reports the persist failure from Shutdown, if any.
func (l *Lifecycle) Err() error {
	return l.err
}
