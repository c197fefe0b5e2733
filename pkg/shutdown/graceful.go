package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/jobshop/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Func adapts a plain function to Stoppable
type Func func(ctx context.Context) error

func (f Func) Shutdown(ctx context.Context) error {
	return f(ctx)
}

// Graceful blocks until one of signals arrives or parent is cancelled, then
// stops every Stoppable in order within timeout
func Graceful(parent context.Context, signals []os.Signal, timeout time.Duration, log *logging.Logger, stoppables ...Stoppable) error {
	sigCtx, stop := signal.NotifyContext(parent, signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	return StopAll(context.Background(), timeout, log, stoppables...)
}

// StopAll shuts stoppables down in order, sharing one deadline. Errors are
// logged and joined; a failure does not skip the remaining stoppables.
func StopAll(parent context.Context, timeout time.Duration, log *logging.Logger, stoppables ...Stoppable) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var errs []error
	for _, s := range stoppables {
		if s == nil {
			continue
		}
		if err := s.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
	} else {
		log.Info("graceful shutdown completed successfully")
	}
	return err
}
