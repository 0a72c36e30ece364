package platform

import (
	"context"
	"time"
)

const defaultBackgroundTimeout = 5 * time.Second

// backgroundFunc runs post-response work such as starting delivery workflows.
type backgroundFunc func(op string, fn func(ctx context.Context) error)

// inBackground detaches fn from the request: it gets a fresh context bounded
// by the configured background timeout and its failure only reaches the log.
func (s *Service) inBackground(op string, fn func(ctx context.Context) error) {
	timeout := s.config.BackgroundTimeout
	if timeout <= 0 {
		timeout = defaultBackgroundTimeout
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		started := time.Now()
		if err := fn(ctx); err != nil {
			s.logger.Error("background operation failed", "op", op, "elapsed", time.Since(started), "error", err)
			return
		}
		s.logger.Debug("background operation finished", "op", op, "elapsed", time.Since(started))
	}()
}
