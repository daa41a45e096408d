// Package worker runs the background completion sweep: APPROVED reservations
// whose slot has ended become COMPLETED and their materials return to stock.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"facility-booking/internal/pkg/config"
)

type Expirer interface {
	ExpireCompleted(ctx context.Context, limit int) (int, error)
}

type Sweeper struct {
	expirer   Expirer
	interval  time.Duration
	batchSize int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(expirer Expirer, cfg config.SweeperConfig) *Sweeper {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{expirer: expirer, interval: interval, batchSize: batch}
}

// RunOnce drains every reservation that is due, one batch per transaction.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := s.expirer.ExpireCompleted(ctx, s.batchSize)
		total += n
		if err != nil {
			return total, err
		}
		if n < s.batchSize {
			return total, nil
		}
	}
}

func (s *Sweeper) Start(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)

	slog.Info("completion sweeper started", "interval", s.interval.String(), "batch_size", s.batchSize)
	return nil
}

func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		slog.Info("completion sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		n, err := s.RunOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("completion sweep failed", "completed", n, "error", err.Error())
			continue
		}
		if n > 0 {
			slog.Info("completion sweep finished", "completed", n)
		}
	}
}
