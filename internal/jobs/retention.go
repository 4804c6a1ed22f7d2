package jobs

import (
	"context"
	"log/slog"
	"time"

	"studio/internal/config"
	"studio/internal/metrics"
	"studio/internal/store"
)

// Sweeper periodically deletes sessions past their retention window so
// the database does not grow without bound. Generations cascade with
// their session.
type Sweeper struct {
	cfg    *config.Config
	store  *store.Store
	logger *slog.Logger
}

func NewSweeper(cfg *config.Config, st *store.Store, logger *slog.Logger) *Sweeper {
	return &Sweeper{cfg: cfg, store: st, logger: logger}
}

// Start runs the sweep loop in the current goroutine until ctx is
// canceled. Callers typically run this in its own goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	if !s.cfg.Retention.Enabled || s.cfg.Retention.SessionDays <= 0 {
		return
	}

	interval := time.Duration(s.cfg.Retention.SweepIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.Retention.SessionDays)

	n, err := s.store.DeleteExpiredSessions(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention sweep failed", "error", err)
		return
	}
	if n > 0 {
		metrics.RecordRetentionSessions(n)
		s.logger.Info("retention sweep deleted sessions", "count", n, "cutoff", cutoff)
	}
}
