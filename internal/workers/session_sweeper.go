package workers

import (
	"context"
	"time"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/store"
)

// sessionSweeper periodically deletes sessions whose last use is older than
// ttl. Cookies pointing at swept rows resolve to the anonymous state on the
// next request, so no coordination with live traffic is needed.
type sessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	ttl      time.Duration

	logger *logger.Logger
}

func newSessionSweeper(sessions store.SessionRepository, interval, ttl time.Duration, logger *logger.Logger) *sessionSweeper {
	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

// Run implements [Worker]. A failed sweep is logged and retried on the next
// tick.
func (s *sessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Dur("ttl", s.ttl).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.ttl)

	removed, err := s.sessions.DeleteExpiredSessions(ctx, cutoff)
	if err != nil {
		s.logger.Error().Err(err).Msg("session sweep failed")
		return
	}

	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("stale sessions removed")
	}
}
