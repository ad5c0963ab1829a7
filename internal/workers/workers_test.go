package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osavchuk/todostack/internal/config"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/mock"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// blockingWorker counts its Run calls and blocks until ctx is cancelled.
type blockingWorker struct {
	runCount atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &blockingWorker{}
	w2 := &blockingWorker{}
	w3 := &blockingWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	ws.Run(ctx)

	for i, w := range []*blockingWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately with no workers, even on a live context
	ws.Run(context.Background())
}

func TestNewWorkers_SweeperDisabledWithoutConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Workers
		want int
	}{
		{name: "both unset", cfg: config.Workers{}, want: 0},
		{name: "interval only", cfg: config.Workers{SessionSweepInterval: time.Minute}, want: 0},
		{name: "ttl only", cfg: config.Workers{SessionTTL: time.Hour}, want: 0},
		{name: "both set", cfg: config.Workers{SessionSweepInterval: time.Minute, SessionTTL: time.Hour}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(tt.cfg, &store.Storages{}, logger.Nop())
			assert.Len(t, ws.workers, tt.want)
		})
	}
}

func TestSessionSweeper_DeletesExpiredAndStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock.NewMockSessionRepository(ctrl)

	swept := make(chan struct{}, 10)
	sessions.EXPECT().
		DeleteExpiredSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().Add(-time.Hour), cutoff, 5*time.Second)
			swept <- struct{}{}
			return 2, nil
		}).
		MinTimes(1)

	sweeper := newSessionSweeper(sessions, 10*time.Millisecond, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ran")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}
