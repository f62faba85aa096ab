package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"homework_status_bot/internal/app"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type mockTicker struct {
	ticks  chan struct{}
	active atomic.Int32
	maxRun atomic.Int32
	block  chan struct{}
}

func (m *mockTicker) Tick(ctx context.Context) app.Outcome {
	n := m.active.Add(1)
	defer m.active.Add(-1)
	if n > m.maxRun.Load() {
		m.maxRun.Store(n)
	}
	m.ticks <- struct{}{}
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
		}
	}
	return app.OutcomeUnchanged
}

func newTestScheduler(tk Ticker, interval time.Duration) *PollScheduler {
	logger, _ := test.NewNullLogger()
	return NewPollScheduler(tk, interval, logrus.NewEntry(logger))
}

func TestImmediateSchedule(t *testing.T) {
	s := newImmediateSchedule(10 * time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := s.Next(now); !got.Equal(now) {
		t.Errorf("first Next = %v, want %v", got, now)
	}
	if got := s.Next(now); !got.Equal(now.Add(10 * time.Minute)) {
		t.Errorf("second Next = %v, want +10m", got)
	}
	later := now.Add(time.Hour)
	if got := s.Next(later); !got.Equal(later.Add(10 * time.Minute)) {
		t.Errorf("third Next = %v, want later+10m", got)
	}
}

func TestStart_RunsFirstCycleImmediately(t *testing.T) {
	tk := &mockTicker{ticks: make(chan struct{}, 4)}
	s := newTestScheduler(tk, time.Hour)

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-tk.ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the first cycle")
	}
}

func TestStart_CyclesDoNotOverlap(t *testing.T) {
	tk := &mockTicker{ticks: make(chan struct{}, 8), block: make(chan struct{})}
	s := newTestScheduler(tk, time.Second)

	s.Start(context.Background())

	select {
	case <-tk.ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the first cycle")
	}
	// The first cycle is still blocked; later activations must be skipped.
	time.Sleep(2500 * time.Millisecond)
	close(tk.block)
	s.Stop()

	if got := tk.maxRun.Load(); got != 1 {
		t.Errorf("max concurrent cycles = %d, want 1", got)
	}
}

func TestStop_CancelsInFlightCycle(t *testing.T) {
	tk := &mockTicker{ticks: make(chan struct{}, 1), block: make(chan struct{})}
	s := newTestScheduler(tk, time.Hour)

	s.Start(context.Background())
	select {
	case <-tk.ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the first cycle")
	}

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return; in-flight cycle was not canceled")
	}
	if tk.active.Load() != 0 {
		t.Error("cycle still running after Stop")
	}
}
