package scheduler

import (
	"context"
	"time"

	"homework_status_bot/internal/app" // For Outcome

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Ticker runs one poll cycle.
type Ticker interface {
	Tick(ctx context.Context) app.Outcome
}

// PollScheduler drives a Ticker on a fixed interval. The first cycle runs as
// soon as the scheduler starts; cycles never overlap.
type PollScheduler struct {
	cronEngine *cron.Cron
	service    Ticker
	interval   time.Duration
	logger     *logrus.Entry
	cancel     context.CancelFunc
}

func NewPollScheduler(service Ticker, interval time.Duration, logger *logrus.Entry) *PollScheduler {
	logger = logger.WithField("component", "scheduler")
	cronLogger := cron.PrintfLogger(logger)
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Start registers the poll job and starts the cron engine. Cycles run with a
// context derived from ctx; Stop cancels it.
func (s *PollScheduler) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting poll scheduler...")

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.cronEngine.Schedule(newImmediateSchedule(s.interval), cron.FuncJob(func() {
		started := time.Now()
		outcome := s.service.Tick(runCtx)
		s.logger.WithFields(logrus.Fields{
			"outcome":  outcome.String(),
			"duration": time.Since(started).String(),
		}).Debug("Poll cycle finished")
	}))

	s.cronEngine.Start()
	s.logger.Info("Poll scheduler started.")
}

// Stop halts scheduling, cancels an in-flight cycle and waits for it to return.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	done := s.cronEngine.Stop() // Stops the scheduler from adding new jobs
	if s.cancel != nil {
		s.cancel()
	}
	<-done.Done() // Wait for the running cycle, if any
	s.logger.Info("Poll scheduler gracefully stopped.")
}

// immediateSchedule fires once right away, then every interval.
// cron calls Next only from its run goroutine.
type immediateSchedule struct {
	base  cron.Schedule
	fired bool
}

func newImmediateSchedule(interval time.Duration) *immediateSchedule {
	return &immediateSchedule{base: cron.Every(interval)}
}

func (s *immediateSchedule) Next(t time.Time) time.Time {
	if !s.fired {
		s.fired = true
		return t
	}
	return s.base.Next(t)
}
