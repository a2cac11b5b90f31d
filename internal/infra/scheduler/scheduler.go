package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler decides how long the poll loop sleeps between cycles.
// It only computes activation times; it never runs jobs on its own goroutine.
type PollScheduler struct {
	schedule cron.Schedule
	spec     string
	logger   *logrus.Entry
	now      func() time.Time
}

// NewPollScheduler parses spec with the standard cron parser, so both
// descriptors ("@every 10m", "@hourly") and five-field expressions work.
func NewPollScheduler(spec string, logger *logrus.Entry) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollScheduler{
		schedule: schedule,
		spec:     spec,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Next returns the next activation strictly after t.
func (s *PollScheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Wait blocks until the next activation or until ctx is done.
func (s *PollScheduler) Wait(ctx context.Context) error {
	now := s.now()
	next := s.schedule.Next(now)
	if next.IsZero() {
		return fmt.Errorf("poll schedule %q has no future activation", s.spec)
	}
	delay := next.Sub(now)
	s.logger.WithField("next_poll", next.Format(time.RFC3339)).Debugf("Sleeping for %s", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
