package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"mom-planner/pkg/log"
)

// Job is run on every tick.
type Job interface {
	RunReminders(ctx context.Context, now time.Time) (int, error)
}

// Ticker runs a Job periodically on a cron scheduler.
type Ticker struct {
	cron     *cron.Cron
	job      Job
	interval time.Duration
	loc      *time.Location
	now      func() time.Time
	l        log.Logger
}

// NewTicker creates a ticker firing every interval in loc.
func NewTicker(job Job, interval time.Duration, loc *time.Location, l log.Logger) *Ticker {
	if loc == nil {
		loc = time.Local
	}
	return &Ticker{
		cron:     cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		job:      job,
		interval: interval,
		loc:      loc,
		now:      time.Now,
		l:        l,
	}
}

// Run schedules the job and blocks until ctx is done, then waits for a
// running tick to finish.
func (t *Ticker) Run(ctx context.Context) error {
	if t.interval <= 0 {
		return fmt.Errorf("reminder: interval must be positive")
	}
	seconds := int(t.interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	if _, err := t.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), func() { t.tick(ctx) }); err != nil {
		return fmt.Errorf("reminder: schedule: %w", err)
	}

	t.l.Infof(ctx, "reminder.Ticker: checking every %s", t.interval)
	t.cron.Start()
	<-ctx.Done()

	stopped := t.cron.Stop()
	<-stopped.Done()
	return nil
}

func (t *Ticker) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := t.job.RunReminders(ctx, t.now().In(t.loc))
	if err != nil {
		t.l.Warnf(ctx, "reminder.Ticker: %v", err)
		return
	}
	if n > 0 {
		t.l.Debugf(ctx, "reminder.Ticker: sent %d reminder(s)", n)
	}
}
