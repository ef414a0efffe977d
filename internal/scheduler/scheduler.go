package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DealExpirer deactivates deals whose end date has passed.
type DealExpirer interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// DealExpiryJob is a cron.Job that switches off ended deals.
type DealExpiryJob struct {
	deals   DealExpirer
	timeout time.Duration
}

// NewDealExpiryJob creates a job whose runs are bounded by timeout.
func NewDealExpiryJob(deals DealExpirer, timeout time.Duration) *DealExpiryJob {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DealExpiryJob{deals: deals, timeout: timeout}
}

// Run implements cron.Job. Failures are logged and retried on the next tick.
func (j *DealExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.deals.DeactivateExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("deal expiry run failed")
		return
	}
	if n > 0 {
		log.Info().Int64("deactivated", n).Msg("expired deals deactivated")
		return
	}
	log.Debug().Msg("no expired deals")
}

// Start schedules job on spec and starts the cron runner. Overlapping runs
// are skipped. The caller stops the returned cron on shutdown.
func Start(spec string, job cron.Job) (*cron.Cron, error) {
	logger := cronLogger{logger: log.With().Str("component", "scheduler").Logger()}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", spec, err)
	}
	c.Start()
	log.Info().Str("schedule", spec).Msg("scheduler started")
	return c, nil
}

// cronLogger implements cron.Logger on top of zerolog. Routine cron
// messages are logged at debug level.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
