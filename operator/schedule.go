package operator

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/robfig/cron/v3"
)

var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseSchedule accepts cron specs with an optional leading seconds field and descriptors such as "@every 5m".
func ParseSchedule(expr string) (cron.Schedule, error) {
	schedule, err := scheduleParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	return schedule, nil
}

// ScheduleRunner runs an operator at each activation of a cron schedule, waiting on the injected clock.
// An activation missed while a run is in progress is skipped.
type ScheduleRunner struct {
	operator Operator
	schedule cron.Schedule
	timeout  time.Duration
	clock    clock.Clock
	logger   lager.Logger
}

func NewScheduleRunner(operator Operator, schedule cron.Schedule, timeout time.Duration, clock clock.Clock, logger lager.Logger) *ScheduleRunner {
	return &ScheduleRunner{
		operator: operator,
		schedule: schedule,
		timeout:  timeout,
		clock:    clock,
		logger:   logger,
	}
}

func (sr *ScheduleRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, stop := contextUntilSignal(signals)
	defer stop()
	close(ready)

	sr.logger.Info("started")

	for {
		now := sr.clock.Now()
		next := sr.schedule.Next(now)
		if next.IsZero() {
			sr.logger.Info("schedule-exhausted")
			<-ctx.Done()
			sr.logger.Info("stopped")
			return nil
		}
		sr.logger.Debug("waiting-for-next-run", lager.Data{"next": next})

		timer := sr.clock.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			sr.logger.Info("stopped")
			return nil
		case <-timer.C():
		}

		operateWithTimeout(ctx, sr.operator, sr.timeout)
	}
}
