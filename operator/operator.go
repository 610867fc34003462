package operator

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type Operator interface {
	Operate(ctx context.Context)
}

// OperatorRunner runs an operator immediately and then every interval.
// Runs never overlap: a run that outlasts the interval delays the next tick.
type OperatorRunner struct {
	operator Operator
	interval time.Duration
	timeout  time.Duration
	clock    clock.Clock
	logger   lager.Logger
}

func NewOperatorRunner(operator Operator, interval time.Duration, timeout time.Duration, clock clock.Clock, logger lager.Logger) *OperatorRunner {
	return &OperatorRunner{
		operator: operator,
		interval: interval,
		timeout:  timeout,
		clock:    clock,
		logger:   logger,
	}
}

func (opr *OperatorRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, stop := contextUntilSignal(signals)
	defer stop()

	ticker := opr.clock.NewTicker(opr.interval)
	defer ticker.Stop()
	close(ready)

	opr.logger.Info("started", lager.Data{"refresh_interval": opr.interval})

	for {
		operateWithTimeout(ctx, opr.operator, opr.timeout)
		select {
		case <-ctx.Done():
			opr.logger.Info("stopped")
			return nil
		case <-ticker.C():
		}
	}
}

// contextUntilSignal is cancelled by the first signal received.
func contextUntilSignal(signals <-chan os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func operateWithTimeout(ctx context.Context, operator Operator, timeout time.Duration) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	operator.Operate(ctx)
}
