package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"
	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"
	"github.com/ecs-queue-autoscaler/autoscaler/worker/config"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"
	circuit "github.com/rubyist/circuitbreaker"
)

// maxConsecutivePollErrors is the number of failed receives after which
// the worker reports itself as not ready.
const maxConsecutivePollErrors = 3

type Worker struct {
	logger    lager.Logger
	clock     clock.Clock
	queue     queue.Receiver
	queueName string
	publisher metricstore.Publisher
	conf      *config.Config
	metrics   *Metrics
	breaker   *circuit.Breaker
	// undeleted remembers messages that were worked on but could not be deleted.
	undeleted   *cache.Cache
	pollBackOff backoff.BackOff

	consecutivePollErrors atomic.Int64
}

func NewWorker(logger lager.Logger, clock clock.Clock, receiver queue.Receiver, queueName string,
	publisher metricstore.Publisher, conf *config.Config, metrics *Metrics) *Worker {
	breakerConf := conf.Metrics.CircuitBreaker
	bf := backoff.NewExponentialBackOff()
	bf.InitialInterval = breakerConf.BackOffInitialInterval
	bf.MaxInterval = breakerConf.BackOffMaxInterval
	bf.MaxElapsedTime = 0
	bf.Reset()

	pollBackOff := backoff.NewExponentialBackOff()
	pollBackOff.InitialInterval = conf.Poll.BackOffInitialInterval
	pollBackOff.MaxInterval = conf.Poll.BackOffMaxInterval
	pollBackOff.MaxElapsedTime = 0
	pollBackOff.Clock = clock
	pollBackOff.Reset()

	return &Worker{
		logger:    logger.Session("worker", lager.Data{"queue": queueName}),
		clock:     clock,
		queue:     receiver,
		queueName: queueName,
		publisher: publisher,
		conf:      conf,
		metrics:   metrics,
		breaker: circuit.NewBreakerWithOptions(&circuit.Options{
			BackOff:    bf,
			ShouldTrip: circuit.ConsecutiveTripFunc(breakerConf.ConsecutiveFailureCount),
		}),
		undeleted:   cache.New(conf.DuplicateTTL, conf.DuplicateTTL),
		pollBackOff: pollBackOff,
	}
}

func (w *Worker) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Consume(ctx)
	}()

	w.logger.Info("started", lager.Data{"max_messages": w.conf.Poll.MaxMessages, "wait_time": w.conf.Poll.WaitTime})
	close(ready)

	select {
	case <-signals:
		cancel()
		<-done
	case <-done:
	}
	w.logger.Info("stopped")
	return nil
}

// Consume polls the queue until ctx is done.
func (w *Worker) Consume(ctx context.Context) {
	for ctx.Err() == nil {
		messages, err := w.queue.Receive(ctx, w.conf.Poll.MaxMessages, w.conf.Poll.WaitTime)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.metrics.pollErrors.Inc()
			errCount := w.consecutivePollErrors.Add(1)
			wait := w.pollBackOff.NextBackOff()
			w.logger.Error("failed-to-receive-messages", err, cloud.ErrorData(err),
				lager.Data{"consecutive_errors": errCount, "retry_in": wait.String()})
			if !w.sleep(ctx, wait) {
				return
			}
			continue
		}
		w.consecutivePollErrors.Store(0)
		w.pollBackOff.Reset()

		for _, msg := range messages {
			if ctx.Err() != nil {
				return
			}
			w.handle(ctx, msg)
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg models.QueueMessage) {
	logger := w.logger.WithData(lager.Data{"message_id": msg.MessageID, "receive_count": msg.ReceiveCount})
	w.metrics.received.Inc()
	w.metrics.inFlight.Inc()
	defer w.metrics.inFlight.Dec()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("failed-to-process-message", fmt.Errorf("panic: %v", r))
		}
	}()

	if _, found := w.undeleted.Get(msg.MessageID); found {
		w.metrics.duplicates.Inc()
		logger.Info("deleting-duplicate-message")
		w.delete(ctx, logger, msg)
		return
	}

	item, err := models.ParseWorkItem(msg.Body)
	if err != nil {
		w.metrics.malformed.Inc()
		logger.Error("malformed-message", err, lager.Data{"body": msg.Body, "action": w.conf.MalformedMessageAction})
		if w.conf.MalformedMessageAction == config.MalformedActionDelete {
			w.delete(ctx, logger, msg)
		}
		return
	}

	logger = logger.WithData(lager.Data{"id": item.ID, "duration": item.Duration})
	logger.Debug("processing-message")
	if !w.sleep(ctx, secondsToDuration(item.Duration)) {
		logger.Info("interrupted-message-left-on-queue")
		return
	}
	w.metrics.processed.Inc()

	w.delete(ctx, logger, msg)
	w.report(ctx, logger, item.Duration)
}

func (w *Worker) delete(ctx context.Context, logger lager.Logger, msg models.QueueMessage) {
	if err := w.queue.Delete(ctx, msg); err != nil {
		w.metrics.deleteErrors.Inc()
		w.undeleted.SetDefault(msg.MessageID, struct{}{})
		logger.Error("failed-to-delete-message", err, cloud.ErrorData(err))
		return
	}
	w.undeleted.Delete(msg.MessageID)
}

func (w *Worker) report(ctx context.Context, logger lager.Logger, duration float64) {
	sample := models.MetricSample{
		Namespace:         w.conf.Metrics.Namespace,
		MetricName:        w.conf.Metrics.DurationMetricName,
		Value:             duration,
		Unit:              models.UnitSeconds,
		Dimensions:        models.MetricDimensions(w.conf.Metrics.MetricType, w.queueName),
		Timestamp:         w.clock.Now(),
		StorageResolution: models.HighResolution,
	}
	err := w.breaker.Call(func() error {
		return w.publisher.PutSample(ctx, sample)
	}, 0)
	if err != nil {
		w.metrics.publishErrors.Inc()
		if errors.Is(err, circuit.ErrBreakerOpen) {
			logger.Info("duration-sample-dropped-breaker-open")
			return
		}
		logger.Error("failed-to-publish-duration", err, cloud.ErrorData(err))
	}
}

// sleep waits d on the worker clock and reports whether it finished before ctx was done.
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := w.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C():
		return true
	}
}

func (w *Worker) ReadinessChecker() healthendpoint.Checker {
	return func() healthendpoint.ReadinessCheck {
		status := healthendpoint.StatusUp
		if w.consecutivePollErrors.Load() >= maxConsecutivePollErrors {
			status = healthendpoint.StatusDown
		}
		return healthendpoint.ReadinessCheck{Name: "work_queue", Type: "queue", Status: status}
	}
}

// secondsToDuration saturates at the longest time.Duration instead of overflowing.
func secondsToDuration(seconds float64) time.Duration {
	if seconds >= models.MaxWorkItemDuration {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}
