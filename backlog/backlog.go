package backlog

import (
	"context"
	"fmt"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type TaskCounter interface {
	RunningTaskCount(ctx context.Context) (int64, error)
}

type Config struct {
	Namespace  string
	MetricName string
	MetricType string
	QueueName  string
}

// Reporter publishes the backlog per instance, the metric the target
// tracking policy follows.
type Reporter struct {
	logger    lager.Logger
	clock     clock.Clock
	queue     queue.DepthReader
	tasks     TaskCounter
	publisher metricstore.Publisher
	conf      Config
}

func NewReporter(logger lager.Logger, clock clock.Clock, depthReader queue.DepthReader, taskCounter TaskCounter,
	publisher metricstore.Publisher, conf Config) *Reporter {
	return &Reporter{
		logger:    logger.Session("backlog-reporter", lager.Data{"queue": conf.QueueName}),
		clock:     clock,
		queue:     depthReader,
		tasks:     taskCounter,
		publisher: publisher,
		conf:      conf,
	}
}

func (r *Reporter) Report(ctx context.Context) (*models.BacklogSample, error) {
	depth, err := r.queue.ApproximateDepth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue depth: %w", err)
	}
	running, err := r.tasks.RunningTaskCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count running tasks: %w", err)
	}

	sample := &models.BacklogSample{
		QueueDepth:         depth,
		RunningTasks:       running,
		BacklogPerInstance: float64(depth) / float64(max(running, 1)),
	}
	err = r.publisher.PutSample(ctx, models.MetricSample{
		Namespace:         r.conf.Namespace,
		MetricName:        r.conf.MetricName,
		Value:             sample.BacklogPerInstance,
		Unit:              models.UnitCount,
		Dimensions:        models.MetricDimensions(r.conf.MetricType, r.conf.QueueName),
		Timestamp:         r.clock.Now(),
		StorageResolution: models.HighResolution,
	})
	if err != nil {
		return sample, fmt.Errorf("failed to publish backlog per instance: %w", err)
	}
	return sample, nil
}

func (r *Reporter) Operate(ctx context.Context) {
	sample, err := r.Report(ctx)
	if err != nil {
		data := cloud.ErrorData(err)
		data["sample"] = sample
		r.logger.Error("failed-to-report-backlog", err, data)
		return
	}
	r.logger.Info("reported-backlog", lager.Data{"sample": sample})
}
