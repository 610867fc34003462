package metricstore

import (
	"context"

	"github.com/ecs-queue-autoscaler/autoscaler/models"
)

type Publisher interface {
	PutSample(ctx context.Context, sample models.MetricSample) error
}

type Fetcher interface {
	FetchSamples(ctx context.Context, query models.MetricQuery) ([]float64, error)
}
