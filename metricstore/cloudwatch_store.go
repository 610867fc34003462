package metricstore

import (
	"context"
	"fmt"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
)

const queryID = "samples"

type CloudWatchStore struct {
	logger lager.Logger
	client cloud.CloudWatchAPI
}

func NewCloudWatchStore(logger lager.Logger, client cloud.CloudWatchAPI) *CloudWatchStore {
	return &CloudWatchStore{
		logger: logger.Session("cloudwatch-store"),
		client: client,
	}
}

func (s *CloudWatchStore) PutSample(ctx context.Context, sample models.MetricSample) error {
	datum := &cloudwatch.MetricDatum{
		MetricName: aws.String(sample.MetricName),
		Value:      aws.Float64(sample.Value),
		Dimensions: toDimensions(sample.Dimensions),
	}
	if sample.Unit != "" {
		datum.Unit = aws.String(sample.Unit)
	}
	if !sample.Timestamp.IsZero() {
		datum.Timestamp = aws.Time(sample.Timestamp)
	}
	if sample.StorageResolution > 0 {
		datum.StorageResolution = aws.Int64(sample.StorageResolution)
	}

	_, err := s.client.PutMetricDataWithContext(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(sample.Namespace),
		MetricData: []*cloudwatch.MetricDatum{datum},
	})
	if err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", sample.Namespace, sample.MetricName, err)
	}
	s.logger.Debug("put-sample", lager.Data{"namespace": sample.Namespace, "metric": sample.MetricName, "value": sample.Value})
	return nil
}

// FetchSamples returns every datapoint of the query window, following result pages.
func (s *CloudWatchStore) FetchSamples(ctx context.Context, query models.MetricQuery) ([]float64, error) {
	period := int64(query.Period / time.Second)
	if period < 1 {
		period = 1
	}
	statistic := query.Statistic
	if statistic == "" {
		statistic = models.StatisticAverage
	}
	input := &cloudwatch.GetMetricDataInput{
		StartTime: aws.Time(query.Start),
		EndTime:   aws.Time(query.End),
		ScanBy:    aws.String(cloudwatch.ScanByTimestampDescending),
		MetricDataQueries: []*cloudwatch.MetricDataQuery{{
			Id: aws.String(queryID),
			MetricStat: &cloudwatch.MetricStat{
				Metric: &cloudwatch.Metric{
					Namespace:  aws.String(query.Namespace),
					MetricName: aws.String(query.MetricName),
					Dimensions: toDimensions(query.Dimensions),
				},
				Period: aws.Int64(period),
				Stat:   aws.String(statistic),
			},
		}},
	}

	values := []float64{}
	pages := 0
	err := s.client.GetMetricDataPagesWithContext(ctx, input, func(page *cloudwatch.GetMetricDataOutput, _ bool) bool {
		pages++
		for _, result := range page.MetricDataResults {
			if aws.StringValue(result.Id) != queryID {
				continue
			}
			values = append(values, aws.Float64ValueSlice(result.Values)...)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get metric data for %s/%s: %w", query.Namespace, query.MetricName, err)
	}
	s.logger.Debug("fetched-samples", lager.Data{"metric": query.MetricName, "count": len(values), "pages": pages})
	return values, nil
}

func toDimensions(dims []models.Dimension) []*cloudwatch.Dimension {
	result := make([]*cloudwatch.Dimension, 0, len(dims))
	for _, d := range dims {
		result = append(result, &cloudwatch.Dimension{Name: aws.String(d.Name), Value: aws.String(d.Value)})
	}
	return result
}
