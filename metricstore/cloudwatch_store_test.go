package metricstore_test

import (
	"context"
	"errors"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockCloudWatch struct {
	putInputs []*cloudwatch.PutMetricDataInput
	putErr    error

	getInput *cloudwatch.GetMetricDataInput
	pages    []*cloudwatch.GetMetricDataOutput
	getErr   error
}

func (m *mockCloudWatch) PutMetricDataWithContext(_ aws.Context, input *cloudwatch.PutMetricDataInput, _ ...request.Option) (*cloudwatch.PutMetricDataOutput, error) {
	m.putInputs = append(m.putInputs, input)
	return &cloudwatch.PutMetricDataOutput{}, m.putErr
}

func (m *mockCloudWatch) GetMetricDataPagesWithContext(_ aws.Context, input *cloudwatch.GetMetricDataInput, fn func(*cloudwatch.GetMetricDataOutput, bool) bool, _ ...request.Option) error {
	m.getInput = input
	if m.getErr != nil {
		return m.getErr
	}
	for i, page := range m.pages {
		if !fn(page, i == len(m.pages)-1) {
			break
		}
	}
	return nil
}

var _ = Describe("CloudWatchStore", func() {
	var (
		client *mockCloudWatch
		store  *metricstore.CloudWatchStore
		ctx    context.Context
		now    time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		client = &mockCloudWatch{}
		store = metricstore.NewCloudWatchStore(lagertest.NewTestLogger("cloudwatch-store"), client)
	})

	Describe("PutSample", func() {
		It("publishes a single high resolution datapoint", func() {
			err := store.PutSample(ctx, models.MetricSample{
				Namespace:         "ECS/QueueProcessing",
				MetricName:        "MsgProcessingDuration",
				Value:             5,
				Unit:              models.UnitSeconds,
				Dimensions:        models.MetricDimensions("single-queue", "work"),
				Timestamp:         now,
				StorageResolution: models.HighResolution,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(client.putInputs).To(HaveLen(1))

			input := client.putInputs[0]
			Expect(aws.StringValue(input.Namespace)).To(Equal("ECS/QueueProcessing"))
			Expect(input.MetricData).To(HaveLen(1))
			datum := input.MetricData[0]
			Expect(aws.StringValue(datum.MetricName)).To(Equal("MsgProcessingDuration"))
			Expect(aws.Float64Value(datum.Value)).To(Equal(5.0))
			Expect(aws.StringValue(datum.Unit)).To(Equal("Seconds"))
			Expect(aws.TimeValue(datum.Timestamp)).To(Equal(now))
			Expect(aws.Int64Value(datum.StorageResolution)).To(Equal(int64(1)))
			Expect(datum.Dimensions).To(Equal([]*cloudwatch.Dimension{
				{Name: aws.String("Type"), Value: aws.String("single-queue")},
				{Name: aws.String("QueueName"), Value: aws.String("work")},
			}))
		})

		It("leaves optional fields unset", func() {
			Expect(store.PutSample(ctx, models.MetricSample{Namespace: "ns", MetricName: "m", Value: 1})).To(Succeed())
			datum := client.putInputs[0].MetricData[0]
			Expect(datum.Unit).To(BeNil())
			Expect(datum.Timestamp).To(BeNil())
			Expect(datum.StorageResolution).To(BeNil())
		})

		It("wraps errors", func() {
			client.putErr = errors.New("throttled")
			err := store.PutSample(ctx, models.MetricSample{Namespace: "ns", MetricName: "m"})
			Expect(err).To(MatchError(ContainSubstring("throttled")))
		})
	})

	Describe("FetchSamples", func() {
		var query models.MetricQuery

		BeforeEach(func() {
			query = models.MetricQuery{
				Namespace:  "ECS/QueueProcessing",
				MetricName: "MsgProcessingDuration",
				Dimensions: models.MetricDimensions("single-queue", "work"),
				Start:      now.Add(-24 * time.Hour),
				End:        now,
				Period:     time.Second,
				Statistic:  models.StatisticAverage,
			}
		})

		It("collects values from every page", func() {
			client.pages = []*cloudwatch.GetMetricDataOutput{
				{MetricDataResults: []*cloudwatch.MetricDataResult{{Id: aws.String("samples"), Values: aws.Float64Slice([]float64{5, 5, 5})}}},
				{MetricDataResults: []*cloudwatch.MetricDataResult{{Id: aws.String("samples"), Values: aws.Float64Slice([]float64{4})}}},
			}
			values, err := store.FetchSamples(ctx, query)
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]float64{5, 5, 5, 4}))

			input := client.getInput
			Expect(aws.TimeValue(input.StartTime)).To(Equal(now.Add(-24 * time.Hour)))
			Expect(aws.TimeValue(input.EndTime)).To(Equal(now))
			stat := input.MetricDataQueries[0].MetricStat
			Expect(aws.Int64Value(stat.Period)).To(Equal(int64(1)))
			Expect(aws.StringValue(stat.Stat)).To(Equal("Average"))
			Expect(aws.StringValue(stat.Metric.MetricName)).To(Equal("MsgProcessingDuration"))
			Expect(stat.Metric.Dimensions).To(HaveLen(2))
		})

		It("returns an empty list when the window has no datapoints", func() {
			client.pages = []*cloudwatch.GetMetricDataOutput{{MetricDataResults: []*cloudwatch.MetricDataResult{{Id: aws.String("samples")}}}}
			values, err := store.FetchSamples(ctx, query)
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(BeEmpty())
		})

		It("defaults period and statistic", func() {
			query.Period = 0
			query.Statistic = ""
			_, err := store.FetchSamples(ctx, query)
			Expect(err).NotTo(HaveOccurred())
			stat := client.getInput.MetricDataQueries[0].MetricStat
			Expect(aws.Int64Value(stat.Period)).To(Equal(int64(1)))
			Expect(aws.StringValue(stat.Stat)).To(Equal("Average"))
		})

		It("wraps errors", func() {
			client.getErr = errors.New("access denied")
			_, err := store.FetchSamples(ctx, query)
			Expect(err).To(MatchError(ContainSubstring("access denied")))
		})
	})
})
