package testhelpers_test

import (
	"context"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/policystore"
	. "github.com/ecs-queue-autoscaler/autoscaler/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryQueue", func() {
	var (
		q   *MemoryQueue
		ctx context.Context
	)

	BeforeEach(func() {
		q = NewMemoryQueue("work.fifo")
		ctx = context.Background()
	})

	send := func(body, group string) {
		_, err := q.Send(ctx, &models.OutgoingMessage{Body: body, GroupID: group})
		Expect(err).NotTo(HaveOccurred())
	}

	It("holds back a group while one of its messages is in flight", func() {
		send("a1", "a")
		send("a2", "a")
		send("b1", "b")

		messages, err := q.Receive(ctx, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(HaveLen(2))
		Expect(messages[0].Body).To(Equal("a1"))
		Expect(messages[1].Body).To(Equal("b1"))
		Expect(q.ApproximateDepth(ctx)).To(Equal(int64(1)))

		Expect(q.Delete(ctx, messages[0])).To(Succeed())
		messages, err = q.Receive(ctx, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(ConsistOf(HaveField("Body", "a2")))
	})

	It("rejects a receipt handle that is not in flight", func() {
		Expect(q.Delete(ctx, models.QueueMessage{ReceiptHandle: "gone"})).To(MatchError(ErrUnknownReceiptHandle))
	})

	It("returns nothing once the wait time elapses", func() {
		messages, err := q.Receive(ctx, 1, 10*time.Millisecond)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(BeEmpty())
	})
})

var _ = Describe("MemoryMetricStore", func() {
	It("averages samples per period inside the query window", func() {
		store := NewMemoryMetricStore()
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		dims := models.MetricDimensions("bpi-demo", "work.fifo")
		put := func(offset time.Duration, value float64, dimensions []models.Dimension) {
			Expect(store.PutSample(context.Background(), models.MetricSample{
				Namespace: "ECS/BPI", MetricName: "duration", Value: value,
				Dimensions: dimensions, Timestamp: start.Add(offset),
			})).To(Succeed())
		}
		put(time.Second, 2, dims)
		put(time.Second+500*time.Millisecond, 4, dims)
		put(3*time.Second, 7, dims)
		put(3*time.Second, 100, models.MetricDimensions("other", "work.fifo"))
		put(time.Hour, 9, dims)

		values, err := store.FetchSamples(context.Background(), models.MetricQuery{
			Namespace: "ECS/BPI", MetricName: "duration", Dimensions: dims,
			Start: start, End: start.Add(time.Minute), Period: time.Second,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]float64{3, 7}))
	})
})

var _ = Describe("MemoryPolicyStore", func() {
	It("hands out copies", func() {
		policy := &models.ScalingPolicy{
			PolicyName:       "bpi-policy",
			ServiceNamespace: "ecs",
			TargetTracking:   &models.TargetTrackingConfiguration{TargetValue: 10},
		}
		store := NewMemoryPolicyStore(policy)

		got, err := store.GetPolicy(context.Background(), "bpi-policy", "ecs")
		Expect(err).NotTo(HaveOccurred())
		got.TargetTracking.TargetValue = 20

		again, err := store.GetPolicy(context.Background(), "bpi-policy", "ecs")
		Expect(err).NotTo(HaveOccurred())
		Expect(again.TargetTracking.TargetValue).To(Equal(10.0))

		_, err = store.GetPolicy(context.Background(), "bpi-policy", "ec2")
		Expect(err).To(MatchError(policystore.ErrPolicyNotFound))
	})
})
