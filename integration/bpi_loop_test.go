package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/backlog"
	"github.com/ecs-queue-autoscaler/autoscaler/configutil"
	"github.com/ecs-queue-autoscaler/autoscaler/fakes"
	"github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/producer"
	"github.com/ecs-queue-autoscaler/autoscaler/targetsetter"
	targetsetterconfig "github.com/ecs-queue-autoscaler/autoscaler/targetsetter/config"
	. "github.com/ecs-queue-autoscaler/autoscaler/testhelpers"
	"github.com/ecs-queue-autoscaler/autoscaler/worker"
	workerconfig "github.com/ecs-queue-autoscaler/autoscaler/worker/config"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

var _ = Describe("Backlog per instance loop", func() {
	const (
		queueName  = "work.fifo"
		policyName = "bpi-policy"
	)

	var (
		ctx        context.Context
		fclock     *fakeclock.FakeClock
		logger     *lagertest.TestLogger
		workQueue  *MemoryQueue
		store      *MemoryMetricStore
		policies   *MemoryPolicyStore
		dimensions []models.Dimension
		lambdaEnv  configutil.MapEnv
	)

	BeforeEach(func() {
		ctx = context.Background()
		fclock = fakeclock.NewFakeClock(time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC))
		logger = lagertest.NewTestLogger("integration")
		workQueue = NewMemoryQueue(queueName)
		store = NewMemoryMetricStore()
		dimensions = models.MetricDimensions("bpi-demo", queueName)
		policies = NewMemoryPolicyStore(&models.ScalingPolicy{
			PolicyName:        policyName,
			PolicyType:        models.PolicyTypeTargetTracking,
			ServiceNamespace:  models.ServiceNamespaceECS,
			ResourceID:        "service/demo-cluster/queue-proc",
			ScalableDimension: "ecs:service:DesiredCount",
			TargetTracking: &models.TargetTrackingConfiguration{
				TargetValue: 100,
				CustomizedMetric: &models.CustomizedMetricSpecification{
					MetricName: "bpi",
					Namespace:  "ECS/BPI",
					Statistic:  models.StatisticAverage,
					Dimensions: dimensions,
				},
			},
		})
		lambdaEnv = configutil.MapEnv{
			"queue_name":                queueName,
			"desired_latency":           "300",
			"default_msg_proc_duration": "10",
			"metric_namespace":          "ECS/BPI",
			"app_metric_name":           "msgProcessingDuration",
			"bpi_metric_name":           "bpi",
			"metric_type":               "bpi-demo",
			"scaling_policy_name":       policyName,
		}
	})

	loadTargetSetter := func() *targetsetter.TargetSetter {
		conf, err := targetsetterconfig.LoadConfig("", lambdaEnv)
		FailOnError("load target setter config", err)
		FailOnError("validate target setter config", conf.Validate())
		return targetsetter.NewTargetSetter(logger, fclock, store, store, policies, nil, nil, conf)
	}

	produce := func(count int, duration float64) {
		var next int64
		p := producer.NewProducer(logger, workQueue, func() int64 {
			next++
			return next
		}, nil)
		result, err := p.Produce(ctx, count, duration)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(producer.Result{Sent: count}))
	}

	Context("when ten five second items are worked off", func() {
		var (
			workerProcess ifrit.Process
			healthProcess ifrit.Process
			healthURL     string
		)

		BeforeEach(func() {
			produce(10, 5)

			conf, err := workerconfig.LoadConfig("", lambdaEnv)
			FailOnError("load worker config", err)
			conf.Poll.WaitTime = 100 * time.Millisecond
			conf.Health = helpers.HealthConfig{
				ServerConfig:          helpers.ServerConfig{Port: 23000 + GinkgoParallelProcess()},
				BasicAuth:             models.BasicAuth{Username: "health-user", Password: "health-password"},
				ReadinessCheckEnabled: true,
			}
			FailOnError("validate worker config", conf.Validate())
			healthURL = fmt.Sprintf("http://127.0.0.1:%d", conf.Health.ServerConfig.Port)

			metrics := worker.NewMetrics()
			w := worker.NewWorker(logger, fclock, workQueue, workQueue.Name(), store, conf, metrics)
			healthServer, err := healthendpoint.NewServerWithBasicAuth(conf.Health, []healthendpoint.Checker{w.ReadinessChecker()},
				logger, healthendpoint.NewRegistry(logger, metrics), time.Now)
			FailOnError("create health server", err)

			healthProcess = ginkgomon_v2.Invoke(healthServer)
			workerProcess = ginkgomon_v2.Invoke(w)

			for i := 0; i < 10; i++ {
				fclock.WaitForWatcherAndIncrement(5 * time.Second)
			}
			Eventually(func() int { return len(store.Samples("msgProcessingDuration")) }).Should(Equal(10))
		})

		AfterEach(func() {
			ginkgomon_v2.Interrupt(workerProcess)
			ginkgomon_v2.Interrupt(healthProcess)
		})

		It("empties the queue and records one duration sample per item", func() {
			Expect(workQueue.ApproximateDepth(ctx)).To(BeZero())
			Expect(workQueue.InFlight()).To(BeZero())
			for _, sample := range store.Samples("msgProcessingDuration") {
				Expect(sample.Value).To(Equal(5.0))
				Expect(sample.Unit).To(Equal(models.UnitSeconds))
				Expect(sample.Dimensions).To(Equal(dimensions))
			}
		})

		It("sets the target backlog per instance to 60", func() {
			decision, err := loadTargetSetter().Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(decision.SampleCount).To(Equal(10))
			Expect(decision.AverageDuration).To(Equal(5.0))
			Expect(decision.TargetBPI).To(Equal(int64(60)))

			policy, err := policies.GetPolicy(ctx, policyName, models.ServiceNamespaceECS)
			Expect(err).NotTo(HaveOccurred())
			Expect(policy.TargetTracking.TargetValue).To(Equal(60.0))
			Expect(policy.ResourceID).To(Equal("service/demo-cluster/queue-proc"))

			targets := store.Samples("bpiTarget")
			Expect(targets).To(HaveLen(1))
			Expect(targets[0].Value).To(Equal(60.0))
		})

		It("serves worker metrics behind basic auth and readiness without it", func() {
			t := GinkgoT()
			CheckHealthAuth(t, http.DefaultClient, healthURL+"/metrics", "health-user", "health-password", http.StatusOK)
			CheckHealthAuth(t, http.DefaultClient, healthURL+"/metrics", "health-user", "wrong", http.StatusUnauthorized)
			CheckHealthAuth(t, http.DefaultClient, healthURL+"/health/readiness", "", "", http.StatusOK)
		})
	})

	Context("when the window holds no samples", func() {
		It("falls back to the default duration", func() {
			decision, err := loadTargetSetter().Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(decision.UsedFallback).To(BeTrue())
			Expect(decision.TargetBPI).To(Equal(int64(30)))
		})
	})

	Context("when items wait in the queue", func() {
		It("reports the backlog per running task", func() {
			produce(12, 1)
			tasks := &fakes.FakeTaskCounter{}
			tasks.RunningTaskCountReturns(3, nil)

			reporter := backlog.NewReporter(logger, fclock, workQueue, tasks, store, backlog.Config{
				Namespace:  "ECS/BPI",
				MetricName: "bpi",
				MetricType: "bpi-demo",
				QueueName:  queueName,
			})
			sample, err := reporter.Report(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(sample.BacklogPerInstance).To(Equal(4.0))

			published := store.Samples("bpi")
			Expect(published).To(HaveLen(1))
			Expect(published[0].Dimensions).To(Equal(dimensions))
		})
	})
})
