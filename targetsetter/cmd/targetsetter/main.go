package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/backlog"
	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"
	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/operator"
	"github.com/ecs-queue-autoscaler/autoscaler/policystore"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"
	"github.com/ecs-queue-autoscaler/autoscaler/ratelimiter"
	"github.com/ecs-queue-autoscaler/autoscaler/startup"
	bpisync "github.com/ecs-queue-autoscaler/autoscaler/sync"
	"github.com/ecs-queue-autoscaler/autoscaler/targetsetter"
	"github.com/ecs-queue-autoscaler/autoscaler/targetsetter/config"
	"github.com/ecs-queue-autoscaler/autoscaler/targetsetter/server"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

const metricsNamespace = "bpi"

func main() {
	conf, logger := startup.Bootstrap("targetsetter", config.LoadConfig)
	os.Exit(run(conf, logger))
}

func run(conf *config.Config, logger lager.Logger) int {
	sess, err := cloud.NewSession(conf.AWS)
	startup.ExitOnError(err, logger, "failed-to-create-aws-session", lager.Data{"aws": conf.AWS})
	clients := cloud.NewClients(sess)
	clk := clock.NewClock()

	store := metricstore.NewCloudWatchStore(logger, clients.CloudWatch)
	policies := policystore.NewApplicationAutoScalingStore(logger, clients.AutoScaling)

	var schedule cron.Schedule
	if conf.Schedule != "" {
		schedule, err = operator.ParseSchedule(conf.Schedule)
		startup.ExitOnError(err, logger, "failed-to-parse-schedule")
	}

	var (
		historyDB  db.TargetHistoryDB
		locker     bpisync.Locker
		checkers   []healthendpoint.Checker
		collectors []prometheus.Collector
	)

	// Past this point failures return 1 so the deferred closes run.
	if conf.Lock.Enabled() {
		redisLock, err := bpisync.NewRedisLockFromURL(logger, conf.Lock.RedisURL)
		if err != nil {
			logger.Error("failed-to-create-run-lock", err)
			return 1
		}
		defer func() { _ = redisLock.Close() }()
		locker = redisLock
		checkers = append(checkers, healthendpoint.RedisChecker("run_lock", redisLock))
	}

	var workQueue *queue.SQSQueue
	if conf.Schedule != "" && conf.Backlog.Enabled() {
		workQueue, err = queue.NewSQSQueue(context.Background(), logger, clients.SQS, conf.QueueName)
		if err != nil {
			logger.Error("failed-to-open-queue", err, lager.Data{"queue": conf.QueueName})
			return 1
		}
	}

	if conf.History.Enabled() {
		sqlDB, err := startup.OpenTargetHistoryDB(conf.History.DB, logger)
		if err != nil {
			return 1
		}
		defer func() { _ = sqlDB.Close() }()
		historyDB = sqlDB
		checkers = append(checkers, healthendpoint.DbChecker(db.TargetHistoryDb, sqlDB))
		collectors = append(collectors, healthendpoint.NewPoolStatsCollector(metricsNamespace, "targetsetter", db.TargetHistoryDb, sqlDB))
	}

	setter := targetsetter.NewTargetSetter(logger, clk, store, store, policies, historyDB, locker, conf)

	if conf.Schedule == "" {
		return runOnce(logger, setter, conf.RunTimeout)
	}

	members := grouper.Members{
		{Name: "target_setter", Runner: operator.NewScheduleRunner(setter, schedule, conf.RunTimeout, clk, logger)},
	}

	if workQueue != nil {
		reporter := backlog.NewReporter(logger, clk, workQueue,
			cloud.NewECSTaskCounter(clients.ECS, conf.Backlog.Cluster, conf.Backlog.Service), store, backlog.Config{
				Namespace:  conf.Metrics.Namespace,
				MetricName: conf.Metrics.BPIMetricName,
				MetricType: conf.Metrics.MetricType,
				QueueName:  conf.QueueName,
			})
		members = append(members, grouper.Member{
			Name:   "backlog_reporter",
			Runner: operator.NewOperatorRunner(reporter, conf.Backlog.Interval, conf.Backlog.Interval, clk, logger),
		})
	}

	if historyDB != nil {
		pruner := operator.NewHistoryPruner(historyDB, conf.History.Cutoff, clk, logger)
		members = append(members, grouper.Member{
			Name:   "history_pruner",
			Runner: operator.NewOperatorRunner(pruner, conf.History.PruneInterval, conf.RunTimeout, clk, logger),
		})
	}

	httpRequestCollector := healthendpoint.NewHTTPRequestCollector(metricsNamespace, "targetsetter")
	collectors = append(collectors, httpRequestCollector)
	registry := healthendpoint.NewRegistry(logger, collectors...)

	servers, err := startup.BuildServers([]startup.ServerBuilder{
		startup.Server("target_server", func() (ifrit.Runner, error) {
			if conf.Server.Port == 0 {
				return nil, nil
			}
			var limiter ratelimiter.Limiter
			if conf.TriggerRateLimit.Enabled() {
				limiter = ratelimiter.DefaultRateLimiter(conf.TriggerRateLimit, logger)
			}
			return server.NewServer(logger, conf.Server, historyDB, setter, httpRequestCollector, limiter)
		}),
		startup.Server("health_server", func() (ifrit.Runner, error) {
			if conf.Health.ServerConfig.Port == 0 {
				return nil, nil
			}
			return healthendpoint.NewServerWithBasicAuth(conf.Health, checkers, logger, registry, time.Now)
		}),
	}, logger)
	if err != nil {
		return 1
	}
	members = append(members, servers...)

	if err := startup.StartServices(logger, members); err != nil {
		return 1
	}
	return 0
}

// runOnce exits 0 when the target was set or another run holds the lock.
func runOnce(logger lager.Logger, setter *targetsetter.TargetSetter, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	decision, err := setter.Run(ctx)
	switch {
	case errors.Is(err, targetsetter.ErrRunInProgress):
		logger.Info("skipped-run-in-progress")
		return 0
	case err != nil:
		logger.Error("failed-to-set-target", err, cloud.ErrorData(err))
		return 1
	}
	logger.Info("target-set", lager.Data{"decision": decision})
	return 0
}
