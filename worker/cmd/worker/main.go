package main

import (
	"context"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"
	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"
	"github.com/ecs-queue-autoscaler/autoscaler/startup"
	"github.com/ecs-queue-autoscaler/autoscaler/worker"
	"github.com/ecs-queue-autoscaler/autoscaler/worker/config"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

func main() {
	conf, logger := startup.Bootstrap("worker", config.LoadConfig)

	sess, err := cloud.NewSession(conf.AWS)
	startup.ExitOnError(err, logger, "failed-to-create-aws-session", lager.Data{"aws": conf.AWS})
	clients := cloud.NewClients(sess)

	var opts []queue.Option
	if conf.Poll.VisibilityTimeout > 0 {
		opts = append(opts, queue.WithVisibilityTimeout(conf.Poll.VisibilityTimeout))
	}
	workQueue, err := queue.NewSQSQueue(context.Background(), logger, clients.SQS, conf.QueueName, opts...)
	startup.ExitOnError(err, logger, "failed-to-open-queue", lager.Data{"queue": conf.QueueName})

	store := metricstore.NewCloudWatchStore(logger, clients.CloudWatch)
	metrics := worker.NewMetrics()
	w := worker.NewWorker(logger, clock.NewClock(), workQueue, workQueue.Name(), store, conf, metrics)

	registry := healthendpoint.NewRegistry(logger, metrics)
	members := grouper.Members{{Name: "worker", Runner: w}}
	servers, err := startup.BuildServers([]startup.ServerBuilder{
		startup.Server("health_server", func() (ifrit.Runner, error) {
			if conf.Health.ServerConfig.Port == 0 {
				return nil, nil
			}
			return healthendpoint.NewServerWithBasicAuth(conf.Health, []healthendpoint.Checker{w.ReadinessChecker()}, logger, registry, time.Now)
		}),
	}, logger)
	startup.ExitOnError(err, logger, "failed-to-create-servers")
	members = append(members, servers...)

	if err := startup.StartServices(logger, members); err != nil {
		startup.ExitOnError(err, logger, "worker-exited-with-failure")
	}
}
