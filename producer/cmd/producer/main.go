package main

import (
	"context"
	"os"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/producer"
	"github.com/ecs-queue-autoscaler/autoscaler/producer/config"
	"github.com/ecs-queue-autoscaler/autoscaler/queue"
	"github.com/ecs-queue-autoscaler/autoscaler/startup"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"
)

func main() {
	conf, logger := startup.Bootstrap("producer", config.LoadConfig)

	sess, err := cloud.NewSession(conf.AWS)
	startup.ExitOnError(err, logger, "failed-to-create-aws-session", lager.Data{"aws": conf.AWS})
	clients := cloud.NewClients(sess)

	ctx := context.Background()
	workQueue, err := queue.NewSQSQueue(ctx, logger, clients.SQS, conf.QueueName)
	startup.ExitOnError(err, logger, "failed-to-open-queue", lager.Data{"queue": conf.QueueName})

	var limiter *rate.Limiter
	if conf.SendRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(conf.SendRate), 1)
	}

	p := producer.NewProducer(logger, workQueue, producer.RandomID, limiter)
	result, err := p.Produce(ctx, *conf.NumberOfMessages, *conf.MessageDuration)
	startup.ExitOnError(err, logger, "failed-to-produce")

	logger.Info("produced", lager.Data{"queue": conf.QueueName, "sent": result.Sent, "failed": result.Failed})
	if result.Failed > 0 {
		os.Exit(1)
	}
}
