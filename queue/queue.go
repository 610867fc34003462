package queue

import (
	"context"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/models"
)

type Sender interface {
	Send(ctx context.Context, msg *models.OutgoingMessage) (string, error)
}

type Receiver interface {
	Receive(ctx context.Context, maxMessages int64, waitTime time.Duration) ([]models.QueueMessage, error)
	Delete(ctx context.Context, msg models.QueueMessage) error
}

type DepthReader interface {
	ApproximateDepth(ctx context.Context) (int64, error)
}

type Queue interface {
	Sender
	Receiver
	DepthReader
	Name() string
}
