package queue

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
)

const (
	fifoSuffix = ".fifo"

	// SQS bounds for a single ReceiveMessage call
	MaxReceiveMessages = 10
	MaxWaitTime        = 20 * time.Second
)

type SQSQueue struct {
	logger            lager.Logger
	client            cloud.SQSAPI
	name              string
	url               string
	fifo              bool
	visibilityTimeout time.Duration
}

type Option func(*SQSQueue)

// WithVisibilityTimeout overrides the queue's visibility timeout for received messages.
func WithVisibilityTimeout(timeout time.Duration) Option {
	return func(q *SQSQueue) {
		q.visibilityTimeout = timeout
	}
}

// NewSQSQueue resolves the URL of the queue called name.
func NewSQSQueue(ctx context.Context, logger lager.Logger, client cloud.SQSAPI, name string, opts ...Option) (*SQSQueue, error) {
	logger = logger.Session("sqs-queue", lager.Data{"queue": name})
	out, err := client.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(name)})
	if err != nil {
		logger.Error("failed-to-get-queue-url", err, cloud.ErrorData(err))
		return nil, fmt.Errorf("failed to resolve queue %s: %w", name, err)
	}
	q := &SQSQueue{
		logger: logger,
		client: client,
		name:   name,
		url:    aws.StringValue(out.QueueUrl),
		fifo:   strings.HasSuffix(name, fifoSuffix),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

func (q *SQSQueue) Name() string {
	return q.name
}

func (q *SQSQueue) URL() string {
	return q.url
}

func (q *SQSQueue) IsFIFO() bool {
	return q.fifo
}

// Send returns the message id. Group and deduplication ids are only
// passed to FIFO queues, standard queues reject them.
func (q *SQSQueue) Send(ctx context.Context, msg *models.OutgoingMessage) (string, error) {
	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.url),
		MessageBody: aws.String(msg.Body),
	}
	if q.fifo {
		input.MessageGroupId = aws.String(msg.GroupID)
		input.MessageDeduplicationId = aws.String(msg.DeduplicationID)
	}
	out, err := q.client.SendMessageWithContext(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send message to %s: %w", q.name, err)
	}
	return aws.StringValue(out.MessageId), nil
}

func (q *SQSQueue) Receive(ctx context.Context, maxMessages int64, waitTime time.Duration) ([]models.QueueMessage, error) {
	if maxMessages < 1 {
		maxMessages = 1
	}
	if maxMessages > MaxReceiveMessages {
		maxMessages = MaxReceiveMessages
	}
	if waitTime > MaxWaitTime {
		waitTime = MaxWaitTime
	}
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.url),
		MaxNumberOfMessages: aws.Int64(maxMessages),
		WaitTimeSeconds:     aws.Int64(int64(waitTime / time.Second)),
		AttributeNames:      []*string{aws.String(sqs.MessageSystemAttributeNameApproximateReceiveCount)},
	}
	if q.visibilityTimeout > 0 {
		input.VisibilityTimeout = aws.Int64(int64(math.Ceil(q.visibilityTimeout.Seconds())))
	}
	out, err := q.client.ReceiveMessageWithContext(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages from %s: %w", q.name, err)
	}

	messages := make([]models.QueueMessage, 0, len(out.Messages))
	for _, m := range out.Messages {
		receiveCount, _ := strconv.Atoi(aws.StringValue(m.Attributes[sqs.MessageSystemAttributeNameApproximateReceiveCount]))
		messages = append(messages, models.QueueMessage{
			MessageID:     aws.StringValue(m.MessageId),
			ReceiptHandle: aws.StringValue(m.ReceiptHandle),
			Body:          aws.StringValue(m.Body),
			ReceiveCount:  receiveCount,
		})
	}
	return messages, nil
}

func (q *SQSQueue) Delete(ctx context.Context, msg models.QueueMessage) error {
	_, err := q.client.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.url),
		ReceiptHandle: aws.String(msg.ReceiptHandle),
	})
	if err != nil {
		return fmt.Errorf("failed to delete message %s from %s: %w", msg.MessageID, q.name, err)
	}
	return nil
}

// ApproximateDepth returns the number of visible messages.
func (q *SQSQueue) ApproximateDepth(ctx context.Context) (int64, error) {
	out, err := q.client.GetQueueAttributesWithContext(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(q.url),
		AttributeNames: []*string{aws.String(sqs.QueueAttributeNameApproximateNumberOfMessages)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get attributes of %s: %w", q.name, err)
	}
	raw, ok := out.Attributes[sqs.QueueAttributeNameApproximateNumberOfMessages]
	if !ok {
		return 0, fmt.Errorf("queue %s did not report %s", q.name, sqs.QueueAttributeNameApproximateNumberOfMessages)
	}
	depth, err := strconv.ParseInt(aws.StringValue(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid queue depth %q: %w", aws.StringValue(raw), err)
	}
	return depth, nil
}
