package queue_test

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sqs"
)

type mockSQS struct {
	sync.Mutex
	queueURL  string
	getURLErr error

	sent       []*sqs.SendMessageInput
	sendErr    error
	received   []*sqs.ReceiveMessageInput
	receiveOut *sqs.ReceiveMessageOutput
	receiveErr error
	deleted    []*sqs.DeleteMessageInput
	deleteErr  error
	attributes map[string]*string
	attrErr    error
}

func (m *mockSQS) GetQueueUrlWithContext(_ aws.Context, input *sqs.GetQueueUrlInput, _ ...request.Option) (*sqs.GetQueueUrlOutput, error) {
	if m.getURLErr != nil {
		return nil, m.getURLErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String(m.queueURL + aws.StringValue(input.QueueName))}, nil
}

func (m *mockSQS) SendMessageWithContext(_ aws.Context, input *sqs.SendMessageInput, _ ...request.Option) (*sqs.SendMessageOutput, error) {
	m.Lock()
	defer m.Unlock()
	m.sent = append(m.sent, input)
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-id")}, nil
}

func (m *mockSQS) ReceiveMessageWithContext(_ aws.Context, input *sqs.ReceiveMessageInput, _ ...request.Option) (*sqs.ReceiveMessageOutput, error) {
	m.Lock()
	defer m.Unlock()
	m.received = append(m.received, input)
	if m.receiveErr != nil {
		return nil, m.receiveErr
	}
	if m.receiveOut == nil {
		return &sqs.ReceiveMessageOutput{}, nil
	}
	return m.receiveOut, nil
}

func (m *mockSQS) DeleteMessageWithContext(_ aws.Context, input *sqs.DeleteMessageInput, _ ...request.Option) (*sqs.DeleteMessageOutput, error) {
	m.Lock()
	defer m.Unlock()
	m.deleted = append(m.deleted, input)
	return &sqs.DeleteMessageOutput{}, m.deleteErr
}

func (m *mockSQS) GetQueueAttributesWithContext(_ aws.Context, _ *sqs.GetQueueAttributesInput, _ ...request.Option) (*sqs.GetQueueAttributesOutput, error) {
	if m.attrErr != nil {
		return nil, m.attrErr
	}
	return &sqs.GetQueueAttributesOutput{Attributes: m.attributes}, nil
}
