package cloud

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/applicationautoscaling"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// SQSAPI is the part of the SQS client the queue adapter uses.
type SQSAPI interface {
	GetQueueUrlWithContext(aws.Context, *sqs.GetQueueUrlInput, ...request.Option) (*sqs.GetQueueUrlOutput, error)
	SendMessageWithContext(aws.Context, *sqs.SendMessageInput, ...request.Option) (*sqs.SendMessageOutput, error)
	ReceiveMessageWithContext(aws.Context, *sqs.ReceiveMessageInput, ...request.Option) (*sqs.ReceiveMessageOutput, error)
	DeleteMessageWithContext(aws.Context, *sqs.DeleteMessageInput, ...request.Option) (*sqs.DeleteMessageOutput, error)
	GetQueueAttributesWithContext(aws.Context, *sqs.GetQueueAttributesInput, ...request.Option) (*sqs.GetQueueAttributesOutput, error)
}

type CloudWatchAPI interface {
	PutMetricDataWithContext(aws.Context, *cloudwatch.PutMetricDataInput, ...request.Option) (*cloudwatch.PutMetricDataOutput, error)
	GetMetricDataPagesWithContext(aws.Context, *cloudwatch.GetMetricDataInput, func(*cloudwatch.GetMetricDataOutput, bool) bool, ...request.Option) error
}

type AutoScalingAPI interface {
	DescribeScalingPoliciesWithContext(aws.Context, *applicationautoscaling.DescribeScalingPoliciesInput, ...request.Option) (*applicationautoscaling.DescribeScalingPoliciesOutput, error)
	PutScalingPolicyWithContext(aws.Context, *applicationautoscaling.PutScalingPolicyInput, ...request.Option) (*applicationautoscaling.PutScalingPolicyOutput, error)
}

type ECSAPI interface {
	DescribeServicesWithContext(aws.Context, *ecs.DescribeServicesInput, ...request.Option) (*ecs.DescribeServicesOutput, error)
}

var (
	_ SQSAPI         = (*sqs.SQS)(nil)
	_ CloudWatchAPI  = (*cloudwatch.CloudWatch)(nil)
	_ AutoScalingAPI = (*applicationautoscaling.ApplicationAutoScaling)(nil)
	_ ECSAPI         = (*ecs.ECS)(nil)
)

type Clients struct {
	SQS         SQSAPI
	CloudWatch  CloudWatchAPI
	AutoScaling AutoScalingAPI
	ECS         ECSAPI
}

func NewClients(sess *session.Session) *Clients {
	return &Clients{
		SQS:         sqs.New(sess),
		CloudWatch:  cloudwatch.New(sess),
		AutoScaling: applicationautoscaling.New(sess),
		ECS:         ecs.New(sess),
	}
}
