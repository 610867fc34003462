package policystore_test

import (
	"context"
	"errors"

	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/policystore"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/applicationautoscaling"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockAutoScaling struct {
	describeInput *applicationautoscaling.DescribeScalingPoliciesInput
	policies      []*applicationautoscaling.ScalingPolicy
	describeErr   error

	putInput *applicationautoscaling.PutScalingPolicyInput
	putErr   error
}

func (m *mockAutoScaling) DescribeScalingPoliciesWithContext(_ aws.Context, input *applicationautoscaling.DescribeScalingPoliciesInput, _ ...request.Option) (*applicationautoscaling.DescribeScalingPoliciesOutput, error) {
	m.describeInput = input
	if m.describeErr != nil {
		return nil, m.describeErr
	}
	return &applicationautoscaling.DescribeScalingPoliciesOutput{ScalingPolicies: m.policies}, nil
}

func (m *mockAutoScaling) PutScalingPolicyWithContext(_ aws.Context, input *applicationautoscaling.PutScalingPolicyInput, _ ...request.Option) (*applicationautoscaling.PutScalingPolicyOutput, error) {
	m.putInput = input
	if m.putErr != nil {
		return nil, m.putErr
	}
	return &applicationautoscaling.PutScalingPolicyOutput{PolicyARN: aws.String("arn:policy")}, nil
}

var _ = Describe("ApplicationAutoScalingStore", func() {
	var (
		client *mockAutoScaling
		store  *policystore.ApplicationAutoScalingStore
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &mockAutoScaling{}
		store = policystore.NewApplicationAutoScalingStore(lagertest.NewTestLogger("policy-store"), client)
	})

	Describe("GetPolicy", func() {
		BeforeEach(func() {
			client.policies = []*applicationautoscaling.ScalingPolicy{{
				PolicyName:        aws.String("bpi-policy"),
				PolicyType:        aws.String("TargetTrackingScaling"),
				ServiceNamespace:  aws.String("ecs"),
				ResourceId:        aws.String("service/cluster/worker"),
				ScalableDimension: aws.String("ecs:service:DesiredCount"),
				TargetTrackingScalingPolicyConfiguration: &applicationautoscaling.TargetTrackingScalingPolicyConfiguration{
					TargetValue: aws.Float64(100),
					CustomizedMetricSpecification: &applicationautoscaling.CustomizedMetricSpecification{
						MetricName: aws.String("BacklogPerInstance"),
						Namespace:  aws.String("ECS/QueueProcessing"),
						Statistic:  aws.String("Average"),
						Dimensions: []*applicationautoscaling.MetricDimension{{Name: aws.String("QueueName"), Value: aws.String("work")}},
					},
					ScaleOutCooldown: aws.Int64(60),
					ScaleInCooldown:  aws.Int64(120),
					DisableScaleIn:   aws.Bool(false),
				},
			}}
		})

		It("looks the policy up by name and namespace", func() {
			policy, err := store.GetPolicy(ctx, "bpi-policy", "ecs")
			Expect(err).NotTo(HaveOccurred())
			Expect(aws.StringValueSlice(client.describeInput.PolicyNames)).To(Equal([]string{"bpi-policy"}))
			Expect(aws.StringValue(client.describeInput.ServiceNamespace)).To(Equal("ecs"))

			Expect(policy.PolicyName).To(Equal("bpi-policy"))
			Expect(policy.PolicyType).To(Equal(models.PolicyTypeTargetTracking))
			Expect(policy.ResourceID).To(Equal("service/cluster/worker"))
			Expect(policy.ScalableDimension).To(Equal("ecs:service:DesiredCount"))
			Expect(policy.TargetTracking.TargetValue).To(Equal(100.0))
			Expect(*policy.TargetTracking.ScaleOutCooldown).To(Equal(int64(60)))
			Expect(*policy.TargetTracking.ScaleInCooldown).To(Equal(int64(120)))
			Expect(policy.TargetTracking.CustomizedMetric).To(Equal(&models.CustomizedMetricSpecification{
				MetricName: "BacklogPerInstance",
				Namespace:  "ECS/QueueProcessing",
				Statistic:  "Average",
				Dimensions: []models.Dimension{{Name: "QueueName", Value: "work"}},
			}))
		})

		It("flags metric math specifications", func() {
			client.policies[0].TargetTrackingScalingPolicyConfiguration.CustomizedMetricSpecification.Metrics = []*applicationautoscaling.TargetTrackingMetricDataQuery{{Id: aws.String("m1")}}
			policy, err := store.GetPolicy(ctx, "bpi-policy", "ecs")
			Expect(err).NotTo(HaveOccurred())
			Expect(policy.TargetTracking.CustomizedMetric.UsesMetricMath).To(BeTrue())
		})

		It("maps a predefined metric", func() {
			client.policies[0].TargetTrackingScalingPolicyConfiguration.CustomizedMetricSpecification = nil
			client.policies[0].TargetTrackingScalingPolicyConfiguration.PredefinedMetricSpecification = &applicationautoscaling.PredefinedMetricSpecification{
				PredefinedMetricType: aws.String("ECSServiceAverageCPUUtilization"),
			}
			policy, err := store.GetPolicy(ctx, "bpi-policy", "ecs")
			Expect(err).NotTo(HaveOccurred())
			Expect(policy.TargetTracking.PredefinedMetric.PredefinedMetricType).To(Equal("ECSServiceAverageCPUUtilization"))
			Expect(policy.TargetTracking.CustomizedMetric).To(BeNil())
		})

		It("returns ErrPolicyNotFound for an unknown policy", func() {
			client.policies = nil
			_, err := store.GetPolicy(ctx, "missing", "ecs")
			Expect(err).To(MatchError(policystore.ErrPolicyNotFound))
		})

		It("leaves the target tracking configuration nil for step policies", func() {
			client.policies[0].PolicyType = aws.String("StepScaling")
			client.policies[0].TargetTrackingScalingPolicyConfiguration = nil
			policy, err := store.GetPolicy(ctx, "bpi-policy", "ecs")
			Expect(err).NotTo(HaveOccurred())
			Expect(policy.TargetTracking).To(BeNil())
		})

		It("wraps api errors", func() {
			client.describeErr = errors.New("throttled")
			_, err := store.GetPolicy(ctx, "bpi-policy", "ecs")
			Expect(err).To(MatchError(ContainSubstring("throttled")))
		})
	})

	Describe("PutPolicy", func() {
		var policy *models.ScalingPolicy

		BeforeEach(func() {
			cooldown := int64(30)
			policy = &models.ScalingPolicy{
				PolicyName:        "bpi-policy",
				PolicyType:        models.PolicyTypeTargetTracking,
				ServiceNamespace:  "ecs",
				ResourceID:        "service/cluster/worker",
				ScalableDimension: "ecs:service:DesiredCount",
				TargetTracking: &models.TargetTrackingConfiguration{
					TargetValue: 60,
					CustomizedMetric: &models.CustomizedMetricSpecification{
						MetricName: "BacklogPerInstance",
						Namespace:  "ECS/QueueProcessing",
						Statistic:  "Average",
						Dimensions: models.MetricDimensions("single-queue", "work"),
					},
					ScaleOutCooldown: &cooldown,
				},
			}
		})

		It("writes the full policy definition", func() {
			Expect(store.PutPolicy(ctx, policy)).To(Succeed())
			input := client.putInput
			Expect(aws.StringValue(input.PolicyName)).To(Equal("bpi-policy"))
			Expect(aws.StringValue(input.PolicyType)).To(Equal("TargetTrackingScaling"))
			Expect(aws.StringValue(input.ServiceNamespace)).To(Equal("ecs"))
			Expect(aws.StringValue(input.ResourceId)).To(Equal("service/cluster/worker"))
			Expect(aws.StringValue(input.ScalableDimension)).To(Equal("ecs:service:DesiredCount"))

			tt := input.TargetTrackingScalingPolicyConfiguration
			Expect(aws.Float64Value(tt.TargetValue)).To(Equal(60.0))
			Expect(aws.Int64Value(tt.ScaleOutCooldown)).To(Equal(int64(30)))
			Expect(tt.ScaleInCooldown).To(BeNil())
			Expect(aws.StringValue(tt.CustomizedMetricSpecification.MetricName)).To(Equal("BacklogPerInstance"))
			Expect(aws.StringValue(tt.CustomizedMetricSpecification.Statistic)).To(Equal("Average"))
			Expect(tt.CustomizedMetricSpecification.Unit).To(BeNil())
			Expect(tt.CustomizedMetricSpecification.Dimensions).To(HaveLen(2))
		})

		It("refuses policies without target tracking", func() {
			policy.TargetTracking = nil
			Expect(store.PutPolicy(ctx, policy)).To(MatchError(policystore.ErrNotTargetTracking))
			Expect(client.putInput).To(BeNil())
		})

		It("refuses metric math specifications", func() {
			policy.TargetTracking.CustomizedMetric.UsesMetricMath = true
			Expect(store.PutPolicy(ctx, policy)).To(MatchError(policystore.ErrMetricMathNotSupported))
			Expect(client.putInput).To(BeNil())
		})

		It("wraps api errors", func() {
			client.putErr = errors.New("validation failed")
			Expect(store.PutPolicy(ctx, policy)).To(MatchError(ContainSubstring("validation failed")))
		})
	})
})
