package policystore

import (
	"context"
	"fmt"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/applicationautoscaling"
)

type ApplicationAutoScalingStore struct {
	logger lager.Logger
	client cloud.AutoScalingAPI
}

func NewApplicationAutoScalingStore(logger lager.Logger, client cloud.AutoScalingAPI) *ApplicationAutoScalingStore {
	return &ApplicationAutoScalingStore{
		logger: logger.Session("policy-store"),
		client: client,
	}
}

func (s *ApplicationAutoScalingStore) GetPolicy(ctx context.Context, name, serviceNamespace string) (*models.ScalingPolicy, error) {
	out, err := s.client.DescribeScalingPoliciesWithContext(ctx, &applicationautoscaling.DescribeScalingPoliciesInput{
		PolicyNames:      []*string{aws.String(name)},
		ServiceNamespace: aws.String(serviceNamespace),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe scaling policy %s: %w", name, err)
	}
	if len(out.ScalingPolicies) == 0 {
		return nil, fmt.Errorf("%w: %s in namespace %s", ErrPolicyNotFound, name, serviceNamespace)
	}
	if len(out.ScalingPolicies) > 1 {
		s.logger.Info("multiple-policies-found-using-first", lager.Data{"policy": name, "count": len(out.ScalingPolicies)})
	}
	return fromScalingPolicy(out.ScalingPolicies[0]), nil
}

// PutPolicy writes the whole target tracking configuration; fields left nil are cleared.
func (s *ApplicationAutoScalingStore) PutPolicy(ctx context.Context, policy *models.ScalingPolicy) error {
	if policy.TargetTracking == nil {
		return fmt.Errorf("%w: %s", ErrNotTargetTracking, policy.PolicyName)
	}
	if cm := policy.TargetTracking.CustomizedMetric; cm != nil && cm.UsesMetricMath {
		return fmt.Errorf("%w: %s", ErrMetricMathNotSupported, policy.PolicyName)
	}
	_, err := s.client.PutScalingPolicyWithContext(ctx, &applicationautoscaling.PutScalingPolicyInput{
		PolicyName:                               aws.String(policy.PolicyName),
		PolicyType:                               aws.String(policy.PolicyType),
		ServiceNamespace:                         aws.String(policy.ServiceNamespace),
		ResourceId:                               aws.String(policy.ResourceID),
		ScalableDimension:                        aws.String(policy.ScalableDimension),
		TargetTrackingScalingPolicyConfiguration: toTargetTracking(policy.TargetTracking),
	})
	if err != nil {
		return fmt.Errorf("failed to put scaling policy %s: %w", policy.PolicyName, err)
	}
	s.logger.Info("put-policy", lager.Data{"policy": policy.PolicyName, "target_value": policy.TargetTracking.TargetValue})
	return nil
}

func fromScalingPolicy(p *applicationautoscaling.ScalingPolicy) *models.ScalingPolicy {
	policy := &models.ScalingPolicy{
		PolicyName:        aws.StringValue(p.PolicyName),
		PolicyType:        aws.StringValue(p.PolicyType),
		ServiceNamespace:  aws.StringValue(p.ServiceNamespace),
		ResourceID:        aws.StringValue(p.ResourceId),
		ScalableDimension: aws.StringValue(p.ScalableDimension),
	}
	tt := p.TargetTrackingScalingPolicyConfiguration
	if tt == nil {
		return policy
	}
	conf := &models.TargetTrackingConfiguration{
		TargetValue:      aws.Float64Value(tt.TargetValue),
		ScaleInCooldown:  tt.ScaleInCooldown,
		ScaleOutCooldown: tt.ScaleOutCooldown,
		DisableScaleIn:   tt.DisableScaleIn,
	}
	if cm := tt.CustomizedMetricSpecification; cm != nil {
		spec := &models.CustomizedMetricSpecification{
			MetricName:     aws.StringValue(cm.MetricName),
			Namespace:      aws.StringValue(cm.Namespace),
			Statistic:      aws.StringValue(cm.Statistic),
			Unit:           aws.StringValue(cm.Unit),
			UsesMetricMath: len(cm.Metrics) > 0,
		}
		for _, d := range cm.Dimensions {
			spec.Dimensions = append(spec.Dimensions, models.Dimension{Name: aws.StringValue(d.Name), Value: aws.StringValue(d.Value)})
		}
		conf.CustomizedMetric = spec
	}
	if pm := tt.PredefinedMetricSpecification; pm != nil {
		conf.PredefinedMetric = &models.PredefinedMetricSpecification{
			PredefinedMetricType: aws.StringValue(pm.PredefinedMetricType),
			ResourceLabel:        aws.StringValue(pm.ResourceLabel),
		}
	}
	policy.TargetTracking = conf
	return policy
}

func toTargetTracking(conf *models.TargetTrackingConfiguration) *applicationautoscaling.TargetTrackingScalingPolicyConfiguration {
	tt := &applicationautoscaling.TargetTrackingScalingPolicyConfiguration{
		TargetValue:      aws.Float64(conf.TargetValue),
		ScaleInCooldown:  conf.ScaleInCooldown,
		ScaleOutCooldown: conf.ScaleOutCooldown,
		DisableScaleIn:   conf.DisableScaleIn,
	}
	if cm := conf.CustomizedMetric; cm != nil {
		spec := &applicationautoscaling.CustomizedMetricSpecification{
			MetricName: aws.String(cm.MetricName),
			Namespace:  aws.String(cm.Namespace),
			Statistic:  aws.String(cm.Statistic),
		}
		if cm.Unit != "" {
			spec.Unit = aws.String(cm.Unit)
		}
		for _, d := range cm.Dimensions {
			spec.Dimensions = append(spec.Dimensions, &applicationautoscaling.MetricDimension{Name: aws.String(d.Name), Value: aws.String(d.Value)})
		}
		tt.CustomizedMetricSpecification = spec
	}
	if pm := conf.PredefinedMetric; pm != nil {
		spec := &applicationautoscaling.PredefinedMetricSpecification{
			PredefinedMetricType: aws.String(pm.PredefinedMetricType),
		}
		if pm.ResourceLabel != "" {
			spec.ResourceLabel = aws.String(pm.ResourceLabel)
		}
		tt.PredefinedMetricSpecification = spec
	}
	return tt
}
