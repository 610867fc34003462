package policystore

import (
	"context"
	"errors"

	"github.com/ecs-queue-autoscaler/autoscaler/models"
)

var (
	ErrPolicyNotFound         = errors.New("scaling policy not found")
	ErrNotTargetTracking      = errors.New("scaling policy has no target tracking configuration")
	ErrMetricMathNotSupported = errors.New("customized metric specifications using metric math cannot be written back")
)

type Store interface {
	GetPolicy(ctx context.Context, name, serviceNamespace string) (*models.ScalingPolicy, error)
	PutPolicy(ctx context.Context, policy *models.ScalingPolicy) error
}
