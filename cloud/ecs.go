package cloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ecs"
)

var ErrServiceNotFound = errors.New("ecs service not found")

// ECSTaskCounter reports how many tasks of one ECS service are running.
type ECSTaskCounter struct {
	client  ECSAPI
	cluster string
	service string
}

func NewECSTaskCounter(client ECSAPI, cluster, service string) *ECSTaskCounter {
	return &ECSTaskCounter{client: client, cluster: cluster, service: service}
}

func (c *ECSTaskCounter) RunningTaskCount(ctx context.Context) (int64, error) {
	out, err := c.client.DescribeServicesWithContext(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(c.cluster),
		Services: []*string{aws.String(c.service)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to describe service %s/%s: %w", c.cluster, c.service, err)
	}
	for _, svc := range out.Services {
		if aws.StringValue(svc.ServiceName) == c.service || aws.StringValue(svc.ServiceArn) == c.service {
			return aws.Int64Value(svc.RunningCount), nil
		}
	}
	return 0, fmt.Errorf("%w: %s/%s", ErrServiceNotFound, c.cluster, c.service)
}
