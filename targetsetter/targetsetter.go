package targetsetter

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/metricstore"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/policystore"
	"github.com/ecs-queue-autoscaler/autoscaler/sync"
	"github.com/ecs-queue-autoscaler/autoscaler/targetsetter/config"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

const LockKeyPrefix = "bpi-target-setter/"

var ErrRunInProgress = errors.New("another target setter run holds the lock")

type TargetSetter struct {
	logger    lager.Logger
	clock     clock.Clock
	fetcher   metricstore.Fetcher
	publisher metricstore.Publisher
	policies  policystore.Store
	historyDB db.TargetHistoryDB
	locker    sync.Locker
	owner     string
	conf      *config.Config
	// running serialises runs within one process.
	running chan struct{}
}

// NewTargetSetter builds a target setter. historyDB and locker may be nil.
func NewTargetSetter(logger lager.Logger, clock clock.Clock, fetcher metricstore.Fetcher, publisher metricstore.Publisher,
	policies policystore.Store, historyDB db.TargetHistoryDB, locker sync.Locker, conf *config.Config) *TargetSetter {
	owner := conf.Lock.Owner
	if owner == "" {
		owner = sync.DefaultOwner()
	}
	return &TargetSetter{
		logger:    logger.Session("target-setter", lager.Data{"policy": conf.Policy.Name, "queue": conf.QueueName}),
		clock:     clock,
		fetcher:   fetcher,
		publisher: publisher,
		policies:  policies,
		historyDB: historyDB,
		locker:    locker,
		owner:     owner,
		conf:      conf,
		running:   make(chan struct{}, 1),
	}
}

func (t *TargetSetter) PolicyName() string {
	return t.conf.Policy.Name
}

// Run recomputes the target backlog per instance and writes it into the scaling policy.
func (t *TargetSetter) Run(ctx context.Context) (*models.TargetDecision, error) {
	logger := t.logger.Session("run")

	select {
	case t.running <- struct{}{}:
		defer func() { <-t.running }()
	default:
		return nil, ErrRunInProgress
	}

	if t.locker != nil {
		key := LockKeyPrefix + t.conf.Policy.Name
		acquired, err := t.locker.Acquire(ctx, key, t.owner, t.conf.Lock.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire run lock: %w", err)
		}
		if !acquired {
			return nil, ErrRunInProgress
		}
		defer func() {
			if err := t.locker.Release(context.WithoutCancel(ctx), key, t.owner); err != nil {
				logger.Error("failed-to-release-lock", err, lager.Data{"key": key})
			}
		}()
	}

	decision := &models.TargetDecision{
		PolicyName: t.conf.Policy.Name,
		Timestamp:  t.clock.Now().UnixNano(),
	}
	t.logPreviousDecision(ctx, logger)

	err := t.run(ctx, logger, decision)
	t.saveHistory(context.WithoutCancel(ctx), logger, decision, err)
	if err != nil {
		return nil, err
	}
	return decision, nil
}

func (t *TargetSetter) run(ctx context.Context, logger lager.Logger, decision *models.TargetDecision) error {
	now := t.clock.Now()
	values, err := t.fetcher.FetchSamples(ctx, models.MetricQuery{
		Namespace:  t.conf.Metrics.Namespace,
		MetricName: t.conf.Metrics.DurationMetricName,
		Dimensions: t.dimensions(),
		Start:      now.Add(-t.conf.Metrics.Window),
		End:        now,
		Period:     t.conf.Metrics.Period,
		Statistic:  models.StatisticAverage,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch duration samples: %w", err)
	}

	avg, count, usedFallback := AverageDuration(values, *t.conf.DefaultDuration)
	decision.SampleCount = count
	decision.AverageDuration = avg
	decision.UsedFallback = usedFallback
	logger.Info("average-duration", lager.Data{"fetched": len(values), "count": count, "average": avg, "used_fallback": usedFallback})

	target, err := ComputeTargetBPI(*t.conf.DesiredLatency, avg)
	if err != nil {
		return err
	}
	decision.TargetBPI = target

	policy, err := t.policies.GetPolicy(ctx, t.conf.Policy.Name, t.conf.Policy.ServiceNamespace)
	if err != nil {
		return fmt.Errorf("failed to get scaling policy: %w", err)
	}
	if policy == nil || policy.TargetTracking == nil {
		return fmt.Errorf("%w: %s", policystore.ErrNotTargetTracking, t.conf.Policy.Name)
	}
	decision.PreviousTarget = policy.TargetTracking.TargetValue

	updated, err := t.applyTarget(policy, target)
	if err != nil {
		return err
	}
	if err := t.policies.PutPolicy(ctx, updated); err != nil {
		return fmt.Errorf("failed to update scaling policy: %w", err)
	}
	logger.Info("updated-scaling-policy", lager.Data{"previous_target": decision.PreviousTarget, "target_bpi": target})

	err = t.publisher.PutSample(ctx, models.MetricSample{
		Namespace:         t.conf.Metrics.Namespace,
		MetricName:        t.conf.Metrics.TargetMetricName,
		Value:             float64(target),
		Unit:              models.UnitCount,
		Dimensions:        t.dimensions(),
		Timestamp:         t.clock.Now(),
		StorageResolution: models.HighResolution,
	})
	if err != nil {
		return fmt.Errorf("failed to publish target backlog per instance: %w", err)
	}
	return nil
}

// applyTarget returns a copy of policy carrying the new target. Every field
// not owned by the target setter is kept.
func (t *TargetSetter) applyTarget(policy *models.ScalingPolicy, target int64) (*models.ScalingPolicy, error) {
	updated := policy.Clone()
	tt := updated.TargetTracking
	tt.TargetValue = float64(target)

	if t.conf.Policy.OverrideMetric {
		if tt.CustomizedMetric != nil && tt.CustomizedMetric.UsesMetricMath {
			return nil, fmt.Errorf("%w: %s", policystore.ErrMetricMathNotSupported, policy.PolicyName)
		}
		metric := &models.CustomizedMetricSpecification{
			MetricName: t.conf.Metrics.BPIMetricName,
			Namespace:  t.conf.Metrics.Namespace,
			Statistic:  models.StatisticAverage,
			Dimensions: t.dimensions(),
		}
		if tt.CustomizedMetric != nil {
			metric.Unit = tt.CustomizedMetric.Unit
		}
		tt.CustomizedMetric = metric
		tt.PredefinedMetric = nil
	}
	if t.conf.Policy.ScaleInCooldown > 0 {
		cooldown := t.conf.Policy.ScaleInCooldown
		tt.ScaleInCooldown = &cooldown
	}
	if t.conf.Policy.ScaleOutCooldown > 0 {
		cooldown := t.conf.Policy.ScaleOutCooldown
		tt.ScaleOutCooldown = &cooldown
	}
	return updated, nil
}

func (t *TargetSetter) dimensions() []models.Dimension {
	return models.MetricDimensions(t.conf.Metrics.MetricType, t.conf.QueueName)
}

func (t *TargetSetter) logPreviousDecision(ctx context.Context, logger lager.Logger) {
	if t.historyDB == nil {
		return
	}
	histories, err := t.historyDB.RetrieveTargetHistories(ctx, t.conf.Policy.Name, 0, -1, db.DESC, 1)
	if err != nil {
		logger.Error("failed-to-retrieve-previous-decision", err)
		return
	}
	if len(histories) > 0 {
		logger.Info("previous-decision", lager.Data{"history": histories[0]})
	}
}

func (t *TargetSetter) saveHistory(ctx context.Context, logger lager.Logger, decision *models.TargetDecision, runErr error) {
	if t.historyDB == nil {
		return
	}
	history := &models.TargetHistory{TargetDecision: *decision, Status: models.TargetStatusSucceeded}
	if runErr != nil {
		history.Status = models.TargetStatusFailed
		history.Error = runErr.Error()
	}
	if err := t.historyDB.SaveTargetHistory(ctx, history); err != nil {
		logger.Error("failed-to-save-target-history", err, lager.Data{"history": history})
	}
}

// Operate runs the target setter once and logs the outcome.
func (t *TargetSetter) Operate(ctx context.Context) {
	decision, err := t.Run(ctx)
	switch {
	case errors.Is(err, ErrRunInProgress):
		t.logger.Info("skipped-run-in-progress")
	case err != nil:
		t.logger.Error("failed-to-set-target", err, cloud.ErrorData(err))
	default:
		t.logger.Info("target-set", lager.Data{"decision": decision})
	}
}
