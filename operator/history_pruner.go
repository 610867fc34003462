package operator

import (
	"context"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/db"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

var _ Operator = &HistoryPruner{}

type HistoryPruner struct {
	historyDB      db.TargetHistoryDB
	cutoffDuration time.Duration
	clock          clock.Clock
	logger         lager.Logger
}

func NewHistoryPruner(historyDB db.TargetHistoryDB, cutoffDuration time.Duration, clock clock.Clock, logger lager.Logger) *HistoryPruner {
	return &HistoryPruner{
		historyDB:      historyDB,
		cutoffDuration: cutoffDuration,
		clock:          clock,
		logger:         logger.Session("target-history-pruner"),
	}
}

func (hp *HistoryPruner) Operate(ctx context.Context) {
	timestamp := hp.clock.Now().Add(-hp.cutoffDuration).UnixNano()

	logger := hp.logger.Session("pruning-target-histories", lager.Data{"cutoff-time": timestamp})
	logger.Info("starting")
	defer logger.Info("completed")

	if err := hp.historyDB.PruneTargetHistories(ctx, timestamp); err != nil {
		logger.Error("failed-prune-target-histories", err)
	}
}
