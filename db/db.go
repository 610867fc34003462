package db

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
	TargetHistoryDb    = "targethistory_db"
)

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)
const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

var ErrDoesNotExist = errors.New("doesn't exist")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

type TargetHistoryDB interface {
	healthendpoint.Pinger
	CreateSchema(ctx context.Context) error
	SaveTargetHistory(ctx context.Context, history *models.TargetHistory) error
	// RetrieveTargetHistories returns at most limit rows of policyName with start <= timestamp <= end; limit <= 0 means no limit.
	RetrieveTargetHistories(ctx context.Context, policyName string, start int64, end int64, orderType OrderType, limit int) ([]*models.TargetHistory, error)
	PruneTargetHistories(ctx context.Context, before int64) error
	io.Closer
}
