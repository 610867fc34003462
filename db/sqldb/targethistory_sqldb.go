package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const targetHistoryTable = "targethistory"

var schemas = map[string]string{
	db.PostgresDriverName: `CREATE TABLE IF NOT EXISTS targethistory (
	policyname VARCHAR(255) NOT NULL,
	timestamp BIGINT NOT NULL,
	samplecount INTEGER NOT NULL,
	averageduration DOUBLE PRECISION NOT NULL,
	usedfallback BOOLEAN NOT NULL,
	previoustarget DOUBLE PRECISION NOT NULL,
	targetbpi BIGINT NOT NULL,
	status INTEGER NOT NULL,
	error TEXT NOT NULL,
	PRIMARY KEY (policyname, timestamp)
)`,
	db.MysqlDriverName: `CREATE TABLE IF NOT EXISTS targethistory (
	policyname VARCHAR(255) NOT NULL,
	timestamp BIGINT NOT NULL,
	samplecount INT NOT NULL,
	averageduration DOUBLE NOT NULL,
	usedfallback BOOLEAN NOT NULL,
	previoustarget DOUBLE NOT NULL,
	targetbpi BIGINT NOT NULL,
	status INT NOT NULL,
	error TEXT NOT NULL,
	PRIMARY KEY (policyname, timestamp)
)`,
}

type TargetHistorySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewTargetHistorySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*TargetHistorySQLDB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DSN)
	if err != nil {
		logger.Error("open-target-history-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-target-history-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return NewTargetHistorySQLDBFromDB(sqldb, dbConfig, logger), nil
}

// NewTargetHistorySQLDBFromDB wraps an already opened connection pool.
func NewTargetHistorySQLDBFromDB(sqldb *sqlx.DB, dbConfig db.DatabaseConfig, logger lager.Logger) *TargetHistorySQLDB {
	return &TargetHistorySQLDB{
		dbConfig: dbConfig,
		logger:   logger.Session("target-history-db"),
		sqldb:    sqldb,
	}
}

func (tdb *TargetHistorySQLDB) Close() error {
	err := tdb.sqldb.Close()
	if err != nil {
		tdb.logger.Error("close-target-history-db", err)
		return err
	}
	return nil
}

func (tdb *TargetHistorySQLDB) Ping() error {
	return tdb.sqldb.Ping()
}

func (tdb *TargetHistorySQLDB) CreateSchema(ctx context.Context) error {
	schema, ok := schemas[tdb.sqldb.DriverName()]
	if !ok {
		return fmt.Errorf("no %s schema for driver %s", targetHistoryTable, tdb.sqldb.DriverName())
	}
	if _, err := tdb.sqldb.ExecContext(ctx, schema); err != nil {
		tdb.logger.Error("failed-to-create-schema", err, lager.Data{"table": targetHistoryTable})
		return err
	}
	return nil
}

func (tdb *TargetHistorySQLDB) SaveTargetHistory(ctx context.Context, history *models.TargetHistory) error {
	query := tdb.sqldb.Rebind("INSERT INTO targethistory" +
		"(policyname, timestamp, samplecount, averageduration, usedfallback, previoustarget, targetbpi, status, error) " +
		" VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := tdb.sqldb.ExecContext(ctx, query, history.PolicyName, history.Timestamp, history.SampleCount,
		history.AverageDuration, history.UsedFallback, history.PreviousTarget, history.TargetBPI, int(history.Status), history.Error)
	if err != nil {
		tdb.logger.Error("save-target-history", err, lager.Data{"query": query, "history": history})
	}
	return err
}

func (tdb *TargetHistorySQLDB) RetrieveTargetHistories(ctx context.Context, policyName string, start int64, end int64, orderType db.OrderType, limit int) ([]*models.TargetHistory, error) {
	orderStr := db.ASCSTR
	if orderType == db.DESC {
		orderStr = db.DESCSTR
	}
	if end < 0 {
		end = time.Now().UnixNano()
	}

	query := "SELECT timestamp, samplecount, averageduration, usedfallback, previoustarget, targetbpi, status, error FROM targethistory WHERE" +
		" policyname = ? " +
		" AND timestamp >= ?" +
		" AND timestamp <= ?" +
		" ORDER BY timestamp " + orderStr
	args := []interface{}{policyName, start, end}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	query = tdb.sqldb.Rebind(query)

	rows, err := tdb.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		tdb.logger.Error("retrieve-target-histories", err,
			lager.Data{"query": query, "policy": policyName, "start": start, "end": end, "orderType": orderType})
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	histories := []*models.TargetHistory{}
	for rows.Next() {
		history := &models.TargetHistory{}
		history.PolicyName = policyName
		var status int
		if err = rows.Scan(&history.Timestamp, &history.SampleCount, &history.AverageDuration, &history.UsedFallback,
			&history.PreviousTarget, &history.TargetBPI, &status, &history.Error); err != nil {
			tdb.logger.Error("retrieve-target-history-scan", err)
			return nil, err
		}
		history.Status = models.TargetStatus(status)
		histories = append(histories, history)
	}
	return histories, rows.Err()
}

func (tdb *TargetHistorySQLDB) PruneTargetHistories(ctx context.Context, before int64) error {
	query := tdb.sqldb.Rebind("DELETE FROM targethistory WHERE timestamp <= ?")
	result, err := tdb.sqldb.ExecContext(ctx, query, before)
	if err != nil {
		tdb.logger.Error("failed-prune-target-histories", err, lager.Data{"query": query, "before": before})
		return err
	}
	if pruned, err := result.RowsAffected(); err == nil {
		tdb.logger.Info("pruned-target-histories", lager.Data{"before": before, "count": pruned})
	}
	return nil
}

func (tdb *TargetHistorySQLDB) Stats() sql.DBStats {
	return tdb.sqldb.Stats()
}
