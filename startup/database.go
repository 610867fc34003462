package startup

import (
	"context"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/db/sqldb"

	"code.cloudfoundry.org/lager/v3"
)

const schemaTimeout = 30 * time.Second

// OpenTargetHistoryDB connects and creates the history table. It returns
// nil, nil when no url is configured and closes the connection again when
// the schema cannot be created.
func OpenTargetHistoryDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*sqldb.TargetHistorySQLDB, error) {
	if dbConfig.URL == "" {
		return nil, nil
	}
	historyDB, err := sqldb.NewTargetHistorySQLDB(dbConfig, logger.Session("targethistory-db"))
	if err != nil {
		logger.Error("failed-to-connect-targethistory-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()
	if err := historyDB.CreateSchema(ctx); err != nil {
		logger.Error("failed-to-create-targethistory-schema", err)
		_ = historyDB.Close()
		return nil, err
	}

	return historyDB, nil
}
