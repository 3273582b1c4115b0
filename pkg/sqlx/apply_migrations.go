package sqlx

import (
	"context"
	"time"

	"github.com/taskboard/taskboard/pkg/logx"
)

// ApplyMigrations creates the migrations table if needed and applies, in
// order and each in its own transaction, every migration not yet recorded.
func ApplyMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
) error {
	tableLogger := logger.WithData(logx.Data{Key: "table_name", Value: tableName})

	if err := createMigrationsTable(ctx, tableLogger.WithName("create-migrations-table"), conn, tableName); err != nil {
		return err
	}

	if len(migrations) == 0 {
		return nil
	}

	migrationsLogger := tableLogger.WithName("apply-migrations")

	appliedMigrations, err := RetrieveAppliedMigrations(ctx, migrationsLogger, conn, tableName)
	if err != nil {
		return err
	}
	migrationsLogger.Debug(retrievedAppliedMigrations, logx.Data{Key: "versions", Value: len(appliedMigrations)})

	for version, migration := range migrations {
		migrationLogger := migrationsLogger.WithData(
			logx.Data{Key: "version", Value: version},
			logx.Data{Key: "name", Value: migration.Name},
		)

		if _, ok := appliedMigrations[version]; ok {
			migrationLogger.Debug(skippedAppliedMigration)
			continue
		}

		if err = applyMigration(ctx, migrationLogger, conn, tableName, version, migration); err != nil {
			return err
		}
	}

	return nil
}

func createMigrationsTable(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
) (err error) {
	var tx *Tx
	tx, err = conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if err != nil {
			logger.Error(failedToCreateTable, err)
		}
		err = Commit(logger, tx, err)
	}()

	timestampType := "DATETIME"
	if conn.Driver() == DBDriverPostgres {
		timestampType = "TIMESTAMP"
	}

	_, err = tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS "+QuoteIdentifier(conn.Driver(), tableName)+
		" (version INTEGER, name VARCHAR(255), applied_at "+timestampType+")")

	return
}

func applyMigration(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	version int,
	migration Migration,
) (err error) {
	logger.Debug(starting)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if err != nil {
			logger.Error(failedToApplyMigration, err)
		}
		err = Commit(logger, tx, err)
	}()

	if err = migration.Up(ctx, logger, tx); err != nil {
		return
	}

	_, err = tx.StatementBuilder().
		Insert(tableName).
		Columns("version", "name", "applied_at").
		Values(version, migration.Name, time.Now().UTC()).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return
	}

	logger.Debug(finished)

	return
}
