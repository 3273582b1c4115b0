package sqlx

import (
	"context"

	"github.com/taskboard/taskboard/pkg/logx"
)

// VerifyAppliedMigrations returns ErrMigrationsOutOfSync unless exactly the
// given migrations have been applied, in order.
func VerifyAppliedMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
) error {
	appliedMigrations, err := RetrieveAppliedMigrations(ctx, logger.WithName("retrieve-applied-migrations"), conn, tableName)
	if err != nil {
		return err
	}

	if len(migrations) != len(appliedMigrations) {
		logger.Info(migrationCountMismatch,
			logx.Data{Key: "expected", Value: len(migrations)},
			logx.Data{Key: "applied", Value: len(appliedMigrations)},
		)
		return ErrMigrationsOutOfSync
	}

	for i, migration := range migrations {
		appliedMigration, exists := appliedMigrations[i]
		if !exists {
			logger.Info(migrationNotFound, logx.Data{Key: "name", Value: migration.Name})
			return ErrMigrationsOutOfSync
		}

		if migration.Name != appliedMigration.Name {
			logger.Info(migrationMismatch,
				logx.Data{Key: "expected_name", Value: migration.Name},
				logx.Data{Key: "applied_name", Value: appliedMigration.Name},
			)
			return ErrMigrationsOutOfSync
		}
	}

	logger.Debug(success)
	return nil
}
