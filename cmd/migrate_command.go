package cmd

import (
	"context"

	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/migrations"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

type MigrateCommand struct {
	Up     UpCommand     `command:"up" description:"Apply every pending migration"`
	Down   DownCommand   `command:"down" description:"Roll back the latest migration"`
	Verify VerifyCommand `command:"verify" description:"Fail unless every migration is applied"`
}

type UpCommand struct {
	Logger flags.LagerFlag
	DB     flags.DBFlag `group:"DB" namespace:"db"`
}

func (cmd UpCommand) Execute([]string) error {
	return withConnection(cmd.Logger, cmd.DB, "migrate-up", func(ctx context.Context, logger logx.Logger, conn *sqlx.DB) error {
		err := sqlx.ApplyMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations)
		if err != nil {
			logger.Error(failedToApplyMigrations, err)
		}
		return err
	})
}

type DownCommand struct {
	Logger flags.LagerFlag
	DB     flags.DBFlag `group:"DB" namespace:"db"`

	All bool `long:"all" description:"Roll back every applied migration"`
}

func (cmd DownCommand) Execute([]string) error {
	return withConnection(cmd.Logger, cmd.DB, "migrate-down", func(ctx context.Context, logger logx.Logger, conn *sqlx.DB) error {
		err := sqlx.RollbackMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations, cmd.All)
		if err != nil {
			logger.Error(failedToRollbackMigrations, err)
		}
		return err
	})
}

type VerifyCommand struct {
	Logger flags.LagerFlag
	DB     flags.DBFlag `group:"DB" namespace:"db"`
}

func (cmd VerifyCommand) Execute([]string) error {
	return withConnection(cmd.Logger, cmd.DB, "migrate-verify", func(ctx context.Context, logger logx.Logger, conn *sqlx.DB) error {
		err := sqlx.VerifyAppliedMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations)
		if err != nil {
			logger.Error(failedToVerifyMigrations, err)
		}
		return err
	})
}

// withConnection runs fn against the configured database. The in-memory
// driver has no schema, so fn is skipped.
func withConnection(
	lagerFlag flags.LagerFlag,
	db flags.DBFlag,
	name string,
	fn func(context.Context, logx.Logger, *sqlx.DB) error,
) error {
	logger := lagerFlag.Logger("taskboard").WithName(name)
	logger.Info(starting)
	defer logger.Info(finished)

	if db.IsInMemory() {
		logger.Info(skippedInMemory)
		return nil
	}

	ctx := context.Background()

	conn, err := db.Connect(ctx, logger)
	if err != nil {
		return err
	}
	defer closeLogged(logger, conn)

	return fn(ctx, logger, conn)
}
