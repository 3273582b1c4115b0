package cmd

import (
	"context"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/migrations"
	"github.com/taskboard/taskboard/pkg/seed"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

type SeedCommand struct {
	Logger flags.LagerFlag
	DB     flags.DBFlag `group:"DB" namespace:"db"`

	File string `long:"file" env:"SEED_FILE" required:"true" description:"YAML file with the users, projects and tasks to create"`
}

func (cmd SeedCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("taskboard").WithName("seed-command")

	fixtures, err := seed.LoadFile(cmd.File)
	if err != nil {
		logger.Error(failedToLoadFixtures, err, logx.Data{Key: "file", Value: cmd.File})
		return err
	}

	ctx := context.Background()
	clk := clock.NewClock()

	store, conn, err := cmd.DB.Store(ctx, logger, clk)
	if err != nil {
		return err
	}
	if conn != nil {
		defer closeLogged(logger, conn)

		err = sqlx.VerifyAppliedMigrations(ctx, logger.WithName("verify-migrations"), conn, migrations.TableName, migrations.Migrations)
		if err != nil {
			logger.Error(failedToVerifyMigrations, err)
			return err
		}
	}

	_, err = seed.NewSeeder(store, clk, logger).Seed(ctx, fixtures)
	return err
}
