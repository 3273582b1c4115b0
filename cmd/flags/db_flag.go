package flags

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/api/repos/db"
	"github.com/taskboard/taskboard/pkg/api/repos/inmemory"
	"github.com/taskboard/taskboard/pkg/cryptox"
	"github.com/taskboard/taskboard/pkg/ioutilx"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

const DBDriverInMemory sqlx.DBDriver = "in-memory"

var (
	ErrInMemoryConnect = errors.New("Connect() unsupported for in-memory driver")
	ErrMissingHost     = errors.New("the required host parameter was not specified; see --help")
	ErrMissingPort     = errors.New("the required port parameter was not specified; see --help")
	ErrMissingSchema   = errors.New("the required schema parameter was not specified; see --help")
	ErrMissingUsername = errors.New("the required username parameter was not specified; see --help")
)

type DBFlag struct {
	Driver   sqlx.DBDriver `long:"driver" env:"DB_DRIVER" default:"in-memory" choice:"mysql" choice:"postgres" choice:"sqlite" choice:"in-memory" description:"Database driver to use for the record store"`
	Host     string        `long:"host" env:"DB_HOST" description:"Host for SQL backend"`
	Port     int           `long:"port" env:"DB_PORT" description:"Port for SQL backend"`
	Schema   string        `long:"schema" env:"DB_SCHEMA" description:"Database name for MySQL and PostgreSQL, database file for SQLite (in-memory when empty)"`
	Username string        `long:"username" env:"DB_USERNAME" description:"Username to use for connecting to SQL backend"`
	Password string        `long:"password" env:"DB_PASSWORD" description:"Password to use for connecting to SQL backend"`

	TLS    SQLTLSFlag    `group:"TLS" namespace:"tls"`
	Tuning SQLTuningFlag `group:"Tuning" namespace:"tuning"`
}

type SQLTLSFlag struct {
	RootCAs []ioutilx.FileOrString `long:"root-ca" env:"DB_TLS_ROOT_CA" env-delim:"," description:"CA certificate(s) for TLS connection to the SQL backend"`
}

type SQLTuningFlag struct {
	ConnMaxLifetime time.Duration `long:"connection-max-lifetime" env:"DB_CONNECTION_MAX_LIFETIME" description:"Limit the lifetime of a SQL connection"`
}

func (o *DBFlag) IsInMemory() bool {
	return o.Driver == DBDriverInMemory
}

func (o *DBFlag) Connect(ctx context.Context, logger logx.Logger) (*sqlx.DB, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	logger = logger.WithData(
		logx.Data{Key: "db_driver", Value: o.Driver},
		logx.Data{Key: "db_host", Value: o.Host},
		logx.Data{Key: "db_port", Value: o.Port},
		logx.Data{Key: "db_schema", Value: o.Schema},
		logx.Data{Key: "db_username", Value: o.Username},
	)

	dbOpts := []sqlx.DBOption{
		sqlx.DBUsername(o.Username),
		sqlx.DBPassword(o.Password),
		sqlx.DBDatabaseName(o.Schema),
		sqlx.DBHost(o.Host),
		sqlx.DBPort(o.Port),
		sqlx.DBConnectionMaxLifetime(o.Tuning.ConnMaxLifetime),
		sqlx.DBLogger(logger.WithName("connect")),
	}

	if len(o.TLS.RootCAs) != 0 {
		tlsLogger := logger.WithName("create-sql-root-ca-pool")

		var certs [][]byte
		for _, cert := range o.TLS.RootCAs {
			b, err := cert.Read()
			if err != nil {
				tlsLogger.Error(failedToReadFile, err)
				return nil, err
			}

			certs = append(certs, b)
		}

		rootCAPool, err := cryptox.NewCertPool(certs...)
		if err != nil {
			tlsLogger.Error(failedToParseTLSCredentials, err)
			return nil, err
		}

		dbOpts = append(dbOpts, sqlx.DBRootCAPool(rootCAPool))
	}

	conn, err := sqlx.Connect(o.Driver, dbOpts...)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return nil, err
	}

	return conn, nil
}

// Store opens the configured record store. The returned connection is nil
// for the in-memory driver.
func (o *DBFlag) Store(ctx context.Context, logger logx.Logger, clk clock.Clock) (repos.Store, *sqlx.DB, error) {
	if o.IsInMemory() {
		return inmemory.NewStore(clk), nil, nil
	}

	conn, err := o.Connect(ctx, logger)
	if err != nil {
		return nil, nil, err
	}

	return db.NewStore(conn, clk), conn, nil
}

func (o *DBFlag) validate() error {
	switch o.Driver {
	case DBDriverInMemory:
		return ErrInMemoryConnect
	case sqlx.DBDriverSQLite:
		return nil
	}

	switch {
	case o.Host == "":
		return ErrMissingHost
	case o.Port == 0:
		return ErrMissingPort
	case o.Schema == "":
		return ErrMissingSchema
	case o.Username == "":
		return ErrMissingUsername
	}

	return nil
}
