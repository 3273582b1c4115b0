package sqlxtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager/v3/lagertest"
	uuid "github.com/satori/go.uuid"
	"github.com/taskboard/taskboard/pkg/logx/lagerx"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

const (
	TestDBDriver   = "TEST_DB_DRIVER"
	TestDBHost     = "TEST_DB_HOST"
	TestDBPort     = "TEST_DB_PORT"
	TestDBUsername = "TEST_DB_USERNAME"
	TestDBPassword = "TEST_DB_PASSWORD"
)

// TestDB is a throwaway database with its own schema. It uses a temporary
// SQLite file unless TEST_DB_DRIVER names mysql or postgres, in which case
// a uniquely named schema is created on that server.
type TestDB struct {
	driver sqlx.DBDriver

	host     string
	port     int
	user     string
	password string
	database string

	dir string
}

func NewTestDB() *TestDB {
	driver := sqlx.DBDriver(os.Getenv(TestDBDriver))
	if driver == "" {
		driver = sqlx.DBDriverSQLite
	}

	db := &TestDB{
		driver:   driver,
		host:     envOr(TestDBHost, "localhost"),
		user:     os.Getenv(TestDBUsername),
		password: os.Getenv(TestDBPassword),
		database: fmt.Sprintf("test_%s", strings.Replace(uuid.NewV4().String(), "-", "_", -1)),
	}

	switch driver {
	case sqlx.DBDriverMySQL:
		db.port, _ = strconv.Atoi(envOr(TestDBPort, "3306"))
		if db.user == "" {
			db.user = "root"
		}
	case sqlx.DBDriverPostgres:
		db.port, _ = strconv.Atoi(envOr(TestDBPort, "5432"))
	}

	return db
}

func (db *TestDB) Driver() sqlx.DBDriver {
	return db.driver
}

func (db *TestDB) Create(migrations ...sqlx.Migration) error {
	if db.driver == sqlx.DBDriverSQLite {
		dir, err := os.MkdirTemp("", "taskboard-test-db")
		if err != nil {
			return err
		}
		db.dir = dir
	} else if err := db.bootstrap("CREATE DATABASE " + db.database); err != nil {
		return err
	}

	conn, err := db.Connect()
	if err != nil {
		_ = db.Drop()
		return err
	}
	defer conn.Close()

	logger := lagerx.NewLogger(lagertest.NewTestLogger("test-db"))
	if err = sqlx.ApplyMigrations(context.Background(), logger, conn, "migrations", migrations); err != nil {
		_ = db.Drop()
		return err
	}

	return nil
}

func (db *TestDB) Drop() error {
	if db.driver == sqlx.DBDriverSQLite {
		return os.RemoveAll(db.dir)
	}

	return db.bootstrap("DROP DATABASE " + db.database)
}

func (db *TestDB) Connect() (*sqlx.DB, error) {
	if db.driver == sqlx.DBDriverSQLite {
		return sqlx.Connect(db.driver, sqlx.DBDatabaseName(filepath.Join(db.dir, "test.db")))
	}

	return sqlx.Connect(db.driver, db.options(db.database)...)
}

func (db *TestDB) Truncate(truncateStmts ...string) error {
	conn, err := db.Connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, stmt := range truncateStmts {
		if _, err = conn.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (db *TestDB) bootstrap(stmt string) error {
	bootstrapDB := ""
	if db.driver == sqlx.DBDriverPostgres {
		bootstrapDB = "postgres"
	}

	conn, err := sqlx.Connect(db.driver, db.options(bootstrapDB)...)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Exec(stmt)
	return err
}

func (db *TestDB) options(database string) []sqlx.DBOption {
	return []sqlx.DBOption{
		sqlx.DBUsername(db.user),
		sqlx.DBPassword(db.password),
		sqlx.DBHost(db.host),
		sqlx.DBPort(db.port),
		sqlx.DBDatabaseName(database),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
