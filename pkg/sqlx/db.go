package sqlx

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	uuid "github.com/satori/go.uuid"
	"github.com/taskboard/taskboard/pkg/logx"

	_ "modernc.org/sqlite"
)

type DBDriver string
type DBFlavor string

const (
	DBDriverMySQL    DBDriver = "mysql"
	DBDriverPostgres DBDriver = "postgres"
	DBDriverSQLite   DBDriver = "sqlite"

	DBFlavorMySQL    DBFlavor = "mysql"
	DBFlavorMariaDB  DBFlavor = "mariadb"
	DBFlavorPostgres DBFlavor = "postgres"
	DBFlavorSQLite   DBFlavor = "sqlite"

	// SQLiteMemory names a private in-memory SQLite database.
	SQLiteMemory = ":memory:"

	pingAttempts = 10
	pingInterval = 500 * time.Millisecond
)

type DBOption interface {
	config(*dbConfig)
}

func DBUsername(username string) DBOption {
	return &dbUsernameOption{username: username}
}

func DBPassword(password string) DBOption {
	return &dbPasswordOption{password: password}
}

// DBDatabaseName is the schema for MySQL and PostgreSQL and the database file
// for SQLite.
func DBDatabaseName(dbName string) DBOption {
	return &dbDatabaseNameOption{dbName: dbName}
}

func DBHost(host string) DBOption {
	return &dbHostOption{host: host}
}

func DBPort(port int) DBOption {
	return &dbPortOption{port: port}
}

func DBConnectionMaxLifetime(max time.Duration) DBOption {
	return &dbConnectionMaxLifetime{max: max}
}

func DBRootCAPool(rootCAPool *x509.CertPool) DBOption {
	return &dbTLSConfigOption{
		tlsConfig: &tls.Config{
			RootCAs:    rootCAPool,
			MinVersion: tls.VersionTLS12,
		},
	}
}

func DBLogger(logger logx.Logger) DBOption {
	return &dbLoggerOption{logger: logger}
}

func DBClock(clk clock.Clock) DBOption {
	return &dbClockOption{clock: clk}
}

type DB struct {
	Conn *sql.DB

	driver  DBDriver
	flavor  DBFlavor
	version string
}

// NewDB wraps an already open connection. The flavor defaults to the driver.
func NewDB(conn *sql.DB, driver DBDriver) *DB {
	return &DB{
		Conn:   conn,
		driver: driver,
		flavor: DBFlavor(driver),
	}
}

func Connect(driver DBDriver, options ...DBOption) (*DB, error) {
	cfg := &dbConfig{
		logger: logx.Discard(),
		clock:  clock.NewClock(),
	}

	for _, opt := range options {
		opt.config(cfg)
	}

	db, err := open(driver, cfg)
	if err != nil {
		return nil, err
	}

	if driver != DBDriverSQLite {
		db.Conn.SetConnMaxLifetime(cfg.connMaxLifetime)
	}

	for attempt := 0; attempt < pingAttempts; attempt++ {
		err = db.Ping()
		if err == nil {
			db.detectVersion()
			return db, nil
		}

		cfg.logger.Error(failedToPing, err, logx.Data{Key: "attempt", Value: attempt})
		cfg.clock.Sleep(pingInterval)
	}

	if err = db.Close(); err != nil {
		return nil, err
	}

	return nil, ErrFailedToEstablishConnection
}

func (db *DB) Driver() DBDriver {
	return db.driver
}

func (db *DB) Flavor() DBFlavor {
	return db.flavor
}

func (db *DB) Version() string {
	return db.version
}

func (db *DB) StatementBuilder() squirrel.StatementBuilderType {
	return statementBuilder(db.driver)
}

func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.Conn.Exec(query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.Conn.ExecContext(ctx, query, args...)
}

func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.Conn.Query(query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.Conn.QueryContext(ctx, query, args...)
}

func (db *DB) QueryRow(query string, args ...interface{}) squirrel.RowScanner {
	return db.Conn.QueryRow(query, args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) squirrel.RowScanner {
	return db.Conn.QueryRowContext(ctx, query, args...)
}

// BeginTx starts a transaction carrying the connection's driver information.
// Isolation levels are dropped for SQLite, which serializes writers anyway.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if opts != nil && db.driver == DBDriverSQLite {
		opts = &sql.TxOptions{ReadOnly: opts.ReadOnly}
	}

	tx, err := db.Conn.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &Tx{
		tx:      tx,
		driver:  db.driver,
		flavor:  db.flavor,
		version: db.version,
	}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

func (db *DB) Ping() error {
	return db.Conn.Ping()
}

func (db *DB) PingContext(ctx context.Context) error {
	return db.Conn.PingContext(ctx)
}

var mariadbVersionRegex = regexp.MustCompile("(.*)-MariaDB")

func (db *DB) detectVersion() {
	switch db.driver {
	case DBDriverMySQL:
		var (
			unused    string
			dbVersion string
		)

		// MySQL errors if performance_schema.session_variables is missing.
		err := db.Conn.QueryRow(`SHOW VARIABLES LIKE 'version'`).Scan(&unused, &dbVersion)
		if err != nil {
			db.flavor = DBFlavorMySQL
			return
		}

		matches := mariadbVersionRegex.FindStringSubmatch(dbVersion)
		if matches == nil {
			db.flavor = DBFlavorMySQL
			db.version = dbVersion
		} else {
			db.flavor = DBFlavorMariaDB
			db.version = matches[1]
		}
	case DBDriverPostgres:
		db.flavor = DBFlavorPostgres
		_ = db.Conn.QueryRow(`SHOW server_version`).Scan(&db.version)
	case DBDriverSQLite:
		db.flavor = DBFlavorSQLite
		_ = db.Conn.QueryRow(`SELECT sqlite_version()`).Scan(&db.version)
	}
}

func open(driver DBDriver, cfg *dbConfig) (*DB, error) {
	switch driver {
	case DBDriverMySQL:
		dataSourceName, err := cfg.dataSourceNameMySQL()
		if err != nil {
			return nil, err
		}

		conn, err := sql.Open(string(driver), dataSourceName)
		if err != nil {
			return nil, err
		}

		return NewDB(conn, driver), nil
	case DBDriverPostgres:
		connConfig, err := cfg.connConfigPostgres()
		if err != nil {
			return nil, err
		}

		return NewDB(stdlib.OpenDB(*connConfig), driver), nil
	case DBDriverSQLite:
		conn, err := sql.Open("sqlite", cfg.dataSourceNameSQLite())
		if err != nil {
			return nil, err
		}

		// A single connection keeps an in-memory database alive and
		// serializes writers.
		conn.SetMaxOpenConns(1)

		return NewDB(conn, driver), nil
	default:
		return nil, ErrUnsupportedSQLDriver
	}
}

type dbConfig struct {
	username string
	password string
	dbName   string
	host     string
	port     int

	tlsConfig *tls.Config

	connMaxLifetime time.Duration

	logger logx.Logger
	clock  clock.Clock
}

func (c *dbConfig) dataSourceNameMySQL() (string, error) {
	cfg := mysql.NewConfig()
	cfg.User = c.username
	cfg.Passwd = c.password
	cfg.DBName = c.dbName
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.host, strconv.Itoa(c.port))
	cfg.ParseTime = true

	if c.tlsConfig != nil {
		tlsConfigName := uuid.NewV4().String()
		if err := mysql.RegisterTLSConfig(tlsConfigName, c.tlsConfig); err != nil {
			return "", err
		}

		cfg.TLSConfig = tlsConfigName
	}

	return cfg.FormatDSN(), nil
}

func (c *dbConfig) connConfigPostgres() (*pgx.ConnConfig, error) {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.host, strconv.Itoa(c.port)),
		Path:   "/" + c.dbName,
	}
	if c.username != "" {
		u.User = url.UserPassword(c.username, c.password)
	}

	q := url.Values{}
	if c.tlsConfig == nil {
		q.Set("sslmode", "disable")
	} else {
		q.Set("sslmode", "verify-full")
	}
	u.RawQuery = q.Encode()

	connConfig, err := pgx.ParseConfig(u.String())
	if err != nil {
		return nil, err
	}

	if c.tlsConfig != nil {
		tlsConfig := c.tlsConfig.Clone()
		tlsConfig.ServerName = c.host
		connConfig.TLSConfig = tlsConfig
		connConfig.Fallbacks = nil
	}

	return connConfig, nil
}

func (c *dbConfig) dataSourceNameSQLite() string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Set("_time_format", "sqlite")

	if c.dbName == "" || c.dbName == SQLiteMemory {
		q.Set("mode", "memory")
		return fmt.Sprintf("file:%s?%s", uuid.NewV4().String(), q.Encode())
	}

	return fmt.Sprintf("file:%s?%s", c.dbName, q.Encode())
}

type dbUsernameOption struct {
	username string
}

func (o *dbUsernameOption) config(c *dbConfig) {
	c.username = o.username
}

type dbPasswordOption struct {
	password string
}

func (o *dbPasswordOption) config(c *dbConfig) {
	c.password = o.password
}

type dbDatabaseNameOption struct {
	dbName string
}

func (o *dbDatabaseNameOption) config(c *dbConfig) {
	c.dbName = o.dbName
}

type dbHostOption struct {
	host string
}

func (o *dbHostOption) config(c *dbConfig) {
	c.host = o.host
}

type dbPortOption struct {
	port int
}

func (o *dbPortOption) config(c *dbConfig) {
	c.port = o.port
}

type dbTLSConfigOption struct {
	tlsConfig *tls.Config
}

func (o *dbTLSConfigOption) config(c *dbConfig) {
	c.tlsConfig = o.tlsConfig
}

type dbConnectionMaxLifetime struct {
	max time.Duration
}

func (o *dbConnectionMaxLifetime) config(c *dbConfig) {
	c.connMaxLifetime = o.max
}

type dbLoggerOption struct {
	logger logx.Logger
}

func (o *dbLoggerOption) config(c *dbConfig) {
	c.logger = o.logger
}

type dbClockOption struct {
	clock clock.Clock
}

func (o *dbClockOption) config(c *dbConfig) {
	c.clock = o.clock
}
