package sqlx

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Runner is satisfied by both *DB and *Tx.
type Runner interface {
	squirrel.BaseRunner
	squirrel.ExecerContext
	squirrel.QueryerContext
	squirrel.QueryRowerContext

	Driver() DBDriver
	StatementBuilder() squirrel.StatementBuilderType
}

var (
	_ Runner = (*DB)(nil)
	_ Runner = (*Tx)(nil)
)

func statementBuilder(driver DBDriver) squirrel.StatementBuilderType {
	if driver == DBDriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}

	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// QuoteIdentifier quotes a table or column name for the driver.
func QuoteIdentifier(driver DBDriver, name string) string {
	if driver == DBDriverMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}

	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// InsertReturningID runs the insert and returns the generated id of the new
// row, using RETURNING where LastInsertId is not supported.
func InsertReturningID(ctx context.Context, r Runner, b squirrel.InsertBuilder) (int64, error) {
	if r.Driver() == DBDriverPostgres {
		var id int64
		err := b.Suffix("RETURNING id").RunWith(r).QueryRowContext(ctx).Scan(&id)
		return id, err
	}

	result, err := b.RunWith(r).ExecContext(ctx)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

const (
	mysqlDuplicateEntry     = 1062
	mysqlNoReferencedRow    = 1452
	postgresUniqueViolation = "23505"
	postgresFKViolation     = "23503"
)

// IsUniqueViolation reports whether err is a unique or primary key
// constraint failure of any supported driver.
func IsUniqueViolation(err error) bool {
	var (
		mysqlErr  *mysql.MySQLError
		pgErr     *pgconn.PgError
		sqliteErr *sqlite.Error
	)

	switch {
	case errors.As(err, &mysqlErr):
		return mysqlErr.Number == mysqlDuplicateEntry
	case errors.As(err, &pgErr):
		return pgErr.Code == postgresUniqueViolation
	case errors.As(err, &sqliteErr):
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	default:
		return false
	}
}

// IsForeignKeyViolation reports whether err is a failed foreign key check.
func IsForeignKeyViolation(err error) bool {
	var (
		mysqlErr  *mysql.MySQLError
		pgErr     *pgconn.PgError
		sqliteErr *sqlite.Error
	)

	switch {
	case errors.As(err, &mysqlErr):
		return mysqlErr.Number == mysqlNoReferencedRow
	case errors.As(err, &pgErr):
		return pgErr.Code == postgresFKViolation
	case errors.As(err, &sqliteErr):
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	default:
		return false
	}
}
