package migrations

import (
	"context"

	"github.com/taskboard/taskboard/pkg/sqlx"
)

type statements struct {
	mysql    []string
	postgres []string
	sqlite   []string
}

func (s statements) exec(ctx context.Context, tx *sqlx.Tx) error {
	var stmts []string

	switch tx.Driver() {
	case sqlx.DBDriverMySQL:
		stmts = s.mysql
	case sqlx.DBDriverPostgres:
		stmts = s.postgres
	case sqlx.DBDriverSQLite:
		stmts = s.sqlite
	default:
		return sqlx.ErrUnsupportedSQLDriver
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// same uses one statement list for every driver.
func same(stmts ...string) statements {
	return statements{mysql: stmts, postgres: stmts, sqlite: stmts}
}
