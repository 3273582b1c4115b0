package db

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

// Store is the SQL record store. Queries are built with squirrel using the
// placeholder format of the connection's driver.
type Store struct {
	conn  *sqlx.DB
	clock clock.Clock
}

func NewStore(conn *sqlx.DB, clk clock.Clock) *Store {
	return &Store{
		conn:  conn,
		clock: clk,
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
