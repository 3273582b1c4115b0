package migrations

import (
	"context"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

var createProjectsTable = statements{
	mysql: []string{`
CREATE TABLE IF NOT EXISTS projects
(
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(128) NOT NULL UNIQUE,
  description TEXT NULL,
  status VARCHAR(16) NOT NULL,
  manager_id BIGINT NULL,
  start_date DATETIME(6) NOT NULL,
  end_date DATETIME(6) NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  INDEX projects_manager_id (manager_id),
  CONSTRAINT projects_manager_fk FOREIGN KEY (manager_id) REFERENCES users (id) ON DELETE SET NULL
)`},
	postgres: []string{`
CREATE TABLE IF NOT EXISTS projects
(
  id BIGSERIAL NOT NULL PRIMARY KEY,
  name VARCHAR(128) NOT NULL UNIQUE,
  description TEXT NULL,
  status VARCHAR(16) NOT NULL,
  manager_id BIGINT NULL REFERENCES users (id) ON DELETE SET NULL,
  start_date TIMESTAMP NOT NULL,
  end_date TIMESTAMP NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
)`,
		`CREATE INDEX projects_manager_id ON projects (manager_id)`,
	},
	sqlite: []string{`
CREATE TABLE IF NOT EXISTS projects
(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name VARCHAR(128) NOT NULL UNIQUE,
  description TEXT NULL,
  status VARCHAR(16) NOT NULL,
  manager_id INTEGER NULL REFERENCES users (id) ON DELETE SET NULL,
  start_date DATETIME NOT NULL,
  end_date DATETIME NULL,
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL
)`,
		`CREATE INDEX projects_manager_id ON projects (manager_id)`,
	},
}

var deleteProjectsTable = same(`DROP TABLE projects`)

func createProjectsTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-projects-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	return createProjectsTable.exec(ctx, tx)
}

func createProjectsTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-projects-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	return deleteProjectsTable.exec(ctx, tx)
}
