package migrations

import (
	"context"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/sqlx"
)

var createTasksTable = statements{
	mysql: []string{`
CREATE TABLE IF NOT EXISTS tasks
(
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  project_id BIGINT NOT NULL,
  assigned_to_id BIGINT NOT NULL,
  title VARCHAR(128) NOT NULL,
  description TEXT NOT NULL,
  status VARCHAR(16) NOT NULL,
  due_date DATETIME(6) NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  INDEX tasks_project_id (project_id),
  INDEX tasks_assigned_to_id (assigned_to_id),
  CONSTRAINT tasks_project_fk FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE,
  CONSTRAINT tasks_assignee_fk FOREIGN KEY (assigned_to_id) REFERENCES users (id)
)`},
	postgres: []string{`
CREATE TABLE IF NOT EXISTS tasks
(
  id BIGSERIAL NOT NULL PRIMARY KEY,
  project_id BIGINT NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  assigned_to_id BIGINT NOT NULL REFERENCES users (id),
  title VARCHAR(128) NOT NULL,
  description TEXT NOT NULL,
  status VARCHAR(16) NOT NULL,
  due_date TIMESTAMP NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
)`,
		`CREATE INDEX tasks_project_id ON tasks (project_id)`,
		`CREATE INDEX tasks_assigned_to_id ON tasks (assigned_to_id)`,
	},
	sqlite: []string{`
CREATE TABLE IF NOT EXISTS tasks
(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  project_id INTEGER NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  assigned_to_id INTEGER NOT NULL REFERENCES users (id),
  title VARCHAR(128) NOT NULL,
  description TEXT NOT NULL,
  status VARCHAR(16) NOT NULL,
  due_date DATETIME NULL,
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL
)`,
		`CREATE INDEX tasks_project_id ON tasks (project_id)`,
		`CREATE INDEX tasks_assigned_to_id ON tasks (assigned_to_id)`,
	},
}

var deleteTasksTable = same(`DROP TABLE tasks`)

func createTasksTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-tasks-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	return createTasksTable.exec(ctx, tx)
}

func createTasksTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-tasks-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	return deleteTasksTable.exec(ctx, tx)
}
