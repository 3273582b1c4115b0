package migrations

import "github.com/taskboard/taskboard/pkg/sqlx"

const TableName = "taskboard_migrations"

var Migrations = []sqlx.Migration{
	{
		Name: "create_users_table",
		Up:   createUsersTableUp,
		Down: createUsersTableDown,
	},
	{
		Name: "create_projects_table",
		Up:   createProjectsTableUp,
		Down: createProjectsTableDown,
	},
	{
		Name: "create_tasks_table",
		Up:   createTasksTableUp,
		Down: createTasksTableDown,
	},
}
