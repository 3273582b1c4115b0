package db

const (
	failedToStartTransaction = "failed-to-start-transaction"

	failedToCountUsers     = "failed-to-count-users"
	failedToInsertUser     = "failed-to-insert-user"
	failedToFindUser       = "failed-to-find-user"
	failedToListUsers      = "failed-to-list-users"
	failedToUpdateUserRole = "failed-to-update-user-role"

	failedToInsertProject      = "failed-to-insert-project"
	failedToFindProject        = "failed-to-find-project"
	failedToListProjects       = "failed-to-list-projects"
	failedToUpdateProject      = "failed-to-update-project"
	failedToDeleteProject      = "failed-to-delete-project"
	failedToListManagedProject = "failed-to-list-managed-projects"

	failedToInsertTask = "failed-to-insert-task"
	failedToFindTask   = "failed-to-find-task"
	failedToListTasks  = "failed-to-list-tasks"
	failedToUpdateTask = "failed-to-update-task"
	failedToDeleteTask = "failed-to-delete-task"
)
