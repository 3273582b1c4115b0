package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/sqlx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

var taskColumns = []string{
	"id",
	"project_id",
	"assigned_to_id",
	"title",
	"description",
	"status",
	"due_date",
	"created_at",
	"updated_at",
}

func (s *Store) CreateTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.CreateTaskQuery,
) (*taskboard.Task, error) {
	logger = logger.WithName("create-task")

	now := s.now()
	t := taskboard.Task{
		ProjectID:    query.ProjectID,
		AssignedToID: query.AssignedToID,
		Title:        query.Title,
		Description:  query.Description,
		Status:       query.Status,
		DueDate:      truncate(query.DueDate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	insert := s.conn.StatementBuilder().
		Insert("tasks").
		Columns("project_id", "assigned_to_id", "title", "description", "status", "due_date", "created_at", "updated_at").
		Values(t.ProjectID, t.AssignedToID, t.Title, t.Description, string(t.Status), nullTime(t.DueDate), t.CreatedAt, t.UpdatedAt)

	id, err := sqlx.InsertReturningID(ctx, s.conn, insert)
	switch {
	case sqlx.IsForeignKeyViolation(err):
		return nil, errTaskReferenceNotFound
	case err != nil:
		logger.Error(failedToInsertTask, err)
		return nil, err
	}

	t.ID = id

	return &t, nil
}

func (s *Store) FindTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindTaskQuery,
) (*taskboard.Task, error) {
	return findTask(ctx, logger.WithName("find-task"), s.conn, query.TaskID)
}

func (s *Store) ListTasks(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListTasksQuery,
) ([]*taskboard.Task, error) {
	logger = logger.WithName("list-tasks")

	sel := s.conn.StatementBuilder().
		Select(taskColumns...).
		From("tasks").
		OrderBy("id")
	if where := visibility(query.Filter, policy.ResourceTask); where != nil {
		sel = sel.Where(where)
	}

	rows, err := sel.RunWith(s.conn).QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListTasks, err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*taskboard.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			logger.Error(failedToListTasks, err)
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListTasks, err)
		return nil, err
	}

	return tasks, nil
}

func (s *Store) UpdateTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.UpdateTaskQuery,
) (task *taskboard.Task, err error) {
	logger = logger.WithName("update-task").WithData(logx.Data{Key: "task.id", Value: query.TaskID})

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return nil, err
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			task = nil
			err = commitErr
		}
	}()

	if _, err = findTask(ctx, logger, tx, query.TaskID); err != nil {
		return nil, err
	}

	c := query.Changes
	update := tx.StatementBuilder().
		Update("tasks").
		Set("updated_at", s.now()).
		Where(squirrel.Eq{"id": query.TaskID})

	if c.ProjectID != nil {
		update = update.Set("project_id", *c.ProjectID)
	}
	if c.AssignedToID != nil {
		update = update.Set("assigned_to_id", *c.AssignedToID)
	}
	if c.Title != nil {
		update = update.Set("title", *c.Title)
	}
	if c.Description != nil {
		update = update.Set("description", *c.Description)
	}
	if c.Status != nil {
		update = update.Set("status", string(*c.Status))
	}
	if c.DueDate != nil {
		update = update.Set("due_date", *truncate(c.DueDate))
	}
	if c.ClearDueDate {
		update = update.Set("due_date", nil)
	}

	_, err = update.RunWith(tx).ExecContext(ctx)
	switch {
	case sqlx.IsForeignKeyViolation(err):
		return nil, errTaskReferenceNotFound
	case err != nil:
		logger.Error(failedToUpdateTask, err)
		return nil, err
	}

	return findTask(ctx, logger, tx, query.TaskID)
}

func (s *Store) DeleteTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.DeleteTaskQuery,
) error {
	logger = logger.WithName("delete-task").WithData(logx.Data{Key: "task.id", Value: query.TaskID})

	result, err := s.conn.StatementBuilder().
		Delete("tasks").
		Where(squirrel.Eq{"id": query.TaskID}).
		RunWith(s.conn).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToDeleteTask, err)
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		logger.Error(failedToDeleteTask, err)
		return err
	}
	if n == 0 {
		return taskboard.ErrTaskNotFound
	}

	return nil
}

func findTask(ctx context.Context, logger logx.Logger, conn sqlx.Runner, taskID int64) (*taskboard.Task, error) {
	row := conn.StatementBuilder().
		Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": taskID}).
		RunWith(conn).
		QueryRowContext(ctx)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, taskboard.ErrTaskNotFound
	}
	if err != nil {
		logger.Error(failedToFindTask, err)
		return nil, err
	}

	return t, nil
}

func scanTask(row squirrel.RowScanner) (*taskboard.Task, error) {
	var (
		t       taskboard.Task
		status  string
		dueDate sql.NullTime
	)

	err := row.Scan(&t.ID, &t.ProjectID, &t.AssignedToID, &t.Title, &t.Description, &status, &dueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	t.Status = taskboard.TaskStatus(status)
	t.DueDate = fromNullTime(dueDate)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()

	return &t, nil
}
