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

var projectColumns = []string{
	"id",
	"name",
	"description",
	"status",
	"manager_id",
	"start_date",
	"end_date",
	"created_at",
	"updated_at",
}

func (s *Store) CreateProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.CreateProjectQuery,
) (*taskboard.Project, error) {
	logger = logger.WithName("create-project")

	now := s.now()
	p := taskboard.Project{
		Name:        query.Name,
		Description: query.Description,
		Status:      query.Status,
		ManagerID:   query.ManagerID,
		StartDate:   query.StartDate.UTC().Truncate(timePrecision),
		EndDate:     truncate(query.EndDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	insert := s.conn.StatementBuilder().
		Insert("projects").
		Columns("name", "description", "status", "manager_id", "start_date", "end_date", "created_at", "updated_at").
		Values(p.Name, nullString(p.Description), string(p.Status), nullInt64(p.ManagerID), p.StartDate, nullTime(p.EndDate), p.CreatedAt, p.UpdatedAt)

	id, err := sqlx.InsertReturningID(ctx, s.conn, insert)
	switch {
	case sqlx.IsUniqueViolation(err):
		return nil, taskboard.ErrProjectAlreadyExists
	case sqlx.IsForeignKeyViolation(err):
		return nil, errUserReferenceNotFound
	case err != nil:
		logger.Error(failedToInsertProject, err)
		return nil, err
	}

	p.ID = id

	return &p, nil
}

func (s *Store) FindProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindProjectQuery,
) (*taskboard.Project, error) {
	return findProject(ctx, logger.WithName("find-project"), s.conn, query.ProjectID)
}

func (s *Store) ListProjects(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListProjectsQuery,
) ([]*taskboard.Project, error) {
	logger = logger.WithName("list-projects")

	sel := s.conn.StatementBuilder().
		Select(projectColumns...).
		From("projects").
		OrderBy("id")
	if where := visibility(query.Filter, policy.ResourceProject); where != nil {
		sel = sel.Where(where)
	}

	rows, err := sel.RunWith(s.conn).QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListProjects, err)
		return nil, err
	}
	defer rows.Close()

	projects := make([]*taskboard.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			logger.Error(failedToListProjects, err)
			return nil, err
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListProjects, err)
		return nil, err
	}

	return projects, nil
}

func (s *Store) UpdateProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.UpdateProjectQuery,
) (project *taskboard.Project, err error) {
	logger = logger.WithName("update-project").WithData(logx.Data{Key: "project.id", Value: query.ProjectID})

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return nil, err
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			project = nil
			err = commitErr
		}
	}()

	if _, err = findProject(ctx, logger, tx, query.ProjectID); err != nil {
		return nil, err
	}

	c := query.Changes
	update := tx.StatementBuilder().
		Update("projects").
		Set("updated_at", s.now()).
		Where(squirrel.Eq{"id": query.ProjectID})

	if c.Name != nil {
		update = update.Set("name", *c.Name)
	}
	if c.Description != nil {
		update = update.Set("description", *c.Description)
	}
	if c.ClearDescription {
		update = update.Set("description", nil)
	}
	if c.Status != nil {
		update = update.Set("status", string(*c.Status))
	}
	if c.ManagerID != nil {
		update = update.Set("manager_id", *c.ManagerID)
	}
	if c.ClearManager {
		update = update.Set("manager_id", nil)
	}
	if c.StartDate != nil {
		update = update.Set("start_date", c.StartDate.UTC().Truncate(timePrecision))
	}
	if c.EndDate != nil {
		update = update.Set("end_date", *truncate(c.EndDate))
	}
	if c.ClearEndDate {
		update = update.Set("end_date", nil)
	}

	_, err = update.RunWith(tx).ExecContext(ctx)
	switch {
	case sqlx.IsUniqueViolation(err):
		return nil, taskboard.ErrProjectAlreadyExists
	case sqlx.IsForeignKeyViolation(err):
		return nil, errUserReferenceNotFound
	case err != nil:
		logger.Error(failedToUpdateProject, err)
		return nil, err
	}

	return findProject(ctx, logger, tx, query.ProjectID)
}

func (s *Store) DeleteProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.DeleteProjectQuery,
) (err error) {
	logger = logger.WithName("delete-project").WithData(logx.Data{Key: "project.id", Value: query.ProjectID})

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return err
	}

	defer func() {
		err = sqlx.Commit(logger, tx, err)
	}()

	_, err = tx.StatementBuilder().
		Delete("tasks").
		Where(squirrel.Eq{"project_id": query.ProjectID}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToDeleteProject, err)
		return err
	}

	result, err := tx.StatementBuilder().
		Delete("projects").
		Where(squirrel.Eq{"id": query.ProjectID}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToDeleteProject, err)
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		logger.Error(failedToDeleteProject, err)
		return err
	}
	if n == 0 {
		return taskboard.ErrProjectNotFound
	}

	return nil
}

func (s *Store) ListManagedProjectIDs(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListManagedProjectIDsQuery,
) ([]int64, error) {
	logger = logger.WithName("list-managed-project-ids")

	rows, err := s.conn.StatementBuilder().
		Select("id").
		From("projects").
		Where(squirrel.Eq{"manager_id": query.ManagerID}).
		OrderBy("id").
		RunWith(s.conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListManagedProject, err)
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			logger.Error(failedToListManagedProject, err)
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListManagedProject, err)
		return nil, err
	}

	return ids, nil
}

func findProject(ctx context.Context, logger logx.Logger, conn sqlx.Runner, projectID int64) (*taskboard.Project, error) {
	row := conn.StatementBuilder().
		Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": projectID}).
		RunWith(conn).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, taskboard.ErrProjectNotFound
	}
	if err != nil {
		logger.Error(failedToFindProject, err)
		return nil, err
	}

	return p, nil
}

func scanProject(row squirrel.RowScanner) (*taskboard.Project, error) {
	var (
		p           taskboard.Project
		description sql.NullString
		status      string
		managerID   sql.NullInt64
		endDate     sql.NullTime
	)

	err := row.Scan(&p.ID, &p.Name, &description, &status, &managerID, &p.StartDate, &endDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Description = fromNullString(description)
	p.Status = taskboard.ProjectStatus(status)
	p.ManagerID = fromNullInt64(managerID)
	p.StartDate = p.StartDate.UTC()
	p.EndDate = fromNullTime(endDate)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()

	return &p, nil
}
