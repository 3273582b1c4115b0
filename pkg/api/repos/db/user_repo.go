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

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"password_hash",
	"role",
	"created_at",
	"updated_at",
}

func (s *Store) RegisterUser(
	ctx context.Context,
	logger logx.Logger,
	query repos.RegisterUserQuery,
) (user *taskboard.User, err error) {
	logger = logger.WithName("register-user")

	tx, err := s.conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return nil, err
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			user = nil
			err = commitErr
		}
	}()

	count, err := countUsers(ctx, logger, tx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := taskboard.User{
		FirstName:    query.FirstName,
		LastName:     query.LastName,
		Email:        query.Email,
		PasswordHash: query.PasswordHash,
		Role:         taskboard.InitialRole(count),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	insert := tx.StatementBuilder().
		Insert("users").
		Columns("first_name", "last_name", "email", "password_hash", "role", "created_at", "updated_at").
		Values(u.FirstName, u.LastName, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt)

	u.ID, err = sqlx.InsertReturningID(ctx, tx, insert)
	if sqlx.IsUniqueViolation(err) {
		return nil, taskboard.ErrUserAlreadyExists
	}
	if err != nil {
		logger.Error(failedToInsertUser, err)
		return nil, err
	}

	return &u, nil
}

func (s *Store) FindUser(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindUserQuery,
) (*taskboard.User, error) {
	logger = logger.WithName("find-user")

	var where squirrel.Sqlizer
	switch {
	case query.UserID != 0:
		where = squirrel.Eq{"id": query.UserID}
	case query.Email != "":
		where = squirrel.Eq{"email": query.Email}
	default:
		return nil, taskboard.ErrUserNotFound
	}

	row := s.conn.StatementBuilder().
		Select(userColumns...).
		From("users").
		Where(where).
		RunWith(s.conn).
		QueryRowContext(ctx)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, taskboard.ErrUserNotFound
	}
	if err != nil {
		logger.Error(failedToFindUser, err)
		return nil, err
	}

	return user, nil
}

func (s *Store) ListUsers(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListUsersQuery,
) ([]*taskboard.User, error) {
	logger = logger.WithName("list-users")

	sel := s.conn.StatementBuilder().
		Select(userColumns...).
		From("users").
		OrderBy("id")
	if where := visibility(query.Filter, policy.ResourceUser); where != nil {
		sel = sel.Where(where)
	}

	rows, err := sel.RunWith(s.conn).QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListUsers, err)
		return nil, err
	}
	defer rows.Close()

	users := make([]*taskboard.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Error(failedToListUsers, err)
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListUsers, err)
		return nil, err
	}

	return users, nil
}

func (s *Store) CountUsers(
	ctx context.Context,
	logger logx.Logger,
) (int64, error) {
	return countUsers(ctx, logger.WithName("count-users"), s.conn)
}

func (s *Store) UpdateUserRole(
	ctx context.Context,
	logger logx.Logger,
	query repos.UpdateUserRoleQuery,
) (*taskboard.User, error) {
	logger = logger.WithName("update-user-role")

	_, err := s.conn.StatementBuilder().
		Update("users").
		Set("role", string(query.Role)).
		Set("updated_at", s.now()).
		Where(squirrel.Eq{"id": query.UserID}).
		RunWith(s.conn).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToUpdateUserRole, err)
		return nil, err
	}

	return s.FindUser(ctx, logger, repos.FindUserQuery{UserID: query.UserID})
}

func countUsers(ctx context.Context, logger logx.Logger, conn sqlx.Runner) (int64, error) {
	var count int64

	err := conn.StatementBuilder().
		Select("COUNT(*)").
		From("users").
		RunWith(conn).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		logger.Error(failedToCountUsers, err)
		return 0, err
	}

	return count, nil
}

func scanUser(row squirrel.RowScanner) (*taskboard.User, error) {
	var (
		u    taskboard.User
		role string
	)

	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	u.Role = taskboard.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()

	return &u, nil
}
