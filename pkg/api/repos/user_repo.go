package repos

import (
	"context"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

type RegisterUserQuery struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// FindUserQuery looks a user up by id, or by email when UserID is zero.
type FindUserQuery struct {
	UserID int64
	Email  string
}

type ListUsersQuery struct {
	Filter policy.Predicate
}

type UpdateUserRoleQuery struct {
	UserID int64
	Role   taskboard.Role
}

//go:generate counterfeiter . UserRepo

type UserRepo interface {
	// RegisterUser counts the existing users and inserts the new one
	// atomically, so exactly one account can ever be granted the initial
	// Admin role.
	RegisterUser(
		ctx context.Context,
		logger logx.Logger,
		query RegisterUserQuery,
	) (*taskboard.User, error)

	FindUser(
		ctx context.Context,
		logger logx.Logger,
		query FindUserQuery,
	) (*taskboard.User, error)

	ListUsers(
		ctx context.Context,
		logger logx.Logger,
		query ListUsersQuery,
	) ([]*taskboard.User, error)

	CountUsers(
		ctx context.Context,
		logger logx.Logger,
	) (int64, error)

	UpdateUserRole(
		ctx context.Context,
		logger logx.Logger,
		query UpdateUserRoleQuery,
	) (*taskboard.User, error)
}
