package repos

import (
	"context"
	"time"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

type CreateTaskQuery struct {
	ProjectID    int64
	AssignedToID int64
	Title        string
	Description  string
	Status       taskboard.TaskStatus
	DueDate      *time.Time
}

type FindTaskQuery struct {
	TaskID int64
}

type ListTasksQuery struct {
	Filter policy.Predicate
}

// TaskChanges holds the fields of an update. Nil fields are left alone.
type TaskChanges struct {
	ProjectID    *int64
	AssignedToID *int64
	Title        *string
	Description  *string
	Status       *taskboard.TaskStatus
	DueDate      *time.Time

	ClearDueDate bool
}

type UpdateTaskQuery struct {
	TaskID  int64
	Changes TaskChanges
}

type DeleteTaskQuery struct {
	TaskID int64
}

//go:generate counterfeiter . TaskRepo

type TaskRepo interface {
	CreateTask(
		ctx context.Context,
		logger logx.Logger,
		query CreateTaskQuery,
	) (*taskboard.Task, error)

	FindTask(
		ctx context.Context,
		logger logx.Logger,
		query FindTaskQuery,
	) (*taskboard.Task, error)

	ListTasks(
		ctx context.Context,
		logger logx.Logger,
		query ListTasksQuery,
	) ([]*taskboard.Task, error)

	UpdateTask(
		ctx context.Context,
		logger logx.Logger,
		query UpdateTaskQuery,
	) (*taskboard.Task, error)

	DeleteTask(
		ctx context.Context,
		logger logx.Logger,
		query DeleteTaskQuery,
	) error
}
