package repos

import (
	"context"
	"time"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

type CreateProjectQuery struct {
	Name        string
	Description *string
	Status      taskboard.ProjectStatus
	ManagerID   *int64
	StartDate   time.Time
	EndDate     *time.Time
}

type FindProjectQuery struct {
	ProjectID int64
}

type ListProjectsQuery struct {
	Filter policy.Predicate
}

// ProjectChanges holds the fields of an update. Nil fields are left alone;
// the Clear flags set the matching nullable column to NULL.
type ProjectChanges struct {
	Name        *string
	Description *string
	Status      *taskboard.ProjectStatus
	ManagerID   *int64
	StartDate   *time.Time
	EndDate     *time.Time

	ClearDescription bool
	ClearManager     bool
	ClearEndDate     bool
}

type UpdateProjectQuery struct {
	ProjectID int64
	Changes   ProjectChanges
}

type DeleteProjectQuery struct {
	ProjectID int64
}

type ListManagedProjectIDsQuery struct {
	ManagerID int64
}

//go:generate counterfeiter . ProjectRepo

type ProjectRepo interface {
	CreateProject(
		ctx context.Context,
		logger logx.Logger,
		query CreateProjectQuery,
	) (*taskboard.Project, error)

	FindProject(
		ctx context.Context,
		logger logx.Logger,
		query FindProjectQuery,
	) (*taskboard.Project, error)

	ListProjects(
		ctx context.Context,
		logger logx.Logger,
		query ListProjectsQuery,
	) ([]*taskboard.Project, error)

	UpdateProject(
		ctx context.Context,
		logger logx.Logger,
		query UpdateProjectQuery,
	) (*taskboard.Project, error)

	// DeleteProject removes the project and every task in it.
	DeleteProject(
		ctx context.Context,
		logger logx.Logger,
		query DeleteProjectQuery,
	) error

	ListManagedProjectIDs(
		ctx context.Context,
		logger logx.Logger,
		query ListManagedProjectIDsQuery,
	) ([]int64, error)
}
