package policy

import (
	"context"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

type ResourceType string

const (
	ResourceProject ResourceType = "project"
	ResourceTask    ResourceType = "task"
	ResourceUser    ResourceType = "user"
)

type Operation string

const (
	OperationList   Operation = "list"
	OperationRead   Operation = "read"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// ProjectRef is the read projection of a project the policy depends on.
type ProjectRef struct {
	ID        int64
	ManagerID *int64
}

func (p ProjectRef) ManagedBy(userID int64) bool {
	return p.ManagerID != nil && *p.ManagerID == userID
}

type TaskRef struct {
	ID           int64
	ProjectID    int64
	AssignedToID int64
}

type UserRef struct {
	ID int64
}

func ProjectRefOf(p *taskboard.Project) *ProjectRef {
	if p == nil {
		return nil
	}

	return &ProjectRef{ID: p.ID, ManagerID: p.ManagerID}
}

func TaskRefOf(t *taskboard.Task) *TaskRef {
	if t == nil {
		return nil
	}

	return &TaskRef{ID: t.ID, ProjectID: t.ProjectID, AssignedToID: t.AssignedToID}
}

func UserRefOf(u *taskboard.User) *UserRef {
	if u == nil {
		return nil
	}

	return &UserRef{ID: u.ID}
}

// Payload describes the requested change of a create or update.
//
// Fields holds every top-level field name present in the request body,
// whether or not the caller recognises it. The reference fields are set only
// when the payload carries a non-null value for them.
type Payload struct {
	Fields []string

	ProjectID    *int64
	AssignedToID *int64
	ManagerID    *int64
}

func (p Payload) Has(field string) bool {
	for _, f := range p.Fields {
		if f == field {
			return true
		}
	}

	return false
}

// Request is one operation an actor asks to perform.
//
// For read, update and delete of a single record the caller loads the record
// and passes its projection; a nil projection means the record does not
// exist.
type Request struct {
	Operation Operation
	Resource  ResourceType

	Project *ProjectRef
	Task    *TaskRef
	User    *UserRef

	Payload Payload
}

//go:generate counterfeiter . Lookup

// Lookup is the read-only view of the record store the policy needs.
// FindProject returns taskboard.ErrProjectNotFound for a missing project.
type Lookup interface {
	FindProject(ctx context.Context, projectID int64) (ProjectRef, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	ManagedProjectIDs(ctx context.Context, managerID int64) ([]int64, error)
}
