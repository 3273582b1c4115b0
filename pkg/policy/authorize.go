package policy

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

// EmployeeTaskFields is the set of task fields an assigned employee may change.
var EmployeeTaskFields = []string{"status", "description"}

// Authorize decides a create, update or delete. The error return is reserved
// for lookup failures; every policy outcome is carried in the Decision.
func (e *Engine) Authorize(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	switch req.Resource {
	case ResourceProject:
		switch req.Operation {
		case OperationCreate:
			return e.createProject(ctx, actor, req)
		case OperationUpdate, OperationDelete:
			return e.changeProject(ctx, actor, req)
		}
	case ResourceTask:
		switch req.Operation {
		case OperationCreate:
			return e.createTask(ctx, actor, req)
		case OperationUpdate:
			return e.updateTask(ctx, actor, req)
		case OperationDelete:
			return e.deleteTask(ctx, actor, req)
		}
	case ResourceUser:
		if req.Operation == OperationUpdate {
			return e.updateUser(actor, req), nil
		}
	}

	return deny(ReasonRole), nil
}

func (e *Engine) createProject(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	if !Permitted(actor.Role, ResourceProject, OperationCreate) {
		return deny(ReasonRole), nil
	}

	return e.checkUserReference(ctx, req.Payload.ManagerID)
}

func (e *Engine) changeProject(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	if req.Project == nil {
		return notFound("project"), nil
	}

	if !Permitted(actor.Role, ResourceProject, req.Operation) {
		return deny(ReasonRole), nil
	}

	if actor.Role != taskboard.RoleAdmin && !req.Project.ManagedBy(actor.ID) {
		return deny(ReasonOwnerMismatch), nil
	}

	if req.Operation == OperationDelete {
		return allow(), nil
	}

	return e.checkUserReference(ctx, req.Payload.ManagerID)
}

func (e *Engine) createTask(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	if req.Payload.ProjectID == nil {
		return notFound("project"), nil
	}

	var (
		project        ProjectRef
		projectMissing bool
		assigneeExists = true
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := e.lookup.FindProject(gctx, *req.Payload.ProjectID)
		if errors.Is(err, taskboard.ErrProjectNotFound) {
			projectMissing = true
			return nil
		}
		project = p
		return err
	})

	if req.Payload.AssignedToID != nil {
		g.Go(func() error {
			ok, err := e.lookup.UserExists(gctx, *req.Payload.AssignedToID)
			assigneeExists = ok
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Decision{}, err
	}

	if projectMissing {
		return notFound("project"), nil
	}

	if !Permitted(actor.Role, ResourceTask, OperationCreate) {
		return deny(ReasonRole), nil
	}

	if actor.Role != taskboard.RoleAdmin && !project.ManagedBy(actor.ID) {
		return deny(ReasonOwnerMismatch), nil
	}

	if !assigneeExists {
		return referenceNotFound("user"), nil
	}

	return allow(), nil
}

func (e *Engine) updateTask(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	if req.Task == nil {
		return notFound("task"), nil
	}

	if !Permitted(actor.Role, ResourceTask, OperationUpdate) {
		return deny(ReasonRole), nil
	}

	switch actor.Role {
	case taskboard.RoleAdmin:
	case taskboard.RoleProjectManager:
		manages, err := e.managesProject(ctx, actor, req.Task.ProjectID)
		if err != nil {
			return Decision{}, err
		}
		if !manages {
			return deny(ReasonOwnerMismatch), nil
		}
	case taskboard.RoleEmployee:
		if req.Task.AssignedToID != actor.ID {
			return deny(ReasonOwnerMismatch), nil
		}
		if !onlyFields(req.Payload.Fields, EmployeeTaskFields) {
			return deny(ReasonFieldRestricted), nil
		}
	default:
		return deny(ReasonRole), nil
	}

	return e.checkTaskReferences(ctx, *req.Task, req.Payload)
}

func (e *Engine) deleteTask(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	if req.Task == nil {
		return notFound("task"), nil
	}

	if !Permitted(actor.Role, ResourceTask, OperationDelete) {
		return deny(ReasonRole), nil
	}

	if actor.Role == taskboard.RoleAdmin {
		return allow(), nil
	}

	manages, err := e.managesProject(ctx, actor, req.Task.ProjectID)
	if err != nil {
		return Decision{}, err
	}
	if !manages {
		return deny(ReasonOwnerMismatch), nil
	}

	return allow(), nil
}

func (e *Engine) updateUser(actor taskboard.Actor, req Request) Decision {
	if req.User == nil {
		return notFound("user")
	}

	if !Permitted(actor.Role, ResourceUser, OperationUpdate) {
		return deny(ReasonRole)
	}

	return allow()
}

// managesProject reports whether the actor manages the project. A project
// that no longer exists is managed by nobody.
func (e *Engine) managesProject(ctx context.Context, actor taskboard.Actor, projectID int64) (bool, error) {
	project, err := e.lookup.FindProject(ctx, projectID)
	if errors.Is(err, taskboard.ErrProjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return project.ManagedBy(actor.ID), nil
}

func (e *Engine) checkUserReference(ctx context.Context, userID *int64) (Decision, error) {
	if userID == nil {
		return allow(), nil
	}

	ok, err := e.lookup.UserExists(ctx, *userID)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		return referenceNotFound("user"), nil
	}

	return allow(), nil
}

// checkTaskReferences verifies the project and assignee a task update moves
// the task to. Unchanged references are not looked up again.
func (e *Engine) checkTaskReferences(ctx context.Context, task TaskRef, payload Payload) (Decision, error) {
	var projectMissing, assigneeMissing bool

	g, gctx := errgroup.WithContext(ctx)

	if payload.ProjectID != nil && *payload.ProjectID != task.ProjectID {
		g.Go(func() error {
			_, err := e.lookup.FindProject(gctx, *payload.ProjectID)
			if errors.Is(err, taskboard.ErrProjectNotFound) {
				projectMissing = true
				return nil
			}
			return err
		})
	}

	if payload.AssignedToID != nil && *payload.AssignedToID != task.AssignedToID {
		g.Go(func() error {
			ok, err := e.lookup.UserExists(gctx, *payload.AssignedToID)
			assigneeMissing = !ok
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Decision{}, err
	}

	switch {
	case projectMissing:
		return referenceNotFound("project"), nil
	case assigneeMissing:
		return referenceNotFound("user"), nil
	}

	return allow(), nil
}

func onlyFields(fields []string, allowed []string) bool {
	for _, f := range fields {
		found := false
		for _, a := range allowed {
			if f == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
