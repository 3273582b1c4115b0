package policy

import (
	"context"
	"sort"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

type Scope int

const (
	// ScopeNone accepts nothing.
	ScopeNone Scope = iota
	ScopeAll
	// ScopeManagedBy accepts projects whose manager is the actor.
	ScopeManagedBy
	// ScopeManagedProjects accepts tasks of projects managed by the actor.
	ScopeManagedProjects
	// ScopeAssignedTo accepts tasks assigned to the actor.
	ScopeAssignedTo
	// ScopeSelf accepts the actor's own user record.
	ScopeSelf
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeManagedBy:
		return "managed-by"
	case ScopeManagedProjects:
		return "managed-projects"
	case ScopeAssignedTo:
		return "assigned-to"
	case ScopeSelf:
		return "self"
	default:
		return "none"
	}
}

// Filter is the unresolved visibility rule of an actor for one resource type.
type Filter struct {
	Resource ResourceType
	Scope    Scope
	ActorID  int64
}

// VisibilityFilter returns the rule restricting which records of the given
// type the actor may read. It never fails: an actor with an unknown role, or
// an unknown resource type, gets a filter that accepts nothing.
//
// Employees are matched on project manager like project managers are, so an
// employee who manages no project sees no projects.
func VisibilityFilter(actor taskboard.Actor, resource ResourceType) Filter {
	f := Filter{Resource: resource, Scope: ScopeNone, ActorID: actor.ID}

	switch resource {
	case ResourceProject:
		switch actor.Role {
		case taskboard.RoleAdmin:
			f.Scope = ScopeAll
		case taskboard.RoleProjectManager, taskboard.RoleEmployee:
			f.Scope = ScopeManagedBy
		}
	case ResourceTask:
		switch actor.Role {
		case taskboard.RoleAdmin:
			f.Scope = ScopeAll
		case taskboard.RoleProjectManager:
			f.Scope = ScopeManagedProjects
		case taskboard.RoleEmployee:
			f.Scope = ScopeAssignedTo
		}
	case ResourceUser:
		switch actor.Role {
		case taskboard.RoleAdmin, taskboard.RoleProjectManager:
			f.Scope = ScopeAll
		case taskboard.RoleEmployee:
			f.Scope = ScopeSelf
		}
	}

	return f
}

// Resolve performs the lookups the filter depends on and returns the
// predicate the record store applies. Only ScopeManagedProjects needs a
// lookup: the ids of the projects managed by the actor.
func (f Filter) Resolve(ctx context.Context, lookup Lookup) (Predicate, error) {
	p := Predicate{
		Resource: f.Resource,
		Scope:    f.Scope,
		ActorID:  f.ActorID,
	}

	if f.Scope != ScopeManagedProjects {
		return p, nil
	}

	ids, err := lookup.ManagedProjectIDs(ctx, f.ActorID)
	if err != nil {
		return Predicate{}, err
	}

	p.ProjectIDs = normalizeIDs(ids)

	return p, nil
}

// Predicate is a resolved visibility filter. Stores evaluate it in memory
// with the Accept methods or translate its terms into a query.
type Predicate struct {
	Resource ResourceType
	Scope    Scope
	ActorID  int64

	// ProjectIDs is the sorted set of project ids for ScopeManagedProjects.
	// It may be empty, in which case the predicate accepts no task.
	ProjectIDs []int64
}

// AllPredicate accepts every record of the given type. It is used by
// internal callers acting outside any actor's request.
func AllPredicate(resource ResourceType) Predicate {
	return Predicate{Resource: resource, Scope: ScopeAll}
}

func (p Predicate) AcceptProject(project ProjectRef) bool {
	if p.Resource != ResourceProject {
		return false
	}

	switch p.Scope {
	case ScopeAll:
		return true
	case ScopeManagedBy:
		return project.ManagedBy(p.ActorID)
	default:
		return false
	}
}

func (p Predicate) AcceptTask(task TaskRef) bool {
	if p.Resource != ResourceTask {
		return false
	}

	switch p.Scope {
	case ScopeAll:
		return true
	case ScopeManagedProjects:
		i := sort.Search(len(p.ProjectIDs), func(i int) bool { return p.ProjectIDs[i] >= task.ProjectID })
		return i < len(p.ProjectIDs) && p.ProjectIDs[i] == task.ProjectID
	case ScopeAssignedTo:
		return task.AssignedToID == p.ActorID
	default:
		return false
	}
}

func (p Predicate) AcceptUser(user UserRef) bool {
	if p.Resource != ResourceUser {
		return false
	}

	switch p.Scope {
	case ScopeAll:
		return true
	case ScopeSelf:
		return user.ID == p.ActorID
	default:
		return false
	}
}

// Empty reports whether the predicate can accept no record at all.
func (p Predicate) Empty() bool {
	return p.Scope == ScopeNone || (p.Scope == ScopeManagedProjects && len(p.ProjectIDs) == 0)
}

func normalizeIDs(ids []int64) []int64 {
	set := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))

	for _, id := range ids {
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
