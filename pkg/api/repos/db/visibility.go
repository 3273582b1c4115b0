package db

import (
	"github.com/Masterminds/squirrel"
	"github.com/taskboard/taskboard/pkg/policy"
)

var matchNothing = squirrel.Expr("1 = 0")

// visibility translates a resolved predicate into a WHERE clause. A nil
// result means every row is visible.
func visibility(p policy.Predicate, resource policy.ResourceType) squirrel.Sqlizer {
	if p.Resource != resource {
		return matchNothing
	}

	switch p.Scope {
	case policy.ScopeAll:
		return nil
	case policy.ScopeManagedBy:
		return squirrel.Eq{"manager_id": p.ActorID}
	case policy.ScopeManagedProjects:
		if len(p.ProjectIDs) == 0 {
			return matchNothing
		}
		return squirrel.Eq{"project_id": p.ProjectIDs}
	case policy.ScopeAssignedTo:
		return squirrel.Eq{"assigned_to_id": p.ActorID}
	case policy.ScopeSelf:
		return squirrel.Eq{"id": p.ActorID}
	default:
		return matchNothing
	}
}
