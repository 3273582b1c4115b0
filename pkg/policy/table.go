package policy

import "github.com/taskboard/taskboard/pkg/taskboard"

type tableKey struct {
	resource  ResourceType
	operation Operation
}

type roleSet map[taskboard.Role]struct{}

func roles(rs ...taskboard.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}

	return set
}

func (s roleSet) has(r taskboard.Role) bool {
	_, ok := s[r]
	return ok
}

var (
	everyone = roles(taskboard.RoleAdmin, taskboard.RoleProjectManager, taskboard.RoleEmployee)
	managers = roles(taskboard.RoleAdmin, taskboard.RoleProjectManager)
	admins   = roles(taskboard.RoleAdmin)
)

// table holds the role gate of every operation, independent of ownership.
// Reads are open to every role because visibility narrows what they return.
// Task updates are open to every role because the employee branch is decided
// on assignment and payload.
var table = map[tableKey]roleSet{
	{ResourceProject, OperationList}:   everyone,
	{ResourceProject, OperationRead}:   everyone,
	{ResourceProject, OperationCreate}: managers,
	{ResourceProject, OperationUpdate}: managers,
	{ResourceProject, OperationDelete}: managers,

	{ResourceTask, OperationList}:   everyone,
	{ResourceTask, OperationRead}:   everyone,
	{ResourceTask, OperationCreate}: managers,
	{ResourceTask, OperationUpdate}: everyone,
	{ResourceTask, OperationDelete}: managers,

	{ResourceUser, OperationList}:   everyone,
	{ResourceUser, OperationRead}:   everyone,
	{ResourceUser, OperationUpdate}: admins,
}

// Permitted reports whether the role passes the gate for the operation.
// Unknown roles and operations missing from the table are never permitted.
func Permitted(role taskboard.Role, resource ResourceType, op Operation) bool {
	set, ok := table[tableKey{resource, op}]
	if !ok {
		return false
	}

	return set.has(role)
}
