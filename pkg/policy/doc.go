// Package policy decides which operations an actor may perform on projects,
// tasks and users, and which records a read may return.
//
// Every function in this package is a pure function of the actor, the
// resource snapshot and the requested change. Records the decision depends on
// but the caller did not supply (the target project of a new task, the set of
// projects a manager owns, whether a referenced user exists) are read through
// a Lookup. The package never writes.
//
// Existence is always checked before permission: a missing resource is
// reported as not found whatever the actor's role.
package policy
