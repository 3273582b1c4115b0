package policy

import (
	"context"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

// Engine evaluates requests against the access policy. It keeps no state of
// its own beyond the Lookup it reads through, and is safe for concurrent use
// if the Lookup is.
type Engine struct {
	lookup Lookup
}

func NewEngine(lookup Lookup) *Engine {
	return &Engine{lookup: lookup}
}

// Decide is the single entry point for the HTTP boundary. Collection reads
// are allowed with the actor's resolved visibility predicate; single reads
// are allowed when the record exists and the predicate accepts it; every
// other operation goes through Authorize.
func (e *Engine) Decide(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	switch req.Operation {
	case OperationList:
		return e.list(ctx, actor, req.Resource)
	case OperationRead:
		return e.read(ctx, actor, req)
	default:
		return e.Authorize(ctx, actor, req)
	}
}

// Visibility resolves the actor's predicate for the resource type.
func (e *Engine) Visibility(ctx context.Context, actor taskboard.Actor, resource ResourceType) (Predicate, error) {
	return VisibilityFilter(actor, resource).Resolve(ctx, e.lookup)
}

func (e *Engine) list(ctx context.Context, actor taskboard.Actor, resource ResourceType) (Decision, error) {
	if !Permitted(actor.Role, resource, OperationList) {
		return deny(ReasonRole), nil
	}

	p, err := e.Visibility(ctx, actor, resource)
	if err != nil {
		return Decision{}, err
	}

	d := allow()
	d.Filter = &p

	return d, nil
}

func (e *Engine) read(ctx context.Context, actor taskboard.Actor, req Request) (Decision, error) {
	switch req.Resource {
	case ResourceProject:
		if req.Project == nil {
			return notFound("project"), nil
		}
	case ResourceTask:
		if req.Task == nil {
			return notFound("task"), nil
		}
	case ResourceUser:
		if req.User == nil {
			return notFound("user"), nil
		}
	default:
		return deny(ReasonRole), nil
	}

	if !Permitted(actor.Role, req.Resource, OperationRead) {
		return deny(ReasonRole), nil
	}

	p, err := e.Visibility(ctx, actor, req.Resource)
	if err != nil {
		return Decision{}, err
	}

	var accepted bool
	switch req.Resource {
	case ResourceProject:
		accepted = p.AcceptProject(*req.Project)
	case ResourceTask:
		accepted = p.AcceptTask(*req.Task)
	case ResourceUser:
		accepted = p.AcceptUser(*req.User)
	}

	if !accepted {
		return deny(ReasonNotVisible), nil
	}

	return allow(), nil
}
