package policy

import "github.com/taskboard/taskboard/pkg/taskboard"

type Reason string

const (
	ReasonNone              Reason = ""
	ReasonResourceNotFound  Reason = "resource-not-found"
	ReasonReferenceNotFound Reason = "reference-not-found"

	ReasonRole            Reason = "role"
	ReasonOwnerMismatch   Reason = "owner-mismatch"
	ReasonFieldRestricted Reason = "field-restricted"
	ReasonNotVisible      Reason = "not-visible"
)

func (r Reason) Forbidden() bool {
	switch r {
	case ReasonRole, ReasonOwnerMismatch, ReasonFieldRestricted, ReasonNotVisible:
		return true
	default:
		return false
	}
}

type Decision struct {
	Allowed bool
	Reason  Reason

	// Model names the missing record for not-found reasons.
	Model string

	// Filter is set on allowed list reads.
	Filter *Predicate
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

func notFound(model string) Decision {
	return Decision{Reason: ReasonResourceNotFound, Model: model}
}

func referenceNotFound(model string) Decision {
	return Decision{Reason: ReasonReferenceNotFound, Model: model}
}

// Err converts a denial into the domain error the boundary reports: not found
// for missing resources, reference not found for dangling payload references
// and forbidden otherwise. It returns nil for an allowed decision.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}

	switch d.Reason {
	case ReasonResourceNotFound:
		return taskboard.NewErrNotFound(d.Model)
	case ReasonReferenceNotFound:
		return taskboard.NewErrReferenceNotFound(d.Model)
	default:
		return taskboard.NewErrForbidden(string(d.Reason))
	}
}
