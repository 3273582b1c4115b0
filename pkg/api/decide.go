package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

// audit names the security log event of a decision.
type audit struct {
	signature string
	name      string
}

// decide asks the engine for a decision, records it in the security log and
// writes the error response on a denial. It reports whether the handler may
// go on.
func (s *Server) decide(
	w http.ResponseWriter,
	r *http.Request,
	logger logx.Logger,
	actor taskboard.Actor,
	event audit,
	req policy.Request,
) (policy.Decision, bool) {
	ctx := r.Context()

	d, err := s.engine.Decide(ctx, actor, req)
	if err != nil {
		logger.Error(failedToDecide, err)
		s.writeError(w, logger, err)
		return d, false
	}

	s.logDecision(ctx, event, actor, req, d)

	if !d.Allowed {
		logger.Debug("denied", logx.Data{Key: "reason", Value: d.Reason})
		s.writeError(w, logger, d.Err())
		return d, false
	}

	return d, true
}

func (s *Server) logDecision(ctx context.Context, event audit, actor taskboard.Actor, req policy.Request, d policy.Decision) {
	outcome := "allow"
	if !d.Allowed {
		outcome = "deny"
	}

	extensions := []logx.SecurityData{
		{Key: "actorID", Value: strconv.FormatInt(actor.ID, 10)},
		{Key: "role", Value: string(actor.Role)},
		{Key: "outcome", Value: outcome},
	}
	if d.Reason != policy.ReasonNone {
		extensions = append(extensions, logx.SecurityData{Key: "reason", Value: string(d.Reason)})
	}
	if id, ok := resourceID(req); ok {
		extensions = append(extensions, logx.SecurityData{Key: "resourceID", Value: strconv.FormatInt(id, 10)})
	}

	s.securityLogger.Log(ctx, event.signature, event.name, extensions...)
}

func resourceID(req policy.Request) (int64, bool) {
	switch {
	case req.Project != nil:
		return req.Project.ID, true
	case req.Task != nil:
		return req.Task.ID, true
	case req.User != nil:
		return req.User.ID, true
	default:
		return 0, false
	}
}
