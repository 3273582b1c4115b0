package api

import (
	"errors"
	"net/http"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "list-users")

	d, ok := s.decide(w, r, logger, actor, audit{"ListUsers", "User listing"}, policy.Request{
		Operation: policy.OperationList,
		Resource:  policy.ResourceUser,
	})
	if !ok {
		return
	}

	users, err := s.store.ListUsers(r.Context(), logger, repos.ListUsersQuery{Filter: *d.Filter})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "get-user")

	user, ok := s.loadUser(w, r, logger)
	if !ok {
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"GetUser", "User read"}, policy.Request{
		Operation: policy.OperationRead,
		Resource:  policy.ResourceUser,
		User:      policy.UserRefOf(user),
	}); !ok {
		return
	}

	writeJSON(w, logger, http.StatusOK, user)
}

func (s *Server) updateUserRole(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "update-user-role")
	logger.Debug(starting)
	defer logger.Debug(finished)

	user, ok := s.loadUser(w, r, logger)
	if !ok {
		return
	}

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"UpdateUserRole", "User role change"}, policy.Request{
		Operation: policy.OperationUpdate,
		Resource:  policy.ResourceUser,
		User:      policy.UserRefOf(user),
		Payload:   policy.Payload{Fields: b.fields()},
	}); !ok {
		return
	}

	if err = b.required("role"); err != nil {
		s.writeError(w, logger, err)
		return
	}
	name, err := b.string("role")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	role, err := taskboard.ParseRole(*name)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	updated, err := s.store.UpdateUserRole(r.Context(), logger, repos.UpdateUserRoleQuery{
		UserID: user.ID,
		Role:   role,
	})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	logger.Info(success,
		logx.Data{Key: "user.id", Value: updated.ID},
		logx.Data{Key: "user.role", Value: updated.Role},
	)
	writeJSON(w, logger, http.StatusOK, updated)
}

func (s *Server) loadUser(w http.ResponseWriter, r *http.Request, logger logx.Logger) (*taskboard.User, bool) {
	id, err := pathID(r, "user")
	if err != nil {
		s.writeError(w, logger, err)
		return nil, false
	}

	user, err := s.store.FindUser(r.Context(), logger, repos.FindUserQuery{UserID: id})
	if errors.Is(err, taskboard.ErrUserNotFound) {
		return nil, true
	}
	if err != nil {
		s.writeError(w, logger, err)
		return nil, false
	}

	return user, true
}
