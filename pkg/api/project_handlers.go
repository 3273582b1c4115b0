package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

const projectStatusMessage = "must be one of planning, active or completed"

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "list-projects")
	logger.Debug(starting)
	defer logger.Debug(finished)

	d, ok := s.decide(w, r, logger, actor, audit{"ListProjects", "Project listing"}, policy.Request{
		Operation: policy.OperationList,
		Resource:  policy.ResourceProject,
	})
	if !ok {
		return
	}

	projects, err := s.store.ListProjects(r.Context(), logger, repos.ListProjectsQuery{Filter: *d.Filter})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, projects)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "get-project")

	project, ok := s.loadProject(w, r, logger)
	if !ok {
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"GetProject", "Project read"}, policy.Request{
		Operation: policy.OperationRead,
		Resource:  policy.ResourceProject,
		Project:   policy.ProjectRefOf(project),
	}); !ok {
		return
	}

	writeJSON(w, logger, http.StatusOK, project)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "create-project")
	logger.Debug(starting)
	defer logger.Debug(finished)

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	managerID, err := b.id("managerId")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	if _, ok := s.decide(w, r, logger, actor, audit{"CreateProject", "Project creation"}, policy.Request{
		Operation: policy.OperationCreate,
		Resource:  policy.ResourceProject,
		Payload:   policy.Payload{Fields: b.fields(), ManagerID: managerID},
	}); !ok {
		return
	}

	query, err := projectCreation(b, s.clock.Now())
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	// A manager creating a project without naming one manages it.
	query.ManagerID = managerID
	if !b.has("managerId") && actor.Role == taskboard.RoleProjectManager {
		query.ManagerID = &actor.ID
	}

	project, err := s.store.CreateProject(r.Context(), logger, query)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	logger.Info(success, logx.Data{Key: "project.id", Value: project.ID})
	writeJSON(w, logger, http.StatusCreated, project)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "update-project")
	logger.Debug(starting)
	defer logger.Debug(finished)

	project, ok := s.loadProject(w, r, logger)
	if !ok {
		return
	}

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	managerID, err := b.id("managerId")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"UpdateProject", "Project update"}, policy.Request{
		Operation: policy.OperationUpdate,
		Resource:  policy.ResourceProject,
		Project:   policy.ProjectRefOf(project),
		Payload:   policy.Payload{Fields: b.fields(), ManagerID: managerID},
	}); !ok {
		return
	}

	changes, err := projectChanges(b, project)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	changes.ManagerID = managerID

	updated, err := s.store.UpdateProject(r.Context(), logger, repos.UpdateProjectQuery{
		ProjectID: project.ID,
		Changes:   changes,
	})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, updated)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "delete-project")
	logger.Debug(starting)
	defer logger.Debug(finished)

	project, ok := s.loadProject(w, r, logger)
	if !ok {
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"DeleteProject", "Project deletion"}, policy.Request{
		Operation: policy.OperationDelete,
		Resource:  policy.ResourceProject,
		Project:   policy.ProjectRefOf(project),
	}); !ok {
		return
	}

	if err := s.store.DeleteProject(r.Context(), logger, repos.DeleteProjectQuery{ProjectID: project.ID}); err != nil {
		s.writeError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadProject finds the project named in the path. A missing project is
// returned as nil so the policy reports it; only lookup failures end the
// request here.
func (s *Server) loadProject(w http.ResponseWriter, r *http.Request, logger logx.Logger) (*taskboard.Project, bool) {
	id, err := pathID(r, "project")
	if err != nil {
		s.writeError(w, logger, err)
		return nil, false
	}

	project, err := s.store.FindProject(r.Context(), logger, repos.FindProjectQuery{ProjectID: id})
	if errors.Is(err, taskboard.ErrProjectNotFound) {
		return nil, true
	}
	if err != nil {
		s.writeError(w, logger, err)
		return nil, false
	}

	return project, true
}

func projectCreation(b body, now time.Time) (repos.CreateProjectQuery, error) {
	query := repos.CreateProjectQuery{
		Status:    taskboard.ProjectStatusPlanning,
		StartDate: now.UTC(),
	}

	if err := b.required("name"); err != nil {
		return query, err
	}
	if err := b.notNull("status", "startDate"); err != nil {
		return query, err
	}

	name, err := b.string("name")
	if err != nil {
		return query, err
	}
	if err = validateLength("name", *name, taskboard.MaxNameLength); err != nil {
		return query, err
	}
	query.Name = *name

	if query.Description, err = b.string("description"); err != nil {
		return query, err
	}

	status, err := b.string("status")
	if err != nil {
		return query, err
	}
	if status != nil {
		query.Status = taskboard.ProjectStatus(*status)
		if !query.Status.Valid() {
			return query, taskboard.NewErrInvalid("status", projectStatusMessage)
		}
	}

	start, err := b.time("startDate")
	if err != nil {
		return query, err
	}
	if start != nil {
		query.StartDate = *start
	}

	if query.EndDate, err = b.time("endDate"); err != nil {
		return query, err
	}
	if query.EndDate != nil && query.EndDate.Before(query.StartDate) {
		return query, taskboard.NewErrInvalid("endDate", "must not be before startDate")
	}

	return query, nil
}

func projectChanges(b body, current *taskboard.Project) (repos.ProjectChanges, error) {
	var (
		c   repos.ProjectChanges
		err error
	)

	if err = b.notNull("name", "status", "startDate"); err != nil {
		return c, err
	}

	if c.Name, err = b.string("name"); err != nil {
		return c, err
	}
	if c.Name != nil {
		if err = validateLength("name", *c.Name, taskboard.MaxNameLength); err != nil {
			return c, err
		}
	}

	if c.Description, err = b.string("description"); err != nil {
		return c, err
	}
	c.ClearDescription = b.null("description")

	status, err := b.string("status")
	if err != nil {
		return c, err
	}
	if status != nil {
		st := taskboard.ProjectStatus(*status)
		if !st.Valid() {
			return c, taskboard.NewErrInvalid("status", projectStatusMessage)
		}
		c.Status = &st
	}

	c.ClearManager = b.null("managerId")

	if c.StartDate, err = b.time("startDate"); err != nil {
		return c, err
	}
	if c.EndDate, err = b.time("endDate"); err != nil {
		return c, err
	}
	c.ClearEndDate = b.null("endDate")

	start := current.StartDate
	if c.StartDate != nil {
		start = *c.StartDate
	}
	end := current.EndDate
	if c.EndDate != nil {
		end = c.EndDate
	}
	if !c.ClearEndDate && end != nil && end.Before(start) {
		return c, taskboard.NewErrInvalid("endDate", "must not be before startDate")
	}

	return c, nil
}
