package api

import (
	"errors"
	"net/http"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

const taskStatusMessage = "must be one of Pending, InProgress or Complete"

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "list-tasks")
	logger.Debug(starting)
	defer logger.Debug(finished)

	d, ok := s.decide(w, r, logger, actor, audit{"ListTasks", "Task listing"}, policy.Request{
		Operation: policy.OperationList,
		Resource:  policy.ResourceTask,
	})
	if !ok {
		return
	}

	tasks, err := s.store.ListTasks(r.Context(), logger, repos.ListTasksQuery{Filter: *d.Filter})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, tasks)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "get-task")

	task, ok := s.loadTask(w, r, logger)
	if !ok {
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"GetTask", "Task read"}, policy.Request{
		Operation: policy.OperationRead,
		Resource:  policy.ResourceTask,
		Task:      policy.TaskRefOf(task),
	}); !ok {
		return
	}

	writeJSON(w, logger, http.StatusOK, task)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "create-task")
	logger.Debug(starting)
	defer logger.Debug(finished)

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	// A task cannot be placed without these, whoever asks.
	if err = b.required("title", "projectId", "assignedToId"); err != nil {
		s.writeError(w, logger, err)
		return
	}

	projectID, err := b.id("projectId")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	assignedToID, err := b.id("assignedToId")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	if _, ok := s.decide(w, r, logger, actor, audit{"CreateTask", "Task creation"}, policy.Request{
		Operation: policy.OperationCreate,
		Resource:  policy.ResourceTask,
		Payload: policy.Payload{
			Fields:       b.fields(),
			ProjectID:    projectID,
			AssignedToID: assignedToID,
		},
	}); !ok {
		return
	}

	query, err := taskCreation(b)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	query.ProjectID = *projectID
	query.AssignedToID = *assignedToID

	task, err := s.store.CreateTask(r.Context(), logger, query)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	logger.Info(success, logx.Data{Key: "task.id", Value: task.ID})
	writeJSON(w, logger, http.StatusCreated, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "update-task")
	logger.Debug(starting)
	defer logger.Debug(finished)

	task, ok := s.loadTask(w, r, logger)
	if !ok {
		return
	}

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	projectID, err := b.id("projectId")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	assignedToID, err := b.id("assignedToId")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"UpdateTask", "Task update"}, policy.Request{
		Operation: policy.OperationUpdate,
		Resource:  policy.ResourceTask,
		Task:      policy.TaskRefOf(task),
		Payload: policy.Payload{
			Fields:       b.fields(),
			ProjectID:    projectID,
			AssignedToID: assignedToID,
		},
	}); !ok {
		return
	}

	changes, err := taskChanges(b)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	changes.ProjectID = projectID
	changes.AssignedToID = assignedToID

	updated, err := s.store.UpdateTask(r.Context(), logger, repos.UpdateTaskQuery{
		TaskID:  task.ID,
		Changes: changes,
	})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, updated)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "delete-task")
	logger.Debug(starting)
	defer logger.Debug(finished)

	task, ok := s.loadTask(w, r, logger)
	if !ok {
		return
	}

	if _, ok = s.decide(w, r, logger, actor, audit{"DeleteTask", "Task deletion"}, policy.Request{
		Operation: policy.OperationDelete,
		Resource:  policy.ResourceTask,
		Task:      policy.TaskRefOf(task),
	}); !ok {
		return
	}

	if err := s.store.DeleteTask(r.Context(), logger, repos.DeleteTaskQuery{TaskID: task.ID}); err != nil {
		s.writeError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadTask(w http.ResponseWriter, r *http.Request, logger logx.Logger) (*taskboard.Task, bool) {
	id, err := pathID(r, "task")
	if err != nil {
		s.writeError(w, logger, err)
		return nil, false
	}

	task, err := s.store.FindTask(r.Context(), logger, repos.FindTaskQuery{TaskID: id})
	if errors.Is(err, taskboard.ErrTaskNotFound) {
		return nil, true
	}
	if err != nil {
		s.writeError(w, logger, err)
		return nil, false
	}

	return task, true
}

func taskCreation(b body) (repos.CreateTaskQuery, error) {
	query := repos.CreateTaskQuery{Status: taskboard.TaskStatusPending}

	if err := b.notNull("status"); err != nil {
		return query, err
	}

	title, err := b.string("title")
	if err != nil {
		return query, err
	}
	if err = validateLength("title", *title, taskboard.MaxTitleLength); err != nil {
		return query, err
	}
	query.Title = *title

	description, err := b.string("description")
	if err != nil {
		return query, err
	}
	if description != nil {
		query.Description = *description
	}

	status, err := b.string("status")
	if err != nil {
		return query, err
	}
	if status != nil {
		query.Status = taskboard.TaskStatus(*status)
		if !query.Status.Valid() {
			return query, taskboard.NewErrInvalid("status", taskStatusMessage)
		}
	}

	if query.DueDate, err = b.time("dueDate"); err != nil {
		return query, err
	}

	return query, nil
}

func taskChanges(b body) (repos.TaskChanges, error) {
	var (
		c   repos.TaskChanges
		err error
	)

	if err = b.notNull("title", "description", "status", "projectId", "assignedToId"); err != nil {
		return c, err
	}

	if c.Title, err = b.string("title"); err != nil {
		return c, err
	}
	if c.Title != nil {
		if err = validateLength("title", *c.Title, taskboard.MaxTitleLength); err != nil {
			return c, err
		}
	}

	if c.Description, err = b.string("description"); err != nil {
		return c, err
	}

	status, err := b.string("status")
	if err != nil {
		return c, err
	}
	if status != nil {
		st := taskboard.TaskStatus(*status)
		if !st.Valid() {
			return c, taskboard.NewErrInvalid("status", taskStatusMessage)
		}
		c.Status = &st
	}

	if c.DueDate, err = b.time("dueDate"); err != nil {
		return c, err
	}
	c.ClearDueDate = b.null("dueDate")

	return c, nil
}
