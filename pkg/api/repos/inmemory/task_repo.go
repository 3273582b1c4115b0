package inmemory

import (
	"context"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func (s *Store) CreateTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.CreateTaskQuery,
) (*taskboard.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTaskReferences(query.ProjectID, query.AssignedToID); err != nil {
		return nil, err
	}

	now := s.now()
	s.lastTaskID++

	task := taskboard.Task{
		ID:           s.lastTaskID,
		ProjectID:    query.ProjectID,
		AssignedToID: query.AssignedToID,
		Title:        query.Title,
		Description:  query.Description,
		Status:       query.Status,
		DueDate:      copyTime(query.DueDate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.tasks[task.ID] = task

	return &task, nil
}

func (s *Store) FindTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindTaskQuery,
) (*taskboard.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[query.TaskID]
	if !ok {
		return nil, taskboard.ErrTaskNotFound
	}

	return &task, nil
}

func (s *Store) ListTasks(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListTasksQuery,
) ([]*taskboard.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*taskboard.Task, 0)
	for _, id := range sortedIDs(s.tasks) {
		task := s.tasks[id]
		if query.Filter.AcceptTask(*policy.TaskRefOf(&task)) {
			tasks = append(tasks, &task)
		}
	}

	return tasks, nil
}

func (s *Store) UpdateTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.UpdateTaskQuery,
) (*taskboard.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[query.TaskID]
	if !ok {
		return nil, taskboard.ErrTaskNotFound
	}

	c := query.Changes

	if c.ProjectID != nil {
		task.ProjectID = *c.ProjectID
	}
	if c.AssignedToID != nil {
		task.AssignedToID = *c.AssignedToID
	}
	if err := s.checkTaskReferences(task.ProjectID, task.AssignedToID); err != nil {
		return nil, err
	}

	if c.Title != nil {
		task.Title = *c.Title
	}
	if c.Description != nil {
		task.Description = *c.Description
	}
	if c.Status != nil {
		task.Status = *c.Status
	}
	if c.DueDate != nil {
		task.DueDate = copyTime(c.DueDate)
	}
	if c.ClearDueDate {
		task.DueDate = nil
	}

	task.UpdatedAt = s.now()
	s.tasks[task.ID] = task

	return &task, nil
}

func (s *Store) DeleteTask(
	ctx context.Context,
	logger logx.Logger,
	query repos.DeleteTaskQuery,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[query.TaskID]; !ok {
		return taskboard.ErrTaskNotFound
	}

	delete(s.tasks, query.TaskID)

	return nil
}

func (s *Store) checkTaskReferences(projectID, assignedToID int64) error {
	if _, ok := s.projects[projectID]; !ok {
		return taskboard.NewErrReferenceNotFound("project")
	}
	if _, ok := s.users[assignedToID]; !ok {
		return taskboard.NewErrReferenceNotFound("user")
	}

	return nil
}
