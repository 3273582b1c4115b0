package inmemory

import (
	"context"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func (s *Store) CreateProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.CreateProjectQuery,
) (*taskboard.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectNameTaken(query.Name, 0) {
		return nil, taskboard.ErrProjectAlreadyExists
	}

	if query.ManagerID != nil {
		if _, ok := s.users[*query.ManagerID]; !ok {
			return nil, taskboard.NewErrReferenceNotFound("user")
		}
	}

	now := s.now()
	s.lastProjectID++

	project := taskboard.Project{
		ID:          s.lastProjectID,
		Name:        query.Name,
		Description: copyString(query.Description),
		Status:      query.Status,
		ManagerID:   copyID(query.ManagerID),
		StartDate:   query.StartDate.UTC(),
		EndDate:     copyTime(query.EndDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects[project.ID] = project

	return &project, nil
}

func (s *Store) FindProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindProjectQuery,
) (*taskboard.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[query.ProjectID]
	if !ok {
		return nil, taskboard.ErrProjectNotFound
	}

	return &project, nil
}

func (s *Store) ListProjects(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListProjectsQuery,
) ([]*taskboard.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*taskboard.Project, 0)
	for _, id := range sortedIDs(s.projects) {
		project := s.projects[id]
		if query.Filter.AcceptProject(*policy.ProjectRefOf(&project)) {
			projects = append(projects, &project)
		}
	}

	return projects, nil
}

func (s *Store) UpdateProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.UpdateProjectQuery,
) (*taskboard.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[query.ProjectID]
	if !ok {
		return nil, taskboard.ErrProjectNotFound
	}

	c := query.Changes

	if c.Name != nil {
		if s.projectNameTaken(*c.Name, project.ID) {
			return nil, taskboard.ErrProjectAlreadyExists
		}
		project.Name = *c.Name
	}
	if c.ManagerID != nil {
		if _, ok := s.users[*c.ManagerID]; !ok {
			return nil, taskboard.NewErrReferenceNotFound("user")
		}
		project.ManagerID = copyID(c.ManagerID)
	}
	if c.ClearManager {
		project.ManagerID = nil
	}
	if c.Description != nil {
		project.Description = copyString(c.Description)
	}
	if c.ClearDescription {
		project.Description = nil
	}
	if c.Status != nil {
		project.Status = *c.Status
	}
	if c.StartDate != nil {
		project.StartDate = c.StartDate.UTC()
	}
	if c.EndDate != nil {
		project.EndDate = copyTime(c.EndDate)
	}
	if c.ClearEndDate {
		project.EndDate = nil
	}

	project.UpdatedAt = s.now()
	s.projects[project.ID] = project

	return &project, nil
}

func (s *Store) DeleteProject(
	ctx context.Context,
	logger logx.Logger,
	query repos.DeleteProjectQuery,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[query.ProjectID]; !ok {
		return taskboard.ErrProjectNotFound
	}

	for id, task := range s.tasks {
		if task.ProjectID == query.ProjectID {
			delete(s.tasks, id)
		}
	}
	delete(s.projects, query.ProjectID)

	return nil
}

func (s *Store) ListManagedProjectIDs(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListManagedProjectIDsQuery,
) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0)
	for _, id := range sortedIDs(s.projects) {
		project := s.projects[id]
		if policy.ProjectRefOf(&project).ManagedBy(query.ManagerID) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (s *Store) projectNameTaken(name string, exceptID int64) bool {
	for id, p := range s.projects {
		if id != exceptID && p.Name == name {
			return true
		}
	}

	return false
}
