package seed

import (
	"context"
	"errors"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/identity"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

// Result maps fixture keys to the ids the store assigned.
type Result struct {
	Users    map[string]int64
	Projects map[string]int64
	Tasks    []int64
}

// Seeder writes fixtures through the same repos the API uses, so
// registration keeps its bootstrap rule: the first user of an empty store
// becomes Admin whatever the fixture says.
type Seeder struct {
	store  repos.Store
	clock  clock.Clock
	logger logx.Logger
}

func NewSeeder(store repos.Store, clk clock.Clock, logger logx.Logger) *Seeder {
	return &Seeder{
		store:  store,
		clock:  clk,
		logger: logger.WithName("seed"),
	}
}

// Seed registers the users, then creates the projects and tasks. A user
// whose email is already registered is reused as is. It stops at the first
// failure; records written before it are kept.
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (*Result, error) {
	s.logger.Info(starting)
	defer s.logger.Info(finished)

	result := &Result{
		Users:    make(map[string]int64, len(f.Users)),
		Projects: make(map[string]int64, len(f.Projects)),
	}

	for _, u := range f.Users {
		id, err := s.seedUser(ctx, u)
		if err != nil {
			s.logger.Error(failedToSeedUser, err, logx.Data{Key: "user.key", Value: u.Key})
			return nil, err
		}
		result.Users[u.Key] = id
	}

	for _, p := range f.Projects {
		query := repos.CreateProjectQuery{
			Name:        p.Name,
			Description: p.Description,
			Status:      p.Status,
			EndDate:     p.EndDate,
			StartDate:   s.clock.Now().UTC(),
		}
		if query.Status == "" {
			query.Status = taskboard.ProjectStatusPlanning
		}
		if p.StartDate != nil {
			query.StartDate = *p.StartDate
		}
		if p.Manager != "" {
			managerID := result.Users[p.Manager]
			query.ManagerID = &managerID
		}

		project, err := s.store.CreateProject(ctx, s.logger, query)
		if err != nil {
			s.logger.Error(failedToSeedProject, err, logx.Data{Key: "project.key", Value: p.Key})
			return nil, err
		}
		s.logger.Debug(seededProject, logx.Data{Key: "project.id", Value: project.ID})
		result.Projects[p.Key] = project.ID
	}

	for i, t := range f.Tasks {
		query := repos.CreateTaskQuery{
			ProjectID:    result.Projects[t.Project],
			AssignedToID: result.Users[t.Assignee],
			Title:        t.Title,
			Description:  t.Description,
			Status:       t.Status,
			DueDate:      t.DueDate,
		}
		if query.Status == "" {
			query.Status = taskboard.TaskStatusPending
		}

		task, err := s.store.CreateTask(ctx, s.logger, query)
		if err != nil {
			s.logger.Error(failedToSeedTask, err, logx.Data{Key: "task.index", Value: i})
			return nil, err
		}
		s.logger.Debug(seededTask, logx.Data{Key: "task.id", Value: task.ID})
		result.Tasks = append(result.Tasks, task.ID)
	}

	return result, nil
}

func (s *Seeder) seedUser(ctx context.Context, u UserFixture) (int64, error) {
	email := taskboard.NormalizeEmail(u.Email)

	existing, err := s.store.FindUser(ctx, s.logger, repos.FindUserQuery{Email: email})
	switch {
	case err == nil:
		s.logger.Info(reusedUser, logx.Data{Key: "user.id", Value: existing.ID})
		return existing.ID, nil
	case !errors.Is(err, taskboard.ErrUserNotFound):
		return 0, err
	}

	hash, err := identity.HashPassword(u.Password)
	if err != nil {
		return 0, err
	}

	user, err := s.store.RegisterUser(ctx, s.logger, repos.RegisterUserQuery{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return 0, err
	}

	if u.Role != "" && u.Role != user.Role && user.Role != taskboard.RoleAdmin {
		user, err = s.store.UpdateUserRole(ctx, s.logger, repos.UpdateUserRoleQuery{UserID: user.ID, Role: u.Role})
		if err != nil {
			return 0, err
		}
	}

	s.logger.Info(seededUser, logx.Data{Key: "user.id", Value: user.ID}, logx.Data{Key: "user.role", Value: string(user.Role)})

	return user.ID, nil
}
