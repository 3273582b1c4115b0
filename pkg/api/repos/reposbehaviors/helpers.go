package reposbehaviors

import (
	"context"
	"fmt"
	"time"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"
)

func ptr[T any](v T) *T {
	return &v
}

func registerUser(ctx context.Context, logger logx.Logger, store repos.UserRepo) *taskboard.User {
	user, err := store.RegisterUser(ctx, logger, repos.RegisterUserQuery{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        fmt.Sprintf("%s@example.com", uuid.NewV4().String()),
		PasswordHash: "hash",
	})
	Expect(err).NotTo(HaveOccurred())

	return user
}

func createProject(ctx context.Context, logger logx.Logger, store repos.ProjectRepo, managerID *int64) *taskboard.Project {
	project, err := store.CreateProject(ctx, logger, repos.CreateProjectQuery{
		Name:      uuid.NewV4().String(),
		Status:    taskboard.ProjectStatusPlanning,
		ManagerID: managerID,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	Expect(err).NotTo(HaveOccurred())

	return project
}

func createTask(ctx context.Context, logger logx.Logger, store repos.TaskRepo, projectID, assigneeID int64) *taskboard.Task {
	task, err := store.CreateTask(ctx, logger, repos.CreateTaskQuery{
		ProjectID:    projectID,
		AssignedToID: assigneeID,
		Title:        "task-" + uuid.NewV4().String()[:8],
		Status:       taskboard.TaskStatusPending,
	})
	Expect(err).NotTo(HaveOccurred())

	return task
}

func taskIDs(tasks []*taskboard.Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func projectIDs(projects []*taskboard.Project) []int64 {
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func userIDs(users []*taskboard.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
