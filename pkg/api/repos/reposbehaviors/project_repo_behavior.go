package reposbehaviors

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/logx/lagerx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func BehavesLikeAProjectRepo(subjectCreator func() repos.Store) {
	var (
		subject repos.Store

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc

		manager *taskboard.User
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 5*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("taskboard-test"))

		manager = registerUser(ctx, logger, subject)
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#CreateProject", func() {
		It("saves the project", func() {
			end := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
			project, err := subject.CreateProject(ctx, logger, repos.CreateProjectQuery{
				Name:        "apollo",
				Description: ptr("to the moon"),
				Status:      taskboard.ProjectStatusActive,
				ManagerID:   &manager.ID,
				StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     &end,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(project.ID).NotTo(BeZero())

			found, err := subject.FindProject(ctx, logger, repos.FindProjectQuery{ProjectID: project.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("apollo"))
			Expect(*found.Description).To(Equal("to the moon"))
			Expect(found.Status).To(Equal(taskboard.ProjectStatusActive))
			Expect(*found.ManagerID).To(Equal(manager.ID))
			Expect(found.StartDate).To(BeTemporally("==", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(*found.EndDate).To(BeTemporally("==", end))
		})

		It("allows projects without a manager", func() {
			project := createProject(ctx, logger, subject, nil)
			Expect(project.ManagerID).To(BeNil())

			found, err := subject.FindProject(ctx, logger, repos.FindProjectQuery{ProjectID: project.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ManagerID).To(BeNil())
			Expect(found.Description).To(BeNil())
			Expect(found.EndDate).To(BeNil())
		})

		It("fails if the name is taken", func() {
			project := createProject(ctx, logger, subject, nil)

			_, err := subject.CreateProject(ctx, logger, repos.CreateProjectQuery{
				Name:      project.Name,
				Status:    taskboard.ProjectStatusPlanning,
				StartDate: time.Now(),
			})
			Expect(err).To(Equal(taskboard.ErrProjectAlreadyExists))
		})

		It("fails if the manager does not exist", func() {
			_, err := subject.CreateProject(ctx, logger, repos.CreateProjectQuery{
				Name:      "orphan",
				Status:    taskboard.ProjectStatusPlanning,
				ManagerID: ptr(int64(424242)),
				StartDate: time.Now(),
			})
			Expect(err).To(BeAssignableToTypeOf(taskboard.ErrReferenceNotFound{}))
		})
	})

	Describe("#FindProject", func() {
		It("fails if the project does not exist", func() {
			project, err := subject.FindProject(ctx, logger, repos.FindProjectQuery{ProjectID: 424242})
			Expect(project).To(BeNil())
			Expect(err).To(Equal(taskboard.ErrProjectNotFound))
		})
	})

	Describe("#ListProjects", func() {
		It("applies the visibility predicate", func() {
			other := registerUser(ctx, logger, subject)
			mine := createProject(ctx, logger, subject, &manager.ID)
			theirs := createProject(ctx, logger, subject, &other.ID)
			unassigned := createProject(ctx, logger, subject, nil)

			all, err := subject.ListProjects(ctx, logger, repos.ListProjectsQuery{Filter: policy.AllPredicate(policy.ResourceProject)})
			Expect(err).NotTo(HaveOccurred())
			Expect(projectIDs(all)).To(Equal([]int64{mine.ID, theirs.ID, unassigned.ID}))

			managed, err := subject.ListProjects(ctx, logger, repos.ListProjectsQuery{
				Filter: policy.Predicate{Resource: policy.ResourceProject, Scope: policy.ScopeManagedBy, ActorID: manager.ID},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(projectIDs(managed)).To(Equal([]int64{mine.ID}))

			wrongResource, err := subject.ListProjects(ctx, logger, repos.ListProjectsQuery{Filter: policy.AllPredicate(policy.ResourceTask)})
			Expect(err).NotTo(HaveOccurred())
			Expect(wrongResource).To(BeEmpty())
		})
	})

	Describe("#UpdateProject", func() {
		It("changes only the given fields", func() {
			project := createProject(ctx, logger, subject, &manager.ID)
			status := taskboard.ProjectStatusCompleted

			updated, err := subject.UpdateProject(ctx, logger, repos.UpdateProjectQuery{
				ProjectID: project.ID,
				Changes: repos.ProjectChanges{
					Status:      &status,
					Description: ptr("done"),
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(taskboard.ProjectStatusCompleted))
			Expect(*updated.Description).To(Equal("done"))
			Expect(updated.Name).To(Equal(project.Name))
			Expect(*updated.ManagerID).To(Equal(manager.ID))
		})

		It("clears the manager", func() {
			project := createProject(ctx, logger, subject, &manager.ID)

			updated, err := subject.UpdateProject(ctx, logger, repos.UpdateProjectQuery{
				ProjectID: project.ID,
				Changes:   repos.ProjectChanges{ClearManager: true},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ManagerID).To(BeNil())
		})

		It("fails on a taken name or a missing project", func() {
			first := createProject(ctx, logger, subject, nil)
			second := createProject(ctx, logger, subject, nil)

			_, err := subject.UpdateProject(ctx, logger, repos.UpdateProjectQuery{
				ProjectID: second.ID,
				Changes:   repos.ProjectChanges{Name: &first.Name},
			})
			Expect(err).To(Equal(taskboard.ErrProjectAlreadyExists))

			_, err = subject.UpdateProject(ctx, logger, repos.UpdateProjectQuery{ProjectID: 424242})
			Expect(err).To(Equal(taskboard.ErrProjectNotFound))
		})
	})

	Describe("#DeleteProject", func() {
		It("removes the project and its tasks", func() {
			project := createProject(ctx, logger, subject, &manager.ID)
			kept := createProject(ctx, logger, subject, &manager.ID)
			task := createTask(ctx, logger, subject, project.ID, manager.ID)
			other := createTask(ctx, logger, subject, kept.ID, manager.ID)

			Expect(subject.DeleteProject(ctx, logger, repos.DeleteProjectQuery{ProjectID: project.ID})).To(Succeed())

			_, err := subject.FindProject(ctx, logger, repos.FindProjectQuery{ProjectID: project.ID})
			Expect(err).To(Equal(taskboard.ErrProjectNotFound))

			_, err = subject.FindTask(ctx, logger, repos.FindTaskQuery{TaskID: task.ID})
			Expect(err).To(Equal(taskboard.ErrTaskNotFound))

			_, err = subject.FindTask(ctx, logger, repos.FindTaskQuery{TaskID: other.ID})
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails if the project does not exist", func() {
			err := subject.DeleteProject(ctx, logger, repos.DeleteProjectQuery{ProjectID: 424242})
			Expect(err).To(Equal(taskboard.ErrProjectNotFound))
		})
	})

	Describe("#ListManagedProjectIDs", func() {
		It("returns the ids of the projects the user manages", func() {
			other := registerUser(ctx, logger, subject)
			first := createProject(ctx, logger, subject, &manager.ID)
			createProject(ctx, logger, subject, &other.ID)
			second := createProject(ctx, logger, subject, &manager.ID)

			ids, err := subject.ListManagedProjectIDs(ctx, logger, repos.ListManagedProjectIDsQuery{ManagerID: manager.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{first.ID, second.ID}))

			ids, err = subject.ListManagedProjectIDs(ctx, logger, repos.ListManagedProjectIDsQuery{ManagerID: 424242})
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})
	})
}
