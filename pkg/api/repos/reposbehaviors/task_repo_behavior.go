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

func BehavesLikeATaskRepo(subjectCreator func() repos.Store) {
	var (
		subject repos.Store

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc

		manager  *taskboard.User
		employee *taskboard.User
		project  *taskboard.Project
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 5*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("taskboard-test"))

		manager = registerUser(ctx, logger, subject)
		employee = registerUser(ctx, logger, subject)
		project = createProject(ctx, logger, subject, &manager.ID)
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#CreateTask", func() {
		It("saves the task", func() {
			due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
			task, err := subject.CreateTask(ctx, logger, repos.CreateTaskQuery{
				ProjectID:    project.ID,
				AssignedToID: employee.ID,
				Title:        "write the report",
				Description:  "quarterly",
				Status:       taskboard.TaskStatusPending,
				DueDate:      &due,
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := subject.FindTask(ctx, logger, repos.FindTaskQuery{TaskID: task.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ProjectID).To(Equal(project.ID))
			Expect(found.AssignedToID).To(Equal(employee.ID))
			Expect(found.Title).To(Equal("write the report"))
			Expect(found.Description).To(Equal("quarterly"))
			Expect(found.Status).To(Equal(taskboard.TaskStatusPending))
			Expect(*found.DueDate).To(BeTemporally("==", due))
		})

		It("fails if the project or the assignee does not exist", func() {
			_, err := subject.CreateTask(ctx, logger, repos.CreateTaskQuery{
				ProjectID:    424242,
				AssignedToID: employee.ID,
				Title:        "nowhere",
				Status:       taskboard.TaskStatusPending,
			})
			Expect(err).To(BeAssignableToTypeOf(taskboard.ErrReferenceNotFound{}))

			_, err = subject.CreateTask(ctx, logger, repos.CreateTaskQuery{
				ProjectID:    project.ID,
				AssignedToID: 424242,
				Title:        "nobody",
				Status:       taskboard.TaskStatusPending,
			})
			Expect(err).To(BeAssignableToTypeOf(taskboard.ErrReferenceNotFound{}))
		})
	})

	Describe("#FindTask", func() {
		It("fails if the task does not exist", func() {
			task, err := subject.FindTask(ctx, logger, repos.FindTaskQuery{TaskID: 424242})
			Expect(task).To(BeNil())
			Expect(err).To(Equal(taskboard.ErrTaskNotFound))
		})
	})

	Describe("#ListTasks", func() {
		var (
			mine       *taskboard.Task
			assigned   *taskboard.Task
			elsewhere  *taskboard.Task
			otherOwner *taskboard.User
		)

		BeforeEach(func() {
			otherOwner = registerUser(ctx, logger, subject)
			otherProject := createProject(ctx, logger, subject, &otherOwner.ID)

			mine = createTask(ctx, logger, subject, project.ID, manager.ID)
			assigned = createTask(ctx, logger, subject, project.ID, employee.ID)
			elsewhere = createTask(ctx, logger, subject, otherProject.ID, employee.ID)
		})

		It("lists everything for the all predicate", func() {
			tasks, err := subject.ListTasks(ctx, logger, repos.ListTasksQuery{Filter: policy.AllPredicate(policy.ResourceTask)})
			Expect(err).NotTo(HaveOccurred())
			Expect(taskIDs(tasks)).To(Equal([]int64{mine.ID, assigned.ID, elsewhere.ID}))
		})

		It("lists tasks of the given projects", func() {
			tasks, err := subject.ListTasks(ctx, logger, repos.ListTasksQuery{
				Filter: policy.Predicate{Resource: policy.ResourceTask, Scope: policy.ScopeManagedProjects, ActorID: manager.ID, ProjectIDs: []int64{project.ID}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(taskIDs(tasks)).To(Equal([]int64{mine.ID, assigned.ID}))
		})

		It("lists nothing for an empty project set", func() {
			tasks, err := subject.ListTasks(ctx, logger, repos.ListTasksQuery{
				Filter: policy.Predicate{Resource: policy.ResourceTask, Scope: policy.ScopeManagedProjects, ActorID: manager.ID},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(BeEmpty())
		})

		It("lists the tasks assigned to the actor", func() {
			tasks, err := subject.ListTasks(ctx, logger, repos.ListTasksQuery{
				Filter: policy.Predicate{Resource: policy.ResourceTask, Scope: policy.ScopeAssignedTo, ActorID: employee.ID},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(taskIDs(tasks)).To(Equal([]int64{assigned.ID, elsewhere.ID}))
		})
	})

	Describe("#UpdateTask", func() {
		It("changes only the given fields", func() {
			task := createTask(ctx, logger, subject, project.ID, employee.ID)
			status := taskboard.TaskStatusComplete

			updated, err := subject.UpdateTask(ctx, logger, repos.UpdateTaskQuery{
				TaskID: task.ID,
				Changes: repos.TaskChanges{
					Status:      &status,
					Description: ptr("finished early"),
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(taskboard.TaskStatusComplete))
			Expect(updated.Description).To(Equal("finished early"))
			Expect(updated.Title).To(Equal(task.Title))
			Expect(updated.AssignedToID).To(Equal(employee.ID))
		})

		It("reassigns and clears the due date", func() {
			due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			task, err := subject.CreateTask(ctx, logger, repos.CreateTaskQuery{
				ProjectID:    project.ID,
				AssignedToID: employee.ID,
				Title:        "due",
				Status:       taskboard.TaskStatusPending,
				DueDate:      &due,
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := subject.UpdateTask(ctx, logger, repos.UpdateTaskQuery{
				TaskID:  task.ID,
				Changes: repos.TaskChanges{AssignedToID: &manager.ID, ClearDueDate: true},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.AssignedToID).To(Equal(manager.ID))
			Expect(updated.DueDate).To(BeNil())
		})

		It("fails if the task or a new reference does not exist", func() {
			_, err := subject.UpdateTask(ctx, logger, repos.UpdateTaskQuery{TaskID: 424242})
			Expect(err).To(Equal(taskboard.ErrTaskNotFound))

			task := createTask(ctx, logger, subject, project.ID, employee.ID)
			_, err = subject.UpdateTask(ctx, logger, repos.UpdateTaskQuery{
				TaskID:  task.ID,
				Changes: repos.TaskChanges{ProjectID: ptr(int64(424242))},
			})
			Expect(err).To(BeAssignableToTypeOf(taskboard.ErrReferenceNotFound{}))
		})
	})

	Describe("#DeleteTask", func() {
		It("deletes the task", func() {
			task := createTask(ctx, logger, subject, project.ID, employee.ID)

			Expect(subject.DeleteTask(ctx, logger, repos.DeleteTaskQuery{TaskID: task.ID})).To(Succeed())

			_, err := subject.FindTask(ctx, logger, repos.FindTaskQuery{TaskID: task.ID})
			Expect(err).To(Equal(taskboard.ErrTaskNotFound))

			err = subject.DeleteTask(ctx, logger, repos.DeleteTaskQuery{TaskID: task.ID})
			Expect(err).To(Equal(taskboard.ErrTaskNotFound))
		})
	})
}
