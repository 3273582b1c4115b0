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

func BehavesLikeAPolicyLookup(subjectCreator func() repos.Store) {
	var (
		store  repos.Store
		lookup policy.Lookup

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc
	)

	BeforeEach(func() {
		store = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 5*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("taskboard-test"))

		lookup = repos.NewPolicyLookup(logger, store, store)
	})

	AfterEach(func() {
		cancelFunc()
	})

	It("projects records to what the policy reads", func() {
		manager := registerUser(ctx, logger, store)
		project := createProject(ctx, logger, store, &manager.ID)

		ref, err := lookup.FindProject(ctx, project.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(ref.ID).To(Equal(project.ID))
		Expect(ref.ManagedBy(manager.ID)).To(BeTrue())

		_, err = lookup.FindProject(ctx, 424242)
		Expect(err).To(Equal(taskboard.ErrProjectNotFound))

		exists, err := lookup.UserExists(ctx, manager.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		exists, err = lookup.UserExists(ctx, 424242)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		ids, err := lookup.ManagedProjectIDs(ctx, manager.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(Equal([]int64{project.ID}))
	})

	It("drives the engine end to end", func() {
		admin := registerUser(ctx, logger, store)
		manager := registerUser(ctx, logger, store)
		employee := registerUser(ctx, logger, store)
		Expect(admin.Role).To(Equal(taskboard.RoleAdmin))

		project := createProject(ctx, logger, store, &manager.ID)
		task := createTask(ctx, logger, store, project.ID, employee.ID)

		engine := policy.NewEngine(lookup)
		managerActor := taskboard.Actor{ID: manager.ID, Role: taskboard.RoleProjectManager}

		d, err := engine.Decide(ctx, managerActor, policy.Request{Operation: policy.OperationList, Resource: policy.ResourceTask})
		Expect(err).NotTo(HaveOccurred())

		tasks, err := store.ListTasks(ctx, logger, repos.ListTasksQuery{Filter: *d.Filter})
		Expect(err).NotTo(HaveOccurred())
		Expect(taskIDs(tasks)).To(Equal([]int64{task.ID}))

		d, err = engine.Decide(ctx, employee.Actor(), policy.Request{
			Operation: policy.OperationUpdate,
			Resource:  policy.ResourceTask,
			Task:      policy.TaskRefOf(task),
			Payload:   policy.Payload{Fields: []string{"status"}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Allowed).To(BeTrue())
	})
}
