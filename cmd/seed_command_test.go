package cmd_test

import (
	"context"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/clock"
	. "github.com/taskboard/taskboard/cmd"
	"github.com/taskboard/taskboard/cmd/flags"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/sqlx"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const fixtures = `
users:
  - key: admin
    email: admin@example.com
    password: administrator
  - key: pm
    email: pm@example.com
    password: manager
    role: ProjectManager
projects:
  - key: roadmap
    name: Roadmap
    manager: pm
tasks:
  - project: roadmap
    assignee: pm
    title: Draft the roadmap
`

var _ = Describe("taskboard seed", func() {
	var (
		dir  string
		file string
		db   flags.DBFlag
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "taskboard-seed")
		Expect(err).NotTo(HaveOccurred())

		file = filepath.Join(dir, "fixtures.yml")
		Expect(os.WriteFile(file, []byte(fixtures), 0600)).To(Succeed())

		db = flags.DBFlag{
			Driver: sqlx.DBDriverSQLite,
			Schema: filepath.Join(dir, "taskboard.db"),
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("requires the schema to be migrated", func() {
		Expect(SeedCommand{Logger: quiet, DB: db, File: file}.Execute(nil)).NotTo(Succeed())
	})

	It("fails on a missing file", func() {
		err := SeedCommand{Logger: quiet, DB: db, File: filepath.Join(dir, "missing.yml")}.Execute(nil)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("writes the fixtures to the database", func() {
		Expect(UpCommand{Logger: quiet, DB: db}.Execute(nil)).To(Succeed())
		Expect(SeedCommand{Logger: quiet, DB: db, File: file}.Execute(nil)).To(Succeed())

		ctx := context.Background()
		logger := logx.Discard()

		store, conn, err := db.Store(ctx, logger, clock.NewClock())
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		admin, err := store.FindUser(ctx, logger, repos.FindUserQuery{Email: "admin@example.com"})
		Expect(err).NotTo(HaveOccurred())
		Expect(admin.Role).To(Equal(taskboard.RoleAdmin))

		pm, err := store.FindUser(ctx, logger, repos.FindUserQuery{Email: "pm@example.com"})
		Expect(err).NotTo(HaveOccurred())
		Expect(pm.Role).To(Equal(taskboard.RoleProjectManager))

		projects, err := store.ListProjects(ctx, logger, repos.ListProjectsQuery{Filter: policy.AllPredicate(policy.ResourceProject)})
		Expect(err).NotTo(HaveOccurred())
		Expect(projects).To(HaveLen(1))
		Expect(*projects[0].ManagerID).To(Equal(pm.ID))

		tasks, err := store.ListTasks(ctx, logger, repos.ListTasksQuery{Filter: policy.AllPredicate(policy.ResourceTask)})
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks).To(HaveLen(1))
		Expect(tasks[0].AssignedToID).To(Equal(pm.ID))
	})
})
