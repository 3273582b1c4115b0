package seed_test

import (
	"strings"
	"time"

	. "github.com/taskboard/taskboard/pkg/seed"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const validFixtures = `
users:
  - key: grace
    firstName: Grace
    lastName: Hopper
    email: Grace@Example.com
    password: compiler
  - key: ada
    firstName: Ada
    lastName: Lovelace
    email: ada@example.com
    password: engine1843
    role: ProjectManager
  - key: alan
    email: alan@example.com
    password: enigma42
projects:
  - key: launch
    name: Launch
    description: Ship the first release
    status: active
    manager: ada
    startDate: 2026-01-05
    endDate: 2026-03-31
  - key: backlog
    name: Backlog
tasks:
  - project: launch
    assignee: alan
    title: Write the announcement
    status: InProgress
    dueDate: 2026-02-01
  - project: backlog
    assignee: ada
    title: Triage
`

var _ = Describe("Load", func() {
	It("decodes users, projects and tasks", func() {
		f, err := Load(strings.NewReader(validFixtures))
		Expect(err).NotTo(HaveOccurred())

		Expect(f.Users).To(HaveLen(3))
		Expect(f.Users[1].Role).To(Equal(taskboard.RoleProjectManager))

		Expect(f.Projects).To(HaveLen(2))
		launch := f.Projects[0]
		Expect(*launch.Description).To(Equal("Ship the first release"))
		Expect(launch.Status).To(Equal(taskboard.ProjectStatusActive))
		Expect(launch.StartDate.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))).To(BeTrue())
		Expect(f.Projects[1].Description).To(BeNil())

		Expect(f.Tasks).To(HaveLen(2))
		Expect(f.Tasks[0].Status).To(Equal(taskboard.TaskStatusInProgress))
		Expect(f.Tasks[1].DueDate).To(BeNil())
	})

	It("rejects an empty document", func() {
		_, err := Load(strings.NewReader(""))
		Expect(err).To(MatchError(ErrEmptyFixtures))
	})

	It("rejects unknown keys", func() {
		_, err := Load(strings.NewReader("users:\n  - key: a\n    email: a@example.com\n    password: secret\n    admin: true\n"))
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("rejecting inconsistent fixtures",
		func(doc string, message string) {
			_, err := Load(strings.NewReader(doc))
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("missing user key",
			"users:\n  - email: a@example.com\n    password: secret\n",
			"missing key"),
		Entry("duplicate user key",
			"users:\n  - {key: a, email: a@example.com, password: secret}\n  - {key: a, email: b@example.com, password: secret}\n",
			`duplicate key "a"`),
		Entry("user without password",
			"users:\n  - {key: a, email: a@example.com}\n",
			"email and password are required"),
		Entry("unknown role",
			"users:\n  - {key: a, email: a@example.com, password: secret, role: Owner}\n",
			`unknown role "Owner"`),
		Entry("unknown manager",
			"users:\n  - {key: a, email: a@example.com, password: secret}\nprojects:\n  - {key: p, name: P, manager: b}\n",
			`unknown manager "b"`),
		Entry("unknown project status",
			"users:\n  - {key: a, email: a@example.com, password: secret}\nprojects:\n  - {key: p, name: P, status: paused}\n",
			`unknown status "paused"`),
		Entry("task in an unknown project",
			"users:\n  - {key: a, email: a@example.com, password: secret}\ntasks:\n  - {project: p, assignee: a, title: T}\n",
			`unknown project "p"`),
		Entry("task for an unknown assignee",
			"users:\n  - {key: a, email: a@example.com, password: secret}\nprojects:\n  - {key: p, name: P}\ntasks:\n  - {project: p, assignee: b, title: T}\n",
			`unknown assignee "b"`),
	)
})
