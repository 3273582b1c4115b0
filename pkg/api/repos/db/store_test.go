package db_test

import (
	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api/repos"
	. "github.com/taskboard/taskboard/pkg/api/repos/db"
	"github.com/taskboard/taskboard/pkg/api/repos/reposbehaviors"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	subjectCreator := func() repos.Store {
		return NewStore(conn, clock.NewClock())
	}

	AfterEach(func() {
		Expect(testDB.Truncate(
			"DELETE FROM tasks",
			"DELETE FROM projects",
			"DELETE FROM users",
		)).To(Succeed())
	})

	Describe("as a user repo", func() {
		reposbehaviors.BehavesLikeAUserRepo(func() repos.UserRepo { return subjectCreator() })
	})

	Describe("as a project repo", func() {
		reposbehaviors.BehavesLikeAProjectRepo(subjectCreator)
	})

	Describe("as a task repo", func() {
		reposbehaviors.BehavesLikeATaskRepo(subjectCreator)
	})

	Describe("as a policy lookup", func() {
		reposbehaviors.BehavesLikeAPolicyLookup(subjectCreator)
	})
})
