package inmemory_test

import (
	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api/repos"
	. "github.com/taskboard/taskboard/pkg/api/repos/inmemory"
	"github.com/taskboard/taskboard/pkg/api/repos/reposbehaviors"
	. "github.com/onsi/ginkgo"
)

var _ = Describe("Store", func() {
	subjectCreator := func() repos.Store {
		return NewStore(clock.NewClock())
	}

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
