package reposbehaviors

import (
	"context"
	"fmt"
	"sync"
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

func BehavesLikeAUserRepo(subjectCreator func() repos.UserRepo) {
	var (
		subject repos.UserRepo

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 5*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("taskboard-test"))
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#RegisterUser", func() {
		It("makes the first account an admin and later ones employees", func() {
			first := registerUser(ctx, logger, subject)
			second := registerUser(ctx, logger, subject)

			Expect(first.Role).To(Equal(taskboard.RoleAdmin))
			Expect(second.Role).To(Equal(taskboard.RoleEmployee))
			Expect(second.ID).NotTo(Equal(first.ID))
			Expect(first.CreatedAt).NotTo(BeZero())
		})

		It("fails if the email is taken", func() {
			user := registerUser(ctx, logger, subject)

			_, err := subject.RegisterUser(ctx, logger, repos.RegisterUserQuery{
				Email:        user.Email,
				PasswordHash: "other",
			})
			Expect(err).To(Equal(taskboard.ErrUserAlreadyExists))
		})

		It("grants the admin role exactly once under concurrent registration", func() {
			var (
				wg    sync.WaitGroup
				mu    sync.Mutex
				roles []taskboard.Role
			)

			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()

					user, err := subject.RegisterUser(ctx, logger, repos.RegisterUserQuery{
						Email:        fmt.Sprintf("racer-%d@example.com", i),
						PasswordHash: "hash",
					})
					if err != nil {
						return
					}

					mu.Lock()
					roles = append(roles, user.Role)
					mu.Unlock()
				}(i)
			}
			wg.Wait()

			Expect(roles).NotTo(BeEmpty())

			admins := 0
			for _, r := range roles {
				if r == taskboard.RoleAdmin {
					admins++
				}
			}
			Expect(admins).To(Equal(1))
		})
	})

	Describe("#FindUser", func() {
		It("finds by id and by email", func() {
			user := registerUser(ctx, logger, subject)

			byID, err := subject.FindUser(ctx, logger, repos.FindUserQuery{UserID: user.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(byID.Email).To(Equal(user.Email))
			Expect(byID.PasswordHash).To(Equal("hash"))

			byEmail, err := subject.FindUser(ctx, logger, repos.FindUserQuery{Email: user.Email})
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmail.ID).To(Equal(user.ID))
		})

		It("fails if the user does not exist", func() {
			user, err := subject.FindUser(ctx, logger, repos.FindUserQuery{UserID: 424242})
			Expect(user).To(BeNil())
			Expect(err).To(Equal(taskboard.ErrUserNotFound))

			_, err = subject.FindUser(ctx, logger, repos.FindUserQuery{Email: "nobody@example.com"})
			Expect(err).To(Equal(taskboard.ErrUserNotFound))

			_, err = subject.FindUser(ctx, logger, repos.FindUserQuery{})
			Expect(err).To(Equal(taskboard.ErrUserNotFound))
		})
	})

	Describe("#ListUsers", func() {
		It("applies the visibility predicate", func() {
			admin := registerUser(ctx, logger, subject)
			employee := registerUser(ctx, logger, subject)

			all, err := subject.ListUsers(ctx, logger, repos.ListUsersQuery{Filter: policy.AllPredicate(policy.ResourceUser)})
			Expect(err).NotTo(HaveOccurred())
			Expect(userIDs(all)).To(Equal([]int64{admin.ID, employee.ID}))

			self, err := subject.ListUsers(ctx, logger, repos.ListUsersQuery{
				Filter: policy.Predicate{Resource: policy.ResourceUser, Scope: policy.ScopeSelf, ActorID: employee.ID},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(userIDs(self)).To(Equal([]int64{employee.ID}))

			none, err := subject.ListUsers(ctx, logger, repos.ListUsersQuery{Filter: policy.Predicate{Resource: policy.ResourceUser}})
			Expect(err).NotTo(HaveOccurred())
			Expect(none).To(BeEmpty())
			Expect(none).NotTo(BeNil())
		})
	})

	Describe("#CountUsers", func() {
		It("counts registered users", func() {
			count, err := subject.CountUsers(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			registerUser(ctx, logger, subject)
			registerUser(ctx, logger, subject)

			count, err = subject.CountUsers(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})
	})

	Describe("#UpdateUserRole", func() {
		It("changes the role", func() {
			registerUser(ctx, logger, subject)
			user := registerUser(ctx, logger, subject)

			updated, err := subject.UpdateUserRole(ctx, logger, repos.UpdateUserRoleQuery{UserID: user.ID, Role: taskboard.RoleProjectManager})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(taskboard.RoleProjectManager))

			found, err := subject.FindUser(ctx, logger, repos.FindUserQuery{UserID: user.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Role).To(Equal(taskboard.RoleProjectManager))
		})

		It("fails if the user does not exist", func() {
			_, err := subject.UpdateUserRole(ctx, logger, repos.UpdateUserRoleQuery{UserID: 424242, Role: taskboard.RoleAdmin})
			Expect(err).To(Equal(taskboard.ErrUserNotFound))
		})
	})
}
