package taskboard_test

import (
	. "github.com/taskboard/taskboard/pkg/taskboard"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Role", func() {
	Describe("ParseRole", func() {
		It("accepts the exact wire names", func() {
			for _, name := range []string{"Admin", "ProjectManager", "Employee"} {
				r, err := ParseRole(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(r)).To(Equal(name))
			}
		})

		It("rejects anything else", func() {
			for _, name := range []string{"admin", "Manager", "", "Intern"} {
				_, err := ParseRole(name)
				Expect(err).To(BeAssignableToTypeOf(ErrInvalid{}))
			}
		})
	})

	It("ranks admins above managers above employees", func() {
		Expect(RoleAdmin.Rank()).To(BeNumerically(">", RoleProjectManager.Rank()))
		Expect(RoleProjectManager.Rank()).To(BeNumerically(">", RoleEmployee.Rank()))
		Expect(Role("Intern").Valid()).To(BeFalse())
	})

	Describe("InitialRole", func() {
		It("makes the first account an admin and every later one an employee", func() {
			Expect(InitialRole(0)).To(Equal(RoleAdmin))
			Expect(InitialRole(1)).To(Equal(RoleEmployee))
			Expect(InitialRole(250)).To(Equal(RoleEmployee))
		})
	})
})
