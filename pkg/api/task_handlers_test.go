package api_test

import (
	"net/http"

	"github.com/taskboard/taskboard/pkg/api/apitest"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tasks", func() {
	var (
		ts *apitest.TestServer

		manager, employee, bystander *taskboard.User

		adminToken, managerToken, empToken, bystanderToken string

		managed, unmanaged taskboard.Project
		tasksURL           string
	)

	project := func(payload map[string]interface{}) taskboard.Project {
		res := call(http.MethodPost, ts.URL()+"/api/projects", adminToken, payload)
		ExpectWithOffset(1, res.status).To(Equal(http.StatusCreated))

		var p taskboard.Project
		res.decode(&p)
		return p
	}

	create := func(token string, payload interface{}) (response, taskboard.Task) {
		res := call(http.MethodPost, tasksURL, token, payload)

		var t taskboard.Task
		if res.status == http.StatusCreated {
			res.decode(&t)
		}

		return res, t
	}

	taskURL := func(id int64) string {
		return tasksURL + "/" + itoa(id)
	}

	BeforeEach(func() {
		ts = apitest.NewTestServer()

		_, adminToken = ts.CreateUser(taskboard.RoleAdmin)
		manager, managerToken = ts.CreateUser(taskboard.RoleProjectManager)
		employee, empToken = ts.CreateUser(taskboard.RoleEmployee)
		bystander, bystanderToken = ts.CreateUser(taskboard.RoleEmployee)

		managed = project(map[string]interface{}{"name": "Managed", "managerId": manager.ID})
		unmanaged = project(map[string]interface{}{"name": "Unmanaged"})

		tasksURL = ts.URL() + "/api/tasks"
	})

	AfterEach(func() {
		ts.Close()
	})

	Describe("creating", func() {
		It("lets a manager add a task to their project", func() {
			res, t := create(managerToken, map[string]interface{}{
				"title":        "Launch",
				"description":  "count down",
				"projectId":    managed.ID,
				"assignedToId": employee.ID,
				"dueDate":      "2030-01-01",
			})

			Expect(res.status).To(Equal(http.StatusCreated))
			Expect(t.Title).To(Equal("Launch"))
			Expect(t.Status).To(Equal(taskboard.TaskStatusPending))
			Expect(t.ProjectID).To(Equal(managed.ID))
			Expect(t.AssignedToID).To(Equal(employee.ID))
			Expect(t.DueDate.Format("2006-01-02")).To(Equal("2030-01-01"))
		})

		It("forbids a manager from adding to another project", func() {
			res, _ := create(managerToken, map[string]interface{}{
				"title":        "Launch",
				"projectId":    unmanaged.ID,
				"assignedToId": employee.ID,
			})

			Expect(res.status).To(Equal(http.StatusForbidden))
			Expect(res.errorBody()["reason"]).To(Equal("owner-mismatch"))
		})

		It("forbids employees", func() {
			res, _ := create(empToken, map[string]interface{}{
				"title":        "Launch",
				"projectId":    managed.ID,
				"assignedToId": employee.ID,
			})

			Expect(res.status).To(Equal(http.StatusForbidden))
			Expect(res.errorBody()["reason"]).To(Equal("role"))
		})

		It("reports a missing project as not found", func() {
			res, _ := create(adminToken, map[string]interface{}{
				"title":        "Launch",
				"projectId":    424242,
				"assignedToId": employee.ID,
			})

			Expect(res.status).To(Equal(http.StatusNotFound))
			Expect(res.errorBody()["message"]).To(Equal("project not found"))
		})

		It("rejects a missing assignee", func() {
			res, _ := create(adminToken, map[string]interface{}{
				"title":        "Launch",
				"projectId":    managed.ID,
				"assignedToId": 424242,
			})

			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["message"]).To(Equal("referenced user not found"))
		})

		DescribeTable("rejecting incomplete tasks from anyone",
			func(payload map[string]interface{}, field string) {
				res, _ := create(empToken, payload)

				Expect(res.status).To(Equal(http.StatusBadRequest))
				Expect(res.errorBody()["field"]).To(Equal(field))
			},
			Entry("missing title", map[string]interface{}{"projectId": 1, "assignedToId": 1}, "title"),
			Entry("missing project", map[string]interface{}{"title": "T", "assignedToId": 1}, "projectId"),
			Entry("null assignee", map[string]interface{}{"title": "T", "projectId": 1, "assignedToId": nil}, "assignedToId"),
			Entry("string project", map[string]interface{}{"title": "T", "projectId": "1", "assignedToId": 1}, "projectId"),
		)

		It("rejects an unknown status once allowed", func() {
			res, _ := create(adminToken, map[string]interface{}{
				"title":        "Launch",
				"projectId":    managed.ID,
				"assignedToId": employee.ID,
				"status":       "Done",
			})

			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["field"]).To(Equal("status"))
		})
	})

	Context("with tasks", func() {
		var assigned, elsewhere taskboard.Task

		BeforeEach(func() {
			_, assigned = create(managerToken, map[string]interface{}{
				"title":        "Assigned",
				"projectId":    managed.ID,
				"assignedToId": employee.ID,
				"dueDate":      "2030-01-01",
			})
			_, elsewhere = create(adminToken, map[string]interface{}{
				"title":        "Elsewhere",
				"projectId":    unmanaged.ID,
				"assignedToId": bystander.ID,
			})
		})

		titles := func(token string) []string {
			res := call(http.MethodGet, tasksURL, token, nil)
			ExpectWithOffset(1, res.status).To(Equal(http.StatusOK))

			var tasks []taskboard.Task
			res.decode(&tasks)

			out := []string{}
			for _, t := range tasks {
				out = append(out, t.Title)
			}
			return out
		}

		Describe("listing", func() {
			It("narrows the list to what each role may see", func() {
				Expect(titles(adminToken)).To(ConsistOf("Assigned", "Elsewhere"))
				Expect(titles(managerToken)).To(ConsistOf("Assigned"))
				Expect(titles(empToken)).To(ConsistOf("Assigned"))
				Expect(titles(bystanderToken)).To(ConsistOf("Elsewhere"))
			})

			It("follows a reassignment", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), managerToken, map[string]interface{}{
					"assignedToId": bystander.ID,
				})
				Expect(res.status).To(Equal(http.StatusOK))

				Expect(titles(empToken)).To(BeEmpty())
				Expect(titles(bystanderToken)).To(ConsistOf("Assigned", "Elsewhere"))
			})
		})

		Describe("reading", func() {
			It("lets the assignee read their task", func() {
				res := call(http.MethodGet, taskURL(assigned.ID), empToken, nil)
				Expect(res.status).To(Equal(http.StatusOK))
			})

			It("forbids other employees", func() {
				res := call(http.MethodGet, taskURL(assigned.ID), bystanderToken, nil)

				Expect(res.status).To(Equal(http.StatusForbidden))
				Expect(res.errorBody()["reason"]).To(Equal("not-visible"))
			})

			It("reports missing tasks as not found", func() {
				res := call(http.MethodGet, taskURL(424242), empToken, nil)
				Expect(res.status).To(Equal(http.StatusNotFound))
			})
		})

		Describe("updating", func() {
			It("lets the assignee change the status and description", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), empToken, map[string]interface{}{
					"status":      "InProgress",
					"description": "on it",
				})
				Expect(res.status).To(Equal(http.StatusOK))

				var t taskboard.Task
				res.decode(&t)
				Expect(t.Status).To(Equal(taskboard.TaskStatusInProgress))
				Expect(t.Description).To(Equal("on it"))
				Expect(t.Title).To(Equal("Assigned"))
			})

			It("forbids the assignee from touching any other field", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), empToken, map[string]interface{}{
					"status": "Complete",
					"title":  "Mine now",
				})

				Expect(res.status).To(Equal(http.StatusForbidden))
				Expect(res.errorBody()["reason"]).To(Equal("field-restricted"))
			})

			It("counts unknown fields against the assignee", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), empToken, map[string]interface{}{
					"status":   "Complete",
					"priority": "high",
				})

				Expect(res.status).To(Equal(http.StatusForbidden))
				Expect(res.errorBody()["reason"]).To(Equal("field-restricted"))
			})

			It("forbids employees who are not assigned", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), bystanderToken, map[string]interface{}{
					"status": "Complete",
				})

				Expect(res.status).To(Equal(http.StatusForbidden))
				Expect(res.errorBody()["reason"]).To(Equal("owner-mismatch"))
			})

			It("forbids managers outside the task's project", func() {
				res := call(http.MethodPut, taskURL(elsewhere.ID), managerToken, map[string]interface{}{
					"title": "Mine now",
				})

				Expect(res.status).To(Equal(http.StatusForbidden))
				Expect(res.errorBody()["reason"]).To(Equal("owner-mismatch"))
			})

			It("rejects moving the task to a missing project", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), adminToken, map[string]interface{}{
					"projectId": 424242,
				})

				Expect(res.status).To(Equal(http.StatusBadRequest))
				Expect(res.errorBody()["message"]).To(Equal("referenced project not found"))
			})

			It("clears the due date given null", func() {
				res := call(http.MethodPut, taskURL(assigned.ID), managerToken, map[string]interface{}{
					"dueDate": nil,
				})
				Expect(res.status).To(Equal(http.StatusOK))

				var t taskboard.Task
				res.decode(&t)
				Expect(t.DueDate).To(BeNil())
			})

			DescribeTable("rejecting invalid changes",
				func(payload map[string]interface{}, field string) {
					res := call(http.MethodPut, taskURL(assigned.ID), managerToken, payload)

					Expect(res.status).To(Equal(http.StatusBadRequest))
					Expect(res.errorBody()["field"]).To(Equal(field))
				},
				Entry("unknown status", map[string]interface{}{"status": "Done"}, "status"),
				Entry("null title", map[string]interface{}{"title": nil}, "title"),
				Entry("blank title", map[string]interface{}{"title": ""}, "title"),
				Entry("null description", map[string]interface{}{"description": nil}, "description"),
				Entry("malformed due date", map[string]interface{}{"dueDate": "soon"}, "dueDate"),
			)
		})

		Describe("deleting", func() {
			It("lets the project's manager delete", func() {
				res := call(http.MethodDelete, taskURL(assigned.ID), managerToken, nil)
				Expect(res.status).To(Equal(http.StatusNoContent))

				res = call(http.MethodGet, taskURL(assigned.ID), adminToken, nil)
				Expect(res.status).To(Equal(http.StatusNotFound))
			})

			It("forbids the assignee", func() {
				res := call(http.MethodDelete, taskURL(assigned.ID), empToken, nil)

				Expect(res.status).To(Equal(http.StatusForbidden))
				Expect(res.errorBody()["reason"]).To(Equal("role"))
			})

			It("forbids managers outside the task's project", func() {
				res := call(http.MethodDelete, taskURL(elsewhere.ID), managerToken, nil)
				Expect(res.status).To(Equal(http.StatusForbidden))
			})
		})
	})
})
