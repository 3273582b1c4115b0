package api_test

import (
	"net/http"
	"strings"

	"github.com/taskboard/taskboard/pkg/api"
	"github.com/taskboard/taskboard/pkg/api/apitest"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/logx/logxfakes"
	"github.com/taskboard/taskboard/pkg/metrics/testmetrics"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Projects", func() {
	var (
		ts             *apitest.TestServer
		statter        *testmetrics.Statter
		securityLogger *logxfakes.FakeSecurityLogger

		manager, employee                  *taskboard.User
		adminToken, managerToken, empToken string

		projectsURL string
	)

	BeforeEach(func() {
		statter = testmetrics.NewStatter()
		securityLogger = new(logxfakes.FakeSecurityLogger)
		ts = apitest.NewTestServer(apitest.WithServerOptions(
			api.WithStatter(statter),
			api.WithSecurityLogger(securityLogger),
		))

		_, adminToken = ts.CreateUser(taskboard.RoleAdmin)
		manager, managerToken = ts.CreateUser(taskboard.RoleProjectManager)
		employee, empToken = ts.CreateUser(taskboard.RoleEmployee)

		projectsURL = ts.URL() + "/api/projects"
	})

	AfterEach(func() {
		ts.Close()
	})

	create := func(token string, payload interface{}) (response, taskboard.Project) {
		res := call(http.MethodPost, projectsURL, token, payload)

		var p taskboard.Project
		if res.status == http.StatusCreated {
			res.decode(&p)
		}

		return res, p
	}

	projectURL := func(id int64) string {
		return projectsURL + "/" + itoa(id)
	}

	Describe("creating", func() {
		It("lets an admin create an unassigned project with defaults", func() {
			res, p := create(adminToken, map[string]interface{}{"name": "Apollo"})

			Expect(res.status).To(Equal(http.StatusCreated))
			Expect(p.ID).NotTo(BeZero())
			Expect(p.Name).To(Equal("Apollo"))
			Expect(p.Status).To(Equal(taskboard.ProjectStatusPlanning))
			Expect(p.ManagerID).To(BeNil())
			Expect(p.StartDate.IsZero()).To(BeFalse())
			Expect(p.EndDate).To(BeNil())
		})

		It("makes a manager the manager of a project they create without one", func() {
			_, p := create(managerToken, map[string]interface{}{"name": "Gemini"})

			Expect(p.ManagerID).NotTo(BeNil())
			Expect(*p.ManagerID).To(Equal(manager.ID))
		})

		It("accepts every field", func() {
			res, p := create(adminToken, map[string]interface{}{
				"name":        "Mercury",
				"description": "first flights",
				"status":      "active",
				"managerId":   manager.ID,
				"startDate":   "2024-01-01",
				"endDate":     "2024-06-30T12:00:00Z",
			})

			Expect(res.status).To(Equal(http.StatusCreated))
			Expect(*p.Description).To(Equal("first flights"))
			Expect(p.Status).To(Equal(taskboard.ProjectStatusActive))
			Expect(*p.ManagerID).To(Equal(manager.ID))
			Expect(p.StartDate.Format("2006-01-02")).To(Equal("2024-01-01"))
			Expect(p.EndDate.Format("2006-01-02")).To(Equal("2024-06-30"))
		})

		It("forbids employees", func() {
			res, _ := create(empToken, map[string]interface{}{"name": "Apollo"})

			Expect(res.status).To(Equal(http.StatusForbidden))
			Expect(res.errorBody()["reason"]).To(Equal("role"))
		})

		It("checks the role before the body is validated", func() {
			res, _ := create(empToken, map[string]interface{}{})
			Expect(res.status).To(Equal(http.StatusForbidden))
		})

		It("rejects a manager that does not exist", func() {
			res, _ := create(adminToken, map[string]interface{}{"name": "Apollo", "managerId": 424242})

			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["message"]).To(Equal("referenced user not found"))
		})

		It("rejects duplicate names", func() {
			create(adminToken, map[string]interface{}{"name": "Apollo"})
			res, _ := create(managerToken, map[string]interface{}{"name": "Apollo"})

			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["message"]).To(Equal("project already exists"))
		})

		DescribeTable("rejecting invalid projects",
			func(payload map[string]interface{}, field string) {
				res, _ := create(adminToken, payload)

				Expect(res.status).To(Equal(http.StatusBadRequest))
				Expect(res.errorBody()["field"]).To(Equal(field))
			},
			Entry("missing name", map[string]interface{}{"description": "x"}, "name"),
			Entry("blank name", map[string]interface{}{"name": " "}, "name"),
			Entry("long name", map[string]interface{}{"name": strings.Repeat("n", 129)}, "name"),
			Entry("unknown status", map[string]interface{}{"name": "A", "status": "paused"}, "status"),
			Entry("null status", map[string]interface{}{"name": "A", "status": nil}, "status"),
			Entry("malformed date", map[string]interface{}{"name": "A", "startDate": "yesterday"}, "startDate"),
			Entry("end before start", map[string]interface{}{"name": "A", "startDate": "2024-02-01", "endDate": "2024-01-01"}, "endDate"),
			Entry("non-numeric manager", map[string]interface{}{"name": "A", "managerId": "7"}, "managerId"),
		)

		It("counts and times the route", func() {
			create(adminToken, map[string]interface{}{"name": "Apollo"})

			Expect(statter.IncCalls()).To(ContainElement(testmetrics.IncCall{Metric: "count.create-project", Value: 1}))
			Expect(statter.IncCalls()).To(ContainElement(testmetrics.IncCall{Metric: "success.create-project", Value: 1}))
			Expect(statter.TimingDurationCalls()).NotTo(BeEmpty())
		})

		It("does not count denials as successes", func() {
			create(empToken, map[string]interface{}{"name": "Apollo"})

			Expect(statter.IncCalls()).To(ContainElement(testmetrics.IncCall{Metric: "count.create-project", Value: 1}))
			Expect(statter.IncCalls()).NotTo(ContainElement(testmetrics.IncCall{Metric: "success.create-project", Value: 1}))
		})

		It("audits the decision", func() {
			create(empToken, map[string]interface{}{"name": "Apollo"})

			Expect(securityLogger.LogCallCount()).To(Equal(1))
			_, signature, _, extensions := securityLogger.LogArgsForCall(0)
			Expect(signature).To(Equal("CreateProject"))
			Expect(extensions).To(ContainElement(logx.SecurityData{Key: "outcome", Value: "deny"}))
			Expect(extensions).To(ContainElement(logx.SecurityData{Key: "reason", Value: "role"}))
			Expect(extensions).To(ContainElement(logx.SecurityData{Key: "actorID", Value: itoa(employee.ID)}))
		})
	})

	Describe("reading", func() {
		var managed, other taskboard.Project

		BeforeEach(func() {
			_, managed = create(adminToken, map[string]interface{}{"name": "Managed", "managerId": manager.ID})
			_, other = create(adminToken, map[string]interface{}{"name": "Other"})
		})

		listed := func(token string) []taskboard.Project {
			res := call(http.MethodGet, projectsURL, token, nil)
			ExpectWithOffset(1, res.status).To(Equal(http.StatusOK))

			var projects []taskboard.Project
			res.decode(&projects)
			return projects
		}

		names := func(projects []taskboard.Project) []string {
			var ns []string
			for _, p := range projects {
				ns = append(ns, p.Name)
			}
			return ns
		}

		It("lists every project for an admin", func() {
			Expect(names(listed(adminToken))).To(ConsistOf("Managed", "Other"))
		})

		It("lists only managed projects for a manager", func() {
			Expect(names(listed(managerToken))).To(ConsistOf("Managed"))
		})

		It("lists an empty array rather than null", func() {
			res := call(http.MethodGet, projectsURL, empToken, nil)
			Expect(res.status).To(Equal(http.StatusOK))
			Expect(res.body).To(MatchJSON(`[]`))
		})

		It("reads a visible project", func() {
			res := call(http.MethodGet, projectURL(managed.ID), managerToken, nil)
			Expect(res.status).To(Equal(http.StatusOK))

			var p taskboard.Project
			res.decode(&p)
			Expect(p.ID).To(Equal(managed.ID))
			Expect(p.Name).To(Equal("Managed"))
			Expect(*p.ManagerID).To(Equal(manager.ID))
		})

		It("forbids reading a project outside the caller's visibility", func() {
			res := call(http.MethodGet, projectURL(other.ID), managerToken, nil)

			Expect(res.status).To(Equal(http.StatusForbidden))
			Expect(res.errorBody()["reason"]).To(Equal("not-visible"))
		})

		It("reports missing and malformed ids as not found", func() {
			res := call(http.MethodGet, projectURL(424242), adminToken, nil)
			Expect(res.status).To(Equal(http.StatusNotFound))
			Expect(res.errorBody()["message"]).To(Equal("project not found"))

			res = call(http.MethodGet, projectsURL+"/abc", adminToken, nil)
			Expect(res.status).To(Equal(http.StatusNotFound))
		})
	})

	Describe("updating", func() {
		var managed, other taskboard.Project

		BeforeEach(func() {
			_, managed = create(adminToken, map[string]interface{}{
				"name":        "Managed",
				"description": "to be cleared",
				"managerId":   manager.ID,
				"endDate":     "2999-01-01",
			})
			_, other = create(adminToken, map[string]interface{}{"name": "Other"})
		})

		It("lets the manager change their project", func() {
			res := call(http.MethodPut, projectURL(managed.ID), managerToken, map[string]interface{}{
				"name":   "Renamed",
				"status": "completed",
			})
			Expect(res.status).To(Equal(http.StatusOK))

			var p taskboard.Project
			res.decode(&p)
			Expect(p.Name).To(Equal("Renamed"))
			Expect(p.Status).To(Equal(taskboard.ProjectStatusCompleted))
			Expect(*p.Description).To(Equal("to be cleared"))
		})

		It("clears nullable fields given null", func() {
			res := call(http.MethodPut, projectURL(managed.ID), adminToken, map[string]interface{}{
				"description": nil,
				"managerId":   nil,
				"endDate":     nil,
			})
			Expect(res.status).To(Equal(http.StatusOK))

			var p taskboard.Project
			res.decode(&p)
			Expect(p.Description).To(BeNil())
			Expect(p.ManagerID).To(BeNil())
			Expect(p.EndDate).To(BeNil())
		})

		It("rejects null for required fields", func() {
			res := call(http.MethodPut, projectURL(managed.ID), adminToken, map[string]interface{}{"name": nil})

			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["field"]).To(Equal("name"))
		})

		It("rejects an end date before the stored start date", func() {
			res := call(http.MethodPut, projectURL(managed.ID), adminToken, map[string]interface{}{"endDate": "1999-01-01"})

			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["field"]).To(Equal("endDate"))
		})

		It("forbids a manager from changing a project they do not manage", func() {
			res := call(http.MethodPut, projectURL(other.ID), managerToken, map[string]interface{}{"name": "Mine"})

			Expect(res.status).To(Equal(http.StatusForbidden))
			Expect(res.errorBody()["reason"]).To(Equal("owner-mismatch"))
		})

		It("forbids employees", func() {
			res := call(http.MethodPut, projectURL(managed.ID), empToken, map[string]interface{}{"name": "Mine"})

			Expect(res.status).To(Equal(http.StatusForbidden))
			Expect(res.errorBody()["reason"]).To(Equal("role"))
		})

		It("reports a missing project before checking the role", func() {
			res := call(http.MethodPut, projectURL(424242), empToken, map[string]interface{}{"name": "Mine"})
			Expect(res.status).To(Equal(http.StatusNotFound))
		})

		It("rejects a new manager that does not exist", func() {
			res := call(http.MethodPut, projectURL(managed.ID), adminToken, map[string]interface{}{"managerId": 424242})
			Expect(res.status).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("deleting", func() {
		var managed, other taskboard.Project

		BeforeEach(func() {
			_, managed = create(adminToken, map[string]interface{}{"name": "Managed", "managerId": manager.ID})
			_, other = create(adminToken, map[string]interface{}{"name": "Other"})
		})

		It("deletes the project and its tasks", func() {
			res := call(http.MethodPost, ts.URL()+"/api/tasks", managerToken, map[string]interface{}{
				"title":        "Launch",
				"projectId":    managed.ID,
				"assignedToId": employee.ID,
			})
			Expect(res.status).To(Equal(http.StatusCreated))

			var task taskboard.Task
			res.decode(&task)

			res = call(http.MethodDelete, projectURL(managed.ID), managerToken, nil)
			Expect(res.status).To(Equal(http.StatusNoContent))

			res = call(http.MethodGet, projectURL(managed.ID), adminToken, nil)
			Expect(res.status).To(Equal(http.StatusNotFound))

			res = call(http.MethodGet, ts.URL()+"/api/tasks/"+itoa(task.ID), adminToken, nil)
			Expect(res.status).To(Equal(http.StatusNotFound))
		})

		It("forbids deleting someone else's project", func() {
			res := call(http.MethodDelete, projectURL(other.ID), managerToken, nil)
			Expect(res.status).To(Equal(http.StatusForbidden))
		})

		It("lets an admin delete any project", func() {
			res := call(http.MethodDelete, projectURL(other.ID), adminToken, nil)
			Expect(res.status).To(Equal(http.StatusNoContent))

			res = call(http.MethodGet, projectsURL, adminToken, nil)
			var projects []taskboard.Project
			res.decode(&projects)
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].ID).To(Equal(managed.ID))
		})
	})
})
