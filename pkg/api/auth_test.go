package api_test

import (
	"net/http"

	"github.com/taskboard/taskboard/pkg/api"
	"github.com/taskboard/taskboard/pkg/api/apitest"
	"github.com/taskboard/taskboard/pkg/logx/logxfakes"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

type registered struct {
	Token string         `json:"token"`
	User  taskboard.User `json:"user"`
}

func cookies(r response) []*http.Cookie {
	return (&http.Response{Header: r.header}).Cookies()
}

var _ = Describe("Authentication", func() {
	var (
		ts             *apitest.TestServer
		securityLogger *logxfakes.FakeSecurityLogger
	)

	BeforeEach(func() {
		securityLogger = new(logxfakes.FakeSecurityLogger)
		ts = apitest.NewTestServer(apitest.WithServerOptions(api.WithSecurityLogger(securityLogger)))
	})

	AfterEach(func() {
		ts.Close()
	})

	register := func(payload interface{}) response {
		return call(http.MethodPost, ts.URL()+"/api/auth/register", "", payload)
	}

	newUser := func(email string) map[string]interface{} {
		return map[string]interface{}{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     email,
			"password":  "hunter22",
		}
	}

	It("answers the health check without credentials", func() {
		res := call(http.MethodGet, ts.URL()+"/", "", nil)

		Expect(res.status).To(Equal(http.StatusOK))
		Expect(string(res.body)).To(Equal("Project & Task Management API is running..."))
	})

	Describe("registering", func() {
		It("makes the first account an admin and later ones employees", func() {
			res := register(newUser("first@example.com"))
			Expect(res.status).To(Equal(http.StatusCreated))

			var first registered
			res.decode(&first)
			Expect(first.Token).NotTo(BeEmpty())
			Expect(first.User.Role).To(Equal(taskboard.RoleAdmin))

			second := newUser("second@example.com")
			second["role"] = "Admin"
			res = register(second)
			Expect(res.status).To(Equal(http.StatusCreated))

			var next registered
			res.decode(&next)
			Expect(next.User.Role).To(Equal(taskboard.RoleEmployee))
			Expect(string(res.body)).NotTo(ContainSubstring("hunter22"))
			Expect(string(res.body)).NotTo(ContainSubstring("password"))
		})

		It("normalizes the email and rejects duplicates whatever their case", func() {
			res := register(newUser("  Ada@Example.COM "))
			Expect(res.status).To(Equal(http.StatusCreated))

			var r registered
			res.decode(&r)
			Expect(r.User.Email).To(Equal("ada@example.com"))

			res = register(newUser("ADA@example.com"))
			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["message"]).To(Equal("user already exists"))
		})

		It("returns a token the API accepts", func() {
			var r registered
			register(newUser("ada@example.com")).decode(&r)

			res := call(http.MethodGet, ts.URL()+"/api/auth/me", r.Token, nil)
			Expect(res.status).To(Equal(http.StatusOK))

			var me taskboard.User
			res.decode(&me)
			Expect(me.ID).To(Equal(r.User.ID))
		})

		DescribeTable("rejecting bad registrations",
			func(mutate func(map[string]interface{}), field string) {
				payload := newUser("ada@example.com")
				mutate(payload)

				res := register(payload)
				Expect(res.status).To(Equal(http.StatusBadRequest))
				Expect(res.errorBody()["field"]).To(Equal(field))
			},
			Entry("missing first name", func(p map[string]interface{}) { delete(p, "firstName") }, "firstName"),
			Entry("blank last name", func(p map[string]interface{}) { p["lastName"] = "  " }, "lastName"),
			Entry("malformed email", func(p map[string]interface{}) { p["email"] = "not-an-email" }, "email"),
			Entry("short password", func(p map[string]interface{}) { p["password"] = "abc" }, "password"),
			Entry("non-string password", func(p map[string]interface{}) { p["password"] = 123456 }, "password"),
		)

		It("rejects a body that is not a JSON object", func() {
			res := register(`["ada"]`)
			Expect(res.status).To(Equal(http.StatusBadRequest))
			Expect(res.errorBody()["field"]).To(Equal("body"))

			res = register(`{"firstName":`)
			Expect(res.status).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("logging in", func() {
		BeforeEach(func() {
			Expect(register(newUser("ada@example.com")).status).To(Equal(http.StatusCreated))
		})

		login := func(email, password string) response {
			return call(http.MethodPost, ts.URL()+"/api/auth/login", "", map[string]string{
				"email":    email,
				"password": password,
			})
		}

		It("sets an http-only auth cookie that authenticates later requests", func() {
			res := login("ADA@example.com", "hunter22")
			Expect(res.status).To(Equal(http.StatusOK))

			var body struct {
				User taskboard.User `json:"user"`
			}
			res.decode(&body)
			Expect(body.User.Email).To(Equal("ada@example.com"))

			cs := cookies(res)
			Expect(cs).To(HaveLen(1))
			Expect(cs[0].Name).To(Equal("token"))
			Expect(cs[0].HttpOnly).To(BeTrue())
			Expect(cs[0].SameSite).To(Equal(http.SameSiteStrictMode))
			Expect(cs[0].MaxAge).To(BeNumerically(">", 0))

			req, err := http.NewRequest(http.MethodGet, ts.URL()+"/api/auth/me", nil)
			Expect(err).NotTo(HaveOccurred())
			req.AddCookie(cs[0])

			me, err := http.DefaultClient.Do(req)
			Expect(err).NotTo(HaveOccurred())
			me.Body.Close()
			Expect(me.StatusCode).To(Equal(http.StatusOK))
		})

		It("does not tell unknown emails from wrong passwords", func() {
			wrong := login("ada@example.com", "wrong-password")
			unknown := login("nobody@example.com", "hunter22")

			Expect(wrong.status).To(Equal(http.StatusUnauthorized))
			Expect(unknown.status).To(Equal(http.StatusUnauthorized))
			Expect(wrong.body).To(MatchJSON(unknown.body))
			Expect(wrong.errorBody()["message"]).To(Equal("invalid email or password"))
			Expect(cookies(wrong)).To(BeEmpty())
		})

		It("records failed logins in the security log", func() {
			login("ada@example.com", "wrong-password")

			Expect(securityLogger.LogCallCount()).To(BeNumerically(">=", 1))
			_, signature, _, _ := securityLogger.LogArgsForCall(securityLogger.LogCallCount() - 1)
			Expect(signature).To(Equal("Login"))
		})

		It("clears the cookie on logout", func() {
			res := call(http.MethodPost, ts.URL()+"/api/auth/logout", "", nil)
			Expect(res.status).To(Equal(http.StatusNoContent))

			cs := cookies(res)
			Expect(cs).To(HaveLen(1))
			Expect(cs[0].Value).To(BeEmpty())
			Expect(cs[0].MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("authenticating requests", func() {
		It("rejects missing and garbage credentials", func() {
			res := call(http.MethodGet, ts.URL()+"/api/projects", "", nil)
			Expect(res.status).To(Equal(http.StatusUnauthorized))
			Expect(res.errorBody()["message"]).To(Equal("not authorized"))

			res = call(http.MethodGet, ts.URL()+"/api/projects", "not-a-token", nil)
			Expect(res.status).To(Equal(http.StatusUnauthorized))
		})

		It("rejects tokens of deleted or unknown users", func() {
			token, _, err := ts.Tokens.Issue(&taskboard.User{ID: 4242, Role: taskboard.RoleAdmin})
			Expect(err).NotTo(HaveOccurred())

			res := call(http.MethodGet, ts.URL()+"/api/auth/me", token, nil)
			Expect(res.status).To(Equal(http.StatusUnauthorized))
		})

		It("applies role changes to tokens already issued", func() {
			_, adminToken := ts.CreateUser(taskboard.RoleAdmin)
			employee, employeeToken := ts.CreateUser(taskboard.RoleEmployee)

			project := map[string]interface{}{"name": "Apollo"}
			res := call(http.MethodPost, ts.URL()+"/api/projects", employeeToken, project)
			Expect(res.status).To(Equal(http.StatusForbidden))

			res = call(http.MethodPut, ts.URL()+"/api/users/"+itoa(employee.ID)+"/role", adminToken,
				map[string]string{"role": "ProjectManager"})
			Expect(res.status).To(Equal(http.StatusOK))

			res = call(http.MethodPost, ts.URL()+"/api/projects", employeeToken, project)
			Expect(res.status).To(Equal(http.StatusCreated))
		})
	})

	It("answers unknown routes with JSON", func() {
		res := call(http.MethodGet, ts.URL()+"/api/nothing-here", "", nil)
		Expect(res.status).To(Equal(http.StatusNotFound))
		Expect(res.errorBody()["message"]).To(Equal("route not found"))
	})
})
