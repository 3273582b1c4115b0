package client_test

import (
	"context"
	"net/http"

	. "github.com/taskboard/taskboard/pkg/client"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Client responses", func() {
	var (
		server *ghttp.Server
		ctx    context.Context

		subject *Client
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		ctx = context.Background()

		var err error
		subject, err = New(server.URL()+"/", WithToken("probe-token"))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("sends the token as a bearer credential", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest(http.MethodGet, "/api/projects"),
			ghttp.VerifyHeaderKV("Authorization", "Bearer probe-token"),
			ghttp.VerifyHeaderKV("Accept", "application/json"),
			ghttp.RespondWith(http.StatusOK, `[{"id":4,"name":"Launch","status":"active"}]`),
		))

		projects, err := subject.ListProjects(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(projects).To(HaveLen(1))
		Expect(projects[0].ID).To(Equal(int64(4)))
		Expect(projects[0].Status).To(Equal(taskboard.ProjectStatusActive))
	})

	It("sends changes as a JSON body", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest(http.MethodPut, "/api/tasks/9"),
			ghttp.VerifyContentType("application/json"),
			ghttp.VerifyJSON(`{"status":"Complete","dueDate":null}`),
			ghttp.RespondWith(http.StatusOK, `{"id":9,"status":"Complete"}`),
		))

		task, err := subject.UpdateTask(ctx, 9, map[string]interface{}{"status": "Complete", "dueDate": nil})
		Expect(err).NotTo(HaveOccurred())
		Expect(task.Status).To(Equal(taskboard.TaskStatusComplete))
	})

	It("reports a body that is not JSON", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, `<html>`))

		_, err := subject.Me(ctx)
		Expect(err).To(MatchError(ErrMalformedResponse))
	})

	It("reports statuses no domain error describes", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, `{"message":"internal server error"}`))

		_, err := subject.ListTasks(ctx)

		var statusErr *StatusError
		Expect(err).To(BeAssignableToTypeOf(statusErr))
		statusErr = err.(*StatusError)
		Expect(statusErr.StatusCode).To(Equal(http.StatusInternalServerError))
		Expect(statusErr.Message).To(Equal("internal server error"))
	})

	It("names the missing record when a 404 has no body", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, ""))

		_, err := subject.GetTask(ctx, 12)
		Expect(err).To(MatchError(taskboard.ErrTaskNotFound))
	})

	It("rebuilds forbidden and invalid errors", func() {
		server.AppendHandlers(
			ghttp.RespondWith(http.StatusForbidden, `{"message":"forbidden: field-restricted","reason":"field-restricted"}`),
			ghttp.RespondWith(http.StatusBadRequest, `{"message":"invalid title: is too long","field":"title"}`),
			ghttp.RespondWith(http.StatusBadRequest, `{"message":"referenced user not found"}`),
		)

		_, err := subject.UpdateTask(ctx, 1, map[string]interface{}{"title": "x"})
		Expect(err).To(MatchError(taskboard.NewErrForbidden("field-restricted")))

		_, err = subject.UpdateTask(ctx, 1, map[string]interface{}{"title": "x"})
		Expect(err).To(MatchError(taskboard.NewErrInvalid("title", "is too long")))

		_, err = subject.UpdateTask(ctx, 1, map[string]interface{}{"assignedToId": 99})
		Expect(err).To(MatchError(taskboard.NewErrReferenceNotFound("user")))
	})

	It("requires the login response to set the auth cookie", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest(http.MethodPost, "/api/auth/login"),
			ghttp.VerifyJSON(`{"email":"probe@example.com","password":"password"}`),
			ghttp.RespondWith(http.StatusOK, `{"user":{"id":1}}`),
		))

		_, err := subject.Login(ctx, "probe@example.com", "password")
		Expect(err).To(MatchError(ErrNoToken))
		Expect(subject.Token()).To(Equal("probe-token"))
	})
})
