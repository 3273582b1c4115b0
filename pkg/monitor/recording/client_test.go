package recording_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/taskboard/taskboard/pkg/client"
	"github.com/taskboard/taskboard/pkg/monitor"
	"github.com/taskboard/taskboard/pkg/monitor/monitorfakes"
	. "github.com/taskboard/taskboard/pkg/monitor/recording"
	"github.com/taskboard/taskboard/pkg/monitor/recording/recordingfakes"
	"github.com/taskboard/taskboard/pkg/taskboard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		fakeClient   *monitorfakes.FakeClient
		fakeRecorder *recordingfakes.FakeDurationRecorder
		fakeClock    *fakeclock.FakeClock

		subject *Client

		ctx context.Context
	)

	BeforeEach(func() {
		fakeClient = new(monitorfakes.FakeClient)
		fakeRecorder = new(recordingfakes.FakeDurationRecorder)
		fakeClock = fakeclock.NewFakeClock(time.Now())

		subject = NewClient(fakeClient, fakeRecorder, WithClock(fakeClock))

		ctx = context.Background()
	})

	Describe("#Me", func() {
		var user *taskboard.User

		BeforeEach(func() {
			user = &taskboard.User{ID: 7, Email: "probe@example.com", Role: taskboard.RoleProjectManager}
			fakeClient.MeStub = func(context.Context) (*taskboard.User, error) {
				fakeClock.Increment(5 * time.Second)
				return user, nil
			}
		})

		It("records the duration of the call", func() {
			actual, err := subject.Me(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual).To(Equal(user))

			Expect(fakeRecorder.ObserveCallCount()).To(Equal(1))
			Expect(fakeRecorder.ObserveArgsForCall(0)).To(Equal(5 * time.Second))
		})

		It("returns the user with a FailedToObserveDurationError when recording fails", func() {
			observeErr := errors.New("observe")
			fakeRecorder.ObserveReturns(observeErr)

			actual, err := subject.Me(ctx)
			Expect(err).To(MatchError(monitor.FailedToObserveDurationError{Err: observeErr}))
			Expect(actual).To(Equal(user))
		})

		It("skips recording when the call fails", func() {
			callErr := errors.New("call")
			fakeClient.MeStub = nil
			fakeClient.MeReturns(nil, callErr)

			_, err := subject.Me(ctx)
			Expect(err).To(MatchError(callErr))
			Expect(fakeRecorder.ObserveCallCount()).To(Equal(0))
		})
	})

	Describe("#CreateProject", func() {
		var (
			req     client.CreateProjectRequest
			project *taskboard.Project
		)

		BeforeEach(func() {
			managerID := int64(7)
			req = client.CreateProjectRequest{Name: "probe-project", ManagerID: &managerID}
			project = &taskboard.Project{ID: 3, Name: "probe-project", ManagerID: &managerID}

			fakeClient.CreateProjectStub = func(context.Context, client.CreateProjectRequest) (*taskboard.Project, error) {
				fakeClock.Increment(2 * time.Second)
				return project, nil
			}
		})

		It("passes the request through and records the duration", func() {
			actual, err := subject.CreateProject(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual).To(Equal(project))

			_, actualReq := fakeClient.CreateProjectArgsForCall(0)
			Expect(actualReq).To(Equal(req))

			Expect(fakeRecorder.ObserveArgsForCall(0)).To(Equal(2 * time.Second))
		})

		It("skips recording when the call fails", func() {
			callErr := taskboard.ErrProjectAlreadyExists
			fakeClient.CreateProjectStub = nil
			fakeClient.CreateProjectReturns(nil, callErr)

			actual, err := subject.CreateProject(ctx, req)
			Expect(err).To(MatchError(callErr))
			Expect(actual).To(BeNil())
			Expect(fakeRecorder.ObserveCallCount()).To(Equal(0))
		})
	})

	Describe("#DeleteProject", func() {
		BeforeEach(func() {
			fakeClient.DeleteProjectStub = func(context.Context, int64) error {
				fakeClock.Increment(time.Second)
				return nil
			}
		})

		It("records the duration of the call", func() {
			Expect(subject.DeleteProject(ctx, 3)).To(Succeed())

			_, id := fakeClient.DeleteProjectArgsForCall(0)
			Expect(id).To(Equal(int64(3)))
			Expect(fakeRecorder.ObserveArgsForCall(0)).To(Equal(time.Second))
		})

		It("returns a FailedToObserveDurationError when recording fails", func() {
			observeErr := errors.New("observe")
			fakeRecorder.ObserveReturns(observeErr)

			Expect(subject.DeleteProject(ctx, 3)).To(MatchError(monitor.FailedToObserveDurationError{Err: observeErr}))
		})
	})

	Describe("#CreateTask", func() {
		It("records the duration of the call", func() {
			task := &taskboard.Task{ID: 9, Title: "probe-task"}
			fakeClient.CreateTaskStub = func(context.Context, client.CreateTaskRequest) (*taskboard.Task, error) {
				fakeClock.Increment(3 * time.Second)
				return task, nil
			}

			actual, err := subject.CreateTask(ctx, client.CreateTaskRequest{Title: "probe-task"})
			Expect(err).NotTo(HaveOccurred())
			Expect(actual).To(Equal(task))
			Expect(fakeRecorder.ObserveArgsForCall(0)).To(Equal(3 * time.Second))
		})
	})

	Describe("#ListProjects", func() {
		It("records the duration of the call", func() {
			projects := []*taskboard.Project{{ID: 1}, {ID: 2}}
			fakeClient.ListProjectsStub = func(context.Context) ([]*taskboard.Project, error) {
				fakeClock.Increment(4 * time.Second)
				return projects, nil
			}

			actual, err := subject.ListProjects(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual).To(Equal(projects))
			Expect(fakeRecorder.ObserveArgsForCall(0)).To(Equal(4 * time.Second))
		})

		It("returns the projects with a FailedToObserveDurationError when recording fails", func() {
			projects := []*taskboard.Project{{ID: 1}}
			fakeClient.ListProjectsReturns(projects, nil)
			observeErr := errors.New("observe")
			fakeRecorder.ObserveReturns(observeErr)

			actual, err := subject.ListProjects(ctx)
			Expect(err).To(MatchError(monitor.FailedToObserveDurationError{Err: observeErr}))
			Expect(actual).To(Equal(projects))
		})
	})

	Describe("#ListTasks", func() {
		It("records the duration of the call", func() {
			tasks := []*taskboard.Task{{ID: 1}}
			fakeClient.ListTasksStub = func(context.Context) ([]*taskboard.Task, error) {
				fakeClock.Increment(6 * time.Second)
				return tasks, nil
			}

			actual, err := subject.ListTasks(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual).To(Equal(tasks))
			Expect(fakeRecorder.ObserveArgsForCall(0)).To(Equal(6 * time.Second))
		})

		It("skips recording when the call fails", func() {
			fakeClient.ListTasksReturns(nil, taskboard.ErrUnauthenticated)

			_, err := subject.ListTasks(ctx)
			Expect(err).To(MatchError(taskboard.ErrUnauthenticated))
			Expect(fakeRecorder.ObserveCallCount()).To(Equal(0))
		})
	})
})
