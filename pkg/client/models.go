package client

import (
	"time"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type CreateProjectRequest struct {
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	Status      taskboard.ProjectStatus `json:"status,omitempty"`
	ManagerID   *int64                  `json:"managerId,omitempty"`
	StartDate   *time.Time              `json:"startDate,omitempty"`
	EndDate     *time.Time              `json:"endDate,omitempty"`
}

type CreateTaskRequest struct {
	ProjectID    int64                `json:"projectId"`
	AssignedToID int64                `json:"assignedToId"`
	Title        string               `json:"title"`
	Description  string               `json:"description,omitempty"`
	Status       taskboard.TaskStatus `json:"status,omitempty"`
	DueDate      *time.Time           `json:"dueDate,omitempty"`
}
