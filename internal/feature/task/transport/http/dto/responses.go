package dto

import (
	"time"

	"taskplanner_backend/internal/feature/task/domain/entity"
	"taskplanner_backend/internal/feature/task/usecase"
)

// TaskPayload is the outward representation of a task. AssignedTo is null
// when the task has no assignee.
type TaskPayload struct {
	ID         uint                   `json:"id"`
	Title      string                 `json:"title"`
	Category   entity.Category        `json:"category"`
	Priority   entity.Priority        `json:"priority"`
	Checklist  []entity.ChecklistItem `json:"checklist"`
	AssignedTo *string                `json:"assignedTo"`
	DueDate    time.Time              `json:"dueDate"`
	CreatedBy  uint                   `json:"createdBy"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// NewTaskPayload converts a task entity into its outward representation.
func NewTaskPayload(t *entity.Task) TaskPayload {
	var assigned *string
	if t.AssignedTo != "" {
		assigned = &t.AssignedTo
	}
	return TaskPayload{
		ID:         t.ID,
		Title:      t.Title,
		Category:   t.Category,
		Priority:   t.Priority,
		Checklist:  t.Checklist,
		AssignedTo: assigned,
		DueDate:    t.DueDate,
		CreatedBy:  t.CreatedBy,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// NewTaskPayloads converts a slice of task entities.
func NewTaskPayloads(tasks []entity.Task) []TaskPayload {
	out := make([]TaskPayload, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskPayload(&tasks[i]))
	}
	return out
}

// CreatorPayload is the expanded creator reference returned by the task
// detail endpoint.
type CreatorPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskDetailPayload is a task with its creator expanded to name and email.
// The outer CreatedBy shadows the numeric reference of the embedded payload.
type TaskDetailPayload struct {
	TaskPayload
	CreatedBy *CreatorPayload `json:"createdBy"`
}

// NewTaskDetailPayload builds the detail representation of a task.
func NewTaskDetailPayload(t *entity.Task, creator *usecase.Member) TaskDetailPayload {
	detail := TaskDetailPayload{TaskPayload: NewTaskPayload(t)}
	if creator != nil {
		detail.CreatedBy = &CreatorPayload{Name: creator.Name, Email: creator.Email}
	}
	return detail
}

// TaskResponse is the success envelope carrying a single task.
type TaskResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Task    TaskPayload `json:"task"`
}

// TasksResponse is the success envelope carrying a task list.
type TasksResponse struct {
	Success bool          `json:"success"`
	Tasks   []TaskPayload `json:"tasks"`
}

// TaskDetailResponse is the success envelope for the task detail endpoint.
type TaskDetailResponse struct {
	Success bool              `json:"success"`
	Task    TaskDetailPayload `json:"task"`
}

// ShareResponse is the success envelope for the share endpoint.
type ShareResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Link    string      `json:"link"`
	Task    TaskPayload `json:"task"`
}

// AnalyticsResponse is the success envelope for the analytics endpoint.
type AnalyticsResponse struct {
	Success       bool              `json:"success"`
	AnalyticsData usecase.Analytics `json:"analyticsData"`
}
