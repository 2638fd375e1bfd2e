// Package dto defines data transfer objects for the task feature's HTTP
// transport layer.
package dto

import (
	"time"

	"taskplanner_backend/internal/feature/task/domain/entity"
)

// CreateTaskReq represents the request body for POST /api/task.
// Required fields are validated by the usecase so that each missing field
// produces its descriptive error message.
type CreateTaskReq struct {
	Title      string                 `json:"title"`
	Category   entity.Category        `json:"category"`
	Priority   entity.Priority        `json:"priority"`
	Checklist  []entity.ChecklistItem `json:"checklist"`
	DueDate    *time.Time             `json:"dueDate"`
	AssignedTo string                 `json:"assignedTo"`
}

// EditTaskReq represents the request body for PUT /api/task/:taskId.
// Absent fields leave the task unchanged.
type EditTaskReq struct {
	Title      string                 `json:"title"`
	Category   entity.Category        `json:"category"`
	Priority   entity.Priority        `json:"priority"`
	Checklist  []entity.ChecklistItem `json:"checklist"`
	DueDate    *time.Time             `json:"dueDate"`
	AssignedTo string                 `json:"assignedTo"`
}

// AddAssigneeReq represents the request body for POST /api/task/add.
type AddAssigneeReq struct {
	Email string `json:"email" binding:"required,email"`
}
