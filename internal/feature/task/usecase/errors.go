// Package usecase implements the business logic for the task feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when a task cannot be found by ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when the requesting user or the assignee
	// does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingFields is returned when title, checklist or priority is
	// absent, or a checklist item has no text.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrDueDateRequired is returned when a task is created without a due date.
	ErrDueDateRequired = errors.New("please select a due date")

	// ErrNoTasks is returned by the bulk assignment when the user has no
	// tasks to assign.
	ErrNoTasks = errors.New("no tasks found for the main user")
)

// AssigneeNotFoundError indicates that an assignee email has no account.
type AssigneeNotFoundError struct {
	Email string
}

func (e *AssigneeNotFoundError) Error() string {
	return fmt.Sprintf("the email %s has no account! please create one", e.Email)
}
