// Package entity defines the domain entities for the task feature.
package entity

import "time"

// Category is the workflow column a task belongs to.
type Category string

// Workflow categories.
const (
	CategoryBacklog    Category = "Backlog"
	CategoryToDo       Category = "To-Do"
	CategoryInProgress Category = "In Progress"
	CategoryDone       Category = "Done"
)

// Priority is the urgency level of a task.
type Priority string

// Priority levels.
const (
	PriorityHigh     Priority = "high"
	PriorityModerate Priority = "moderate"
	PriorityLow      Priority = "low"
)

// ChecklistItem is a single entry of a task's checklist.
type ChecklistItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task represents a planned piece of work. A task is visible to a user when
// that user created it or when it is assigned to the user's email address.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Title is the short description of the task.
	Title string `gorm:"size:255;not null"`

	// Category is the workflow column the task sits in.
	Category Category `gorm:"size:32;not null"`

	// Priority is the urgency level, possibly derived from the due date.
	Priority Priority `gorm:"size:16;not null"`

	// Checklist is the ordered list of sub-items, stored as a JSON column.
	Checklist []ChecklistItem `gorm:"serializer:json"`

	// AssignedTo is the email of the assignee; empty means unassigned and
	// is rendered as null outward.
	AssignedTo string `gorm:"size:255;index"`

	// DueDate is when the task is due.
	DueDate time.Time `gorm:"not null"`

	// CreatedBy is the ID of the user who created the task.
	CreatedBy uint `gorm:"index"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every mutating save.
	UpdatedAt time.Time
}
