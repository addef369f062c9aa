package entity

import (
	"time"
)

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the recognized priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is the aggregate root for the task-manager domain.
// IDs are assigned by the store from a process-wide counter starting at 1
// and are never reused. CreatedAt is set once at insert.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskDraft is a caller-supplied task missing the store-assigned fields.
type TaskDraft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	Completed   bool
}

// TaskPatch carries a partial update. Only non-nil fields are applied,
// everything else is left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *string
	Completed   *bool
}

// TaskFilter selects a subset of tasks for listing.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterCompleted TaskFilter = "completed"
	FilterPending   TaskFilter = "pending"
)
