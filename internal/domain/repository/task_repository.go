package repository

import "github.com/formdesk/formdesk/internal/domain/entity"

// TaskRepository defines the interface for task store operations.
// Implementations own the canonical collection; returned tasks are copies
// and never alias internal state.
type TaskRepository interface {
	// Insert assigns id and creation timestamp and appends the task.
	// Validation is the caller's responsibility; Insert itself never rejects.
	Insert(draft entity.TaskDraft) entity.Task
	// Get returns the task with the given id or ErrNotFound.
	Get(id int) (entity.Task, error)
	// Update applies the non-nil fields of patch or returns ErrNotFound.
	Update(id int, patch entity.TaskPatch) (entity.Task, error)
	// Delete removes the task, returning the removed value or ErrNotFound.
	Delete(id int) (entity.Task, error)
	// List returns tasks matching filter in insertion order.
	List(filter entity.TaskFilter) []entity.Task
}
