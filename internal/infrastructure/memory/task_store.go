// Package memory holds the canonical in-process record stores. They are the
// only mutable shared state in the application; every mutation serializes on
// the store mutex and every read returns a copy.
package memory

import (
	"sync"
	"time"

	"github.com/formdesk/formdesk/internal/domain/entity"
	"github.com/formdesk/formdesk/internal/domain/repository"
)

// TaskStore keeps tasks in insertion order and assigns ids from a
// process-wide counter starting at 1. Ids are never reused, even after
// deletes.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []entity.Task
	nextID int
}

func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

func (s *TaskStore) Insert(draft entity.TaskDraft) entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	priority := draft.Priority
	if !priority.Valid() {
		priority = entity.PriorityMedium
	}
	t := entity.Task{
		ID:          s.nextID,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    priority,
		DueDate:     draft.DueDate,
		Completed:   draft.Completed,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

func (s *TaskStore) Get(id int) (entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], nil
		}
	}
	return entity.Task{}, repository.ErrNotFound
}

func (s *TaskStore) Update(id int, patch entity.TaskPatch) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		return *t, nil
	}
	return entity.Task{}, repository.ErrNotFound
}

func (s *TaskStore) Delete(id int) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return t, nil
		}
	}
	return entity.Task{}, repository.ErrNotFound
}

func (s *TaskStore) List(filter entity.TaskFilter) []entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		switch filter {
		case entity.FilterCompleted:
			if !t.Completed {
				continue
			}
		case entity.FilterPending:
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Len reports the current number of tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

var _ repository.TaskRepository = (*TaskStore)(nil)
