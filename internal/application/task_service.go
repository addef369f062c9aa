package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/formdesk/formdesk/internal/domain/entity"
	repo "github.com/formdesk/formdesk/internal/domain/repository"
)

// TaskService orchestrates the task CRUD operations over the store and
// publishes audit events for every mutation.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
	Events EventPublisher
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger, events EventPublisher) *TaskService {
	return &TaskService{Repo: r, Logger: logger, Events: events}
}

// ParseFilter maps the query value to a task filter. Empty means all.
func ParseFilter(s string) (entity.TaskFilter, error) {
	switch s {
	case "", string(entity.FilterAll):
		return entity.FilterAll, nil
	case string(entity.FilterCompleted):
		return entity.FilterCompleted, nil
	case string(entity.FilterPending):
		return entity.FilterPending, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

func (s *TaskService) Create(ctx context.Context, draft entity.TaskDraft) entity.Task {
	t := s.Repo.Insert(draft)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "title": t.Title}).Debug("task created")
	}
	publishAudit(ctx, s.Events, s.Logger, "task", "created", strconv.Itoa(t.ID))
	return t
}

func (s *TaskService) Get(id int) (entity.Task, error) {
	return s.Repo.Get(id)
}

func (s *TaskService) List(filter entity.TaskFilter) []entity.Task {
	return s.Repo.List(filter)
}

func (s *TaskService) Update(ctx context.Context, id int, patch entity.TaskPatch) (entity.Task, error) {
	t, err := s.Repo.Update(id, patch)
	if err != nil {
		return entity.Task{}, err
	}
	publishAudit(ctx, s.Events, s.Logger, "task", "updated", strconv.Itoa(id))
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	if _, err := s.Repo.Delete(id); err != nil {
		return err
	}
	publishAudit(ctx, s.Events, s.Logger, "task", "deleted", strconv.Itoa(id))
	return nil
}
