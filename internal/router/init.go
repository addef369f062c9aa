package router

import (
	"context"

	"github.com/formdesk/formdesk/internal/application"
	"github.com/formdesk/formdesk/internal/container"
	repo "github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/internal/infrastructure/kv"
	"github.com/formdesk/formdesk/internal/infrastructure/memory"
	handlers "github.com/formdesk/formdesk/internal/interface/http"
	"github.com/formdesk/formdesk/internal/router/modules"
)

type TaskModuleDeps struct {
	Repo    repo.TaskRepository
	Service *application.TaskService
	Handler *handlers.TaskHandler
}

type SubmissionModuleDeps struct {
	Repo    repo.SubmissionRepository
	Service *application.SubmissionService
	Handler *handlers.SubmissionHandler
}

func buildTaskDeps() TaskModuleDeps {
	store := memory.NewTaskStore()
	service := application.NewTaskService(store, container.GetLogger(), events())
	handler := handlers.NewTaskHandler(service, container.GetLogger())
	return TaskModuleDeps{Repo: store, Service: service, Handler: handler}
}

func buildSubmissionDeps() SubmissionModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	var persist kv.Store
	if cfg.PersistEnabled && container.GetRedis() != nil {
		persist = kv.NewRedisStore(container.GetRedis())
	}
	store := memory.NewSubmissionStore(persist, cfg.PersistKey, logger)
	if err := store.LoadSnapshot(context.Background()); err != nil {
		logger.WithError(err).Warn("submission snapshot load failed, starting empty")
	}

	service := application.NewSubmissionService(store, logger, events())
	handler := handlers.NewSubmissionHandler(service, logger, cfg.RecentLimit)
	return SubmissionModuleDeps{Repo: store, Service: service, Handler: handler}
}

// events returns the shared publisher, or nil so services skip auditing.
// The concrete type must be unwrapped to avoid a typed-nil interface.
func events() application.EventPublisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	taskDeps := buildTaskDeps()
	r.AddRoot(modules.NewTaskModule(taskDeps.Handler))

	subDeps := buildSubmissionDeps()
	r.AddAPI(modules.NewSubmissionModule(subDeps.Handler))

	if container.GetConfig().DebugMetricsEnabled {
		r.AddRoot(modules.NewDebugModule())
	}
}
