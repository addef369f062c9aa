package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formdesk/formdesk/internal/container"
	handlers "github.com/formdesk/formdesk/internal/interface/http"
	"github.com/formdesk/formdesk/internal/interface/middleware"
	"github.com/formdesk/formdesk/pkg/response"
)

// TaskModule wires the task-manager CRUD routes:
// GET /tasks, POST /tasks, PUT /tasks/:id, DELETE /tasks/:id
type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rl := middleware.RateLimit(
		container.GetRedis(),
		cfg.RateLimitMax,
		cfg.RateLimitWindow,
		middleware.KeyByIP(),
		middleware.AllowPrivateIP(),
		func(c *gin.Context) {
			response.TaskFail(c, http.StatusTooManyRequests, "Too many requests")
		},
	)

	tasks := rg.Group("/tasks", rl)
	{
		tasks.GET("", m.Handler.List)
		tasks.POST("", m.Handler.Create)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
