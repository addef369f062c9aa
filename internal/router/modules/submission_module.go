package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/formdesk/formdesk/internal/container"
	handlers "github.com/formdesk/formdesk/internal/interface/http"
	"github.com/formdesk/formdesk/internal/interface/middleware"
)

// SubmissionModule wires the registration-form routes:
// POST /api/submit, POST /api/validate, GET /api/data, GET /api/data/:id,
// DELETE /api/data/:id, DELETE /api/data
type SubmissionModule struct {
	Handler *handlers.SubmissionHandler
}

func NewSubmissionModule(h *handlers.SubmissionHandler) *SubmissionModule {
	return &SubmissionModule{Handler: h}
}

func (m *SubmissionModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rl := middleware.RateLimit(
		container.GetRedis(),
		cfg.RateLimitMax,
		cfg.RateLimitWindow,
		middleware.KeyByIPAndPath(),
		middleware.AllowPrivateIP(),
		nil,
	)

	rg.POST("/submit", rl, m.Handler.Submit)
	rg.POST("/validate", rl, m.Handler.ValidateField)

	data := rg.Group("/data", rl)
	{
		data.GET("", m.Handler.List)
		data.GET("/:id", m.Handler.Get)
		data.DELETE("/:id", m.Handler.Delete)
		data.DELETE("", m.Handler.DeleteAll)
	}
}
