package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/formdesk/formdesk/internal/application"
	"github.com/formdesk/formdesk/internal/domain/entity"
	repo "github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/pkg/response"
	"github.com/formdesk/formdesk/pkg/validation"
)

const taskNotFoundMessage = "Task not found"

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Completed   bool   `json:"completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

// bindingMessage flattens binding error details into the task surface's
// single-message shape. A missing title keeps its historical wording.
func bindingMessage(err error) string {
	details := validation.ToDetails(err)
	if msg, ok := details["title"]; ok {
		if msg == "is required" {
			return "Title is required"
		}
		return "title " + msg
	}
	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	if len(fields) == 0 {
		return "Invalid request body"
	}
	return fields[0] + " " + details[fields[0]]
}

func (h *TaskHandler) List(c *gin.Context) {
	filter, err := application.ParseFilter(c.Query("filter"))
	if err != nil {
		response.TaskFail(c, http.StatusBadRequest, "Invalid filter")
		return
	}
	response.Task(c, http.StatusOK, h.Svc.List(filter))
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.TaskFail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}
	t := h.Svc.Create(c.Request.Context(), entity.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.Priority(req.Priority),
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	response.Task(c, http.StatusCreated, t)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.TaskFail(c, http.StatusBadRequest, "Invalid task id")
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.TaskFail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}
	patch := entity.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		p := entity.Priority(*req.Priority)
		patch.Priority = &p
	}
	t, err := h.Svc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, repo.ErrNotFound) {
		response.TaskFail(c, http.StatusNotFound, taskNotFoundMessage)
		return
	}
	if err != nil {
		h.Logger.WithError(err).WithField("task_id", id).Error("task update failed")
		response.TaskFail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Task(c, http.StatusOK, t)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.TaskFail(c, http.StatusBadRequest, "Invalid task id")
		return
	}
	err = h.Svc.Delete(c.Request.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		response.TaskFail(c, http.StatusNotFound, taskNotFoundMessage)
		return
	}
	if err != nil {
		h.Logger.WithError(err).WithField("task_id", id).Error("task delete failed")
		response.TaskFail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Status(http.StatusNoContent)
}
