package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/formdesk/formdesk/internal/application"
	repo "github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/pkg/response"
	"github.com/formdesk/formdesk/pkg/validation"
)

const recordNotFoundMessage = "Record not found"

type SubmissionHandler struct {
	Svc    *application.SubmissionService
	Logger *logrus.Logger
	// RecentLimit is how many records a bare ?recent returns.
	RecentLimit int
}

func NewSubmissionHandler(svc *application.SubmissionService, logger *logrus.Logger, recentLimit int) *SubmissionHandler {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &SubmissionHandler{Svc: svc, Logger: logger, RecentLimit: recentLimit}
}

// submitRequest carries the raw form payload. Field rules are enforced by
// the validation engine, not binding tags, so every rule is reported in one
// exhaustive pass.
type submitRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Age             int    `json:"age"`
	Country         string `json:"country"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Website         string `json:"website"`
	Message         string `json:"message"`
	Agreement       bool   `json:"agreement"`
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	rec, details, err := h.Svc.Submit(c.Request.Context(), validation.SubmissionInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Age:             req.Age,
		Country:         req.Country,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Website:         req.Website,
		Message:         req.Message,
		Agreement:       req.Agreement,
	})
	if errors.Is(err, repo.ErrStorage) {
		response.Fail(c, http.StatusServiceUnavailable, "Storage unavailable, please try again", nil)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("submission failed")
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if len(details) > 0 {
		response.Fail(c, http.StatusBadRequest, "Validation failed", details)
		return
	}
	response.Created(c, http.StatusOK, "Form submitted successfully", rec, rec.ID)
}

// validateFieldRequest asks for a single-field check, mirroring the form's
// per-field feedback as the user tabs through it.
type validateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (h *SubmissionHandler) ValidateField(c *gin.Context) {
	var req validateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	if err := validation.Field(req.Field, req.Value); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", map[string]string{req.Field: err.Error()})
		return
	}
	data := gin.H{"field": req.Field}
	if req.Field == "password" {
		data["strength"] = validation.PasswordStrength(req.Value)
	}
	response.OK(c, http.StatusOK, "Field is valid", data)
}

func (h *SubmissionHandler) List(c *gin.Context) {
	if val, ok := c.GetQuery("recent"); ok {
		n := h.RecentLimit
		if val != "" {
			parsed, err := strconv.Atoi(val)
			if err != nil || parsed < 1 {
				response.Fail(c, http.StatusBadRequest, "Invalid recent parameter", nil)
				return
			}
			n = parsed
		}
		recs := h.Svc.Recent(n)
		response.Listed(c, http.StatusOK, recs, len(recs))
		return
	}
	recs := h.Svc.List()
	response.Listed(c, http.StatusOK, recs, len(recs))
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Param("id"))
	if errors.Is(err, repo.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, recordNotFoundMessage, nil)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("record fetch failed")
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.OK(c, http.StatusOK, "", rec)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repo.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, recordNotFoundMessage, nil)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("record delete failed")
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.OK(c, http.StatusOK, "Record deleted", nil)
}

func (h *SubmissionHandler) DeleteAll(c *gin.Context) {
	n := h.Svc.DeleteAll(c.Request.Context())
	response.OK(c, http.StatusOK, "All records deleted", gin.H{"deleted": n})
}
