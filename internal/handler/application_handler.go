package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"lokerhub/internal/domain"
	"lokerhub/internal/middleware"
	"lokerhub/internal/repository"
	"lokerhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	workflow *service.WorkflowService
	appRepo  *repository.ApplicationRepository
}

func NewApplicationHandler(workflow *service.WorkflowService, appRepo *repository.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{workflow: workflow, appRepo: appRepo}
}

// respondWorkflowError maps the workflow error taxonomy onto HTTP statuses.
// Every one of these is terminal for the request; nothing was mutated.
func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this resource"})
	case errors.Is(err, domain.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": "already applied to this job"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "status transition not allowed"})
	case errors.Is(err, domain.ErrStaleTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "application was updated by someone else, reload and retry"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}

// Apply creates a Pending application for the authenticated jobseeker.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		JobID       uint   `json:"job_id" binding:"required"`
		CoverLetter string `json:"cover_letter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.workflow.Apply(userID, req.JobID, req.CoverLetter)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus advances an application through the workflow on behalf of the
// owning company.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Status domain.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.workflow.Transition(userID, uint(id), req.Status)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ScheduleInterview sets or reschedules interview details while the
// application is in Interview.
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		InterviewDate  time.Time `json:"interview_date" binding:"required"`
		InterviewLink  string    `json:"interview_link"`
		InterviewNotes string    `json:"interview_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.workflow.ScheduleInterview(userID, uint(id), req.InterviewDate, req.InterviewLink, req.InterviewNotes)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListMine returns the authenticated jobseeker's applications with job and
// company expanded.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.appRepo.ListByJobseekerID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": list})
}

// ListApplicants returns applications across the company's jobs, optionally
// filtered by status.
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	status := domain.Status(c.Query("status"))
	if status != "" && !domain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	list, err := h.appRepo.ListByCompanyID(userID, status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": list})
}

// ListInterviews returns the company's interview pipeline ordered by date,
// unscheduled ones first so they get a slot.
func (h *ApplicationHandler) ListInterviews(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.appRepo.ListInterviewsByCompanyID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": list})
}
