package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"lokerhub/internal/domain"
	"lokerhub/internal/middleware"
	"lokerhub/internal/models"
	"lokerhub/internal/repository"
	"lokerhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JobHandler struct {
	jobRepo     *repository.JobRepository
	savedRepo   *repository.SavedJobRepository
	companyRepo *repository.CompanyRepository
	notifSvc    *service.NotificationService
}

func NewJobHandler(jobRepo *repository.JobRepository, savedRepo *repository.SavedJobRepository, companyRepo *repository.CompanyRepository, notifSvc *service.NotificationService) *JobHandler {
	return &JobHandler{jobRepo: jobRepo, savedRepo: savedRepo, companyRepo: companyRepo, notifSvc: notifSvc}
}

type jobRequest struct {
	Title        string `json:"title" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=Fulltime Parttime Internship Contract"`
	Location     string `json:"location"`
	SalaryMin    int64  `json:"salary_min"`
	SalaryMax    int64  `json:"salary_max"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	IsActive     *bool  `json:"is_active"`
}

// Create posts a new job for the authenticated company. Posting an active
// job fans out to jobseekers who saved one of the company's jobs.
func (h *JobHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	job := &models.Job{
		CompanyID:    userID,
		Title:        req.Title,
		Type:         req.Type,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsActive:     active,
	}
	if err := h.jobRepo.Create(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if job.IsActive {
		h.fanOutNewJob(userID, job)
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) fanOutNewJob(companyUserID uint, job *models.Job) {
	ids, err := h.savedRepo.ListSaverIDsByCompanyID(companyUserID)
	if err != nil {
		log.Printf("[jobs] new job fan-out skipped: %v", err)
		return
	}
	companyName := ""
	if p, err := h.companyRepo.GetByUserID(companyUserID); err == nil {
		companyName = p.CompanyName
	}
	h.notifSvc.NotifyNewJob(ids, job, companyName)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Title        *string `json:"title"`
		Type         *string `json:"type"`
		Location     *string `json:"location"`
		SalaryMin    *int64  `json:"salary_min"`
		SalaryMax    *int64  `json:"salary_max"`
		Description  *string `json:"description"`
		Requirements *string `json:"requirements"`
		IsActive     *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Type != nil {
		if !domain.ValidJobType(*req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job type"})
			return
		}
		fields["type"] = *req.Type
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if err := h.jobRepo.UpdateFields(uint(id), userID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.jobRepo.Delete(uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// List returns active postings for the explore view, newest first.
func (h *JobHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	search := c.Query("search")
	jobType := c.Query("type")
	if jobType != "" && !domain.ValidJobType(jobType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job type"})
		return
	}
	list, err := h.jobRepo.ListActive(search, jobType, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": list})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	job, err := h.jobRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListMine returns the authenticated company's postings including inactive ones.
func (h *JobHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.jobRepo.ListByCompanyID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": list})
}
