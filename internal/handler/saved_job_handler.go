package handler

import (
	"net/http"
	"strconv"

	"lokerhub/internal/middleware"
	"lokerhub/internal/repository"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	repo *repository.SavedJobRepository
}

func NewSavedJobHandler(repo *repository.SavedJobRepository) *SavedJobHandler {
	return &SavedJobHandler{repo: repo}
}

// Toggle flips the bookmark for (user, job) and reports the resulting state.
func (h *SavedJobHandler) Toggle(c *gin.Context) {
	userID := middleware.GetUserID(c)
	jobID, _ := strconv.ParseUint(c.Param("job_id"), 10, 64)
	if jobID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}
	saved, err := h.repo.Toggle(userID, uint(jobID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "toggle failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *SavedJobHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListByUserID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_jobs": list})
}
