package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"lokerhub/internal/middleware"
	"lokerhub/internal/repository"
	"lokerhub/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cloud         cloudinary.Client
	jobseekerRepo *repository.JobseekerRepository
	companyRepo   *repository.CompanyRepository
}

func NewUploadHandler(cloud cloudinary.Client, jobseekerRepo *repository.JobseekerRepository, companyRepo *repository.CompanyRepository) *UploadHandler {
	return &UploadHandler{cloud: cloud, jobseekerRepo: jobseekerRepo, companyRepo: companyRepo}
}

func openUpload(c *gin.Context) (multipart.File, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return nil, false
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return nil, false
	}
	return f, true
}

func publicID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

// UploadAvatar stores a jobseeker avatar and saves the URL on the profile.
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	f, ok := openUpload(c)
	if !ok {
		return
	}
	defer f.Close()
	folder := "lokerhub/avatars/" + strconv.FormatUint(uint64(userID), 10)
	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID("avatar"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	if err := h.jobseekerRepo.UpdateFields(userID, map[string]interface{}{"avatar_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadResume stores a jobseeker resume (raw document) and saves the URL.
func (h *UploadHandler) UploadResume(c *gin.Context) {
	userID := middleware.GetUserID(c)
	f, ok := openUpload(c)
	if !ok {
		return
	}
	defer f.Close()
	folder := "lokerhub/resumes/" + strconv.FormatUint(uint64(userID), 10)
	url, err := h.cloud.UploadFile(c.Request.Context(), f, folder, publicID("resume"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	if err := h.jobseekerRepo.UpdateFields(userID, map[string]interface{}{"resume_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadLogo stores a company logo and saves the URL on the profile.
func (h *UploadHandler) UploadLogo(c *gin.Context) {
	userID := middleware.GetUserID(c)
	f, ok := openUpload(c)
	if !ok {
		return
	}
	defer f.Close()
	folder := "lokerhub/logos/" + strconv.FormatUint(uint64(userID), 10)
	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID("logo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	if err := h.companyRepo.UpdateFields(userID, map[string]interface{}{"logo_url": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
