package handler

import (
	"net/http"

	"lokerhub/internal/domain"
	"lokerhub/internal/middleware"
	"lokerhub/internal/repository"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo      *repository.UserRepository
	jobseekerRepo *repository.JobseekerRepository
	companyRepo   *repository.CompanyRepository
	jobRepo       *repository.JobRepository
	appRepo       *repository.ApplicationRepository
}

func NewMeHandler(userRepo *repository.UserRepository, jobseekerRepo *repository.JobseekerRepository, companyRepo *repository.CompanyRepository, jobRepo *repository.JobRepository, appRepo *repository.ApplicationRepository) *MeHandler {
	return &MeHandler{userRepo: userRepo, jobseekerRepo: jobseekerRepo, companyRepo: companyRepo, jobRepo: jobRepo, appRepo: appRepo}
}

// GetProfile returns the user record with its role profile expanded.
func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	out := gin.H{"user": u}
	switch u.Role {
	case domain.RoleJobseeker:
		if p, err := h.jobseekerRepo.GetByUserID(userID); err == nil {
			out["profile"] = p
		}
	case domain.RoleCompany:
		if p, err := h.companyRepo.GetByUserID(userID); err == nil {
			out["profile"] = p
		}
	}
	c.JSON(http.StatusOK, out)
}

// UpdateProfile applies a partial update to the caller's role profile.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	role, _ := c.Get("role")
	switch role {
	case domain.RoleJobseeker:
		var req struct {
			FirstName *string `json:"first_name"`
			LastName  *string `json:"last_name"`
			Headline  *string `json:"headline"`
			Bio       *string `json:"bio"`
			Phone     *string `json:"phone"`
			Skills    *string `json:"skills"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fields := map[string]interface{}{}
		setIf(fields, "first_name", req.FirstName)
		setIf(fields, "last_name", req.LastName)
		setIf(fields, "headline", req.Headline)
		setIf(fields, "bio", req.Bio)
		setIf(fields, "phone", req.Phone)
		setIf(fields, "skills", req.Skills)
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}
		if err := h.jobseekerRepo.UpdateFields(userID, fields); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
	case domain.RoleCompany:
		var req struct {
			CompanyName *string `json:"company_name"`
			PICName     *string `json:"pic_name"`
			Industry    *string `json:"industry"`
			Website     *string `json:"website"`
			Address     *string `json:"address"`
			Description *string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fields := map[string]interface{}{}
		setIf(fields, "company_name", req.CompanyName)
		setIf(fields, "pic_name", req.PICName)
		setIf(fields, "industry", req.Industry)
		setIf(fields, "website", req.Website)
		setIf(fields, "address", req.Address)
		setIf(fields, "description", req.Description)
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}
		if err := h.companyRepo.UpdateFields(userID, fields); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func setIf(fields map[string]interface{}, key string, v *string) {
	if v != nil {
		fields[key] = *v
	}
}

// GetDashboard returns the headline counts for the caller's dashboard.
func (h *MeHandler) GetDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	role, _ := c.Get("role")
	switch role {
	case domain.RoleCompany:
		stats, err := h.jobRepo.StatsByCompanyID(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
			return
		}
		c.JSON(http.StatusOK, stats)
	case domain.RoleJobseeker:
		counts, err := h.appRepo.CountByJobseekerPerStatus(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
			return
		}
		var total int64
		byStatus := gin.H{}
		for _, s := range domain.Statuses {
			byStatus[string(s)] = counts[s]
			total += counts[s]
		}
		c.JSON(http.StatusOK, gin.H{"total_applications": total, "by_status": byStatus})
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
