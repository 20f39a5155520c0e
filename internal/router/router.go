package router

import (
	"time"

	"lokerhub/config"
	"lokerhub/internal/domain"
	"lokerhub/internal/handler"
	"lokerhub/internal/middleware"
	"lokerhub/internal/repository"
	"lokerhub/internal/service"
	"lokerhub/internal/ws"
	"lokerhub/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Skip gin.Logger() to reduce log noise; use gin.Default() if you need request logging
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, time.Minute)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	jobseekerRepo := repository.NewJobseekerRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	savedRepo := repository.NewSavedJobRepository(db)

	hub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	notifSvc := service.NewNotificationService(notificationRepo, hub)
	workflowSvc := service.NewWorkflowService(appRepo, jobRepo, notifSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	meHandler := handler.NewMeHandler(userRepo, jobseekerRepo, companyRepo, jobRepo, appRepo)
	jobHandler := handler.NewJobHandler(jobRepo, savedRepo, companyRepo, notifSvc)
	appHandler := handler.NewApplicationHandler(workflowSvc, appRepo)
	savedHandler := handler.NewSavedJobHandler(savedRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	uploadHandler := handler.NewUploadHandler(cloud, jobseekerRepo, companyRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	companyOnly := middleware.RequireRole(domain.RoleCompany)
	jobseekerOnly := middleware.RequireRole(domain.RoleJobseeker)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMw, authHandler.Logout)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// Public browse surface
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.PATCH("/profile", meHandler.UpdateProfile)
			me.GET("/dashboard", meHandler.GetDashboard)
			me.GET("/notifications", notificationHandler.List)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			me.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
			me.DELETE("/notifications", notificationHandler.DeleteAll)
			me.GET("/applications", jobseekerOnly, appHandler.ListMine)
			me.GET("/saved-jobs", jobseekerOnly, savedHandler.List)
			me.POST("/avatar", jobseekerOnly, uploadHandler.UploadAvatar)
			me.POST("/resume", jobseekerOnly, uploadHandler.UploadResume)
			me.POST("/logo", companyOnly, uploadHandler.UploadLogo)
		}

		api.POST("/applications", authMw, jobseekerOnly, appHandler.Apply)
		api.POST("/saved-jobs/:job_id/toggle", authMw, jobseekerOnly, savedHandler.Toggle)

		company := api.Group("/company")
		company.Use(authMw, companyOnly)
		{
			company.GET("/jobs", jobHandler.ListMine)
			company.POST("/jobs", jobHandler.Create)
			company.PATCH("/jobs/:id", jobHandler.Update)
			company.DELETE("/jobs/:id", jobHandler.Delete)
			company.GET("/applications", appHandler.ListApplicants)
			company.GET("/interviews", appHandler.ListInterviews)
			company.PUT("/applications/:id/status", appHandler.UpdateStatus)
			company.PUT("/applications/:id/interview", appHandler.ScheduleInterview)
		}
	}

	r.GET("/ws/notifications", ws.UpgradeNotificationWS(&cfg.JWT, hub))

	return r
}
