package router

import (
	"net/http"

	"zhanyixia/config"
	"zhanyixia/internal/handler"
	"zhanyixia/internal/middleware"
	"zhanyixia/internal/repository"
	"zhanyixia/internal/service"
	"zhanyixia/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(middleware.NewIPLimiter(&cfg.RateLimit)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	statRepo := repository.NewStatRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	uploadSvc := service.NewUploadService(cloud, cfg.Upload.Folder)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	serviceHandler := handler.NewServiceHandler(serviceRepo, uploadSvc)
	caseHandler := handler.NewCaseHandler(caseRepo)
	faqHandler := handler.NewFAQHandler(faqRepo)
	testimonialHandler := handler.NewTestimonialHandler(testimonialRepo)
	settingHandler := handler.NewSettingHandler(settingRepo)
	statHandler := handler.NewStatHandler(statRepo)
	publicHandler := handler.NewPublicHandler(serviceRepo, caseRepo, faqRepo, testimonialRepo, statRepo, settingRepo)
	dashboardHandler := handler.NewDashboardHandler(serviceRepo, faqRepo, caseRepo, testimonialRepo)
	diagHandler := handler.NewDiagHandler(db)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired(userRepo)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMw, authHandler.Logout)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
		}

		// Public site pages
		api.GET("/home", publicHandler.Home)
		api.GET("/services", publicHandler.Services)
		api.GET("/cases", publicHandler.Cases)
		api.GET("/faqs", publicHandler.FAQs)
		api.GET("/stats", publicHandler.Stats)
		api.GET("/settings", publicHandler.Settings)

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/dashboard", dashboardHandler.Overview)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.POST("/services/upload", serviceHandler.UploadImage)
			admin.GET("/services/:id", serviceHandler.Get)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.PATCH("/services/:id/status", serviceHandler.ToggleStatus)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/cases", caseHandler.List)
			admin.POST("/cases", caseHandler.Create)
			admin.GET("/cases/:id", caseHandler.Get)
			admin.PUT("/cases/:id", caseHandler.Update)
			admin.PATCH("/cases/:id/status", caseHandler.ToggleStatus)
			admin.DELETE("/cases/:id", caseHandler.Delete)

			admin.GET("/faqs", faqHandler.List)
			admin.POST("/faqs", faqHandler.Create)
			admin.GET("/faqs/:id", faqHandler.Get)
			admin.PUT("/faqs/:id", faqHandler.Update)
			admin.PATCH("/faqs/:id/status", faqHandler.ToggleStatus)
			admin.DELETE("/faqs/:id", faqHandler.Delete)

			admin.GET("/testimonials", testimonialHandler.List)
			admin.POST("/testimonials", testimonialHandler.Create)
			admin.GET("/testimonials/:id", testimonialHandler.Get)
			admin.PUT("/testimonials/:id", testimonialHandler.Update)
			admin.PATCH("/testimonials/:id/status", testimonialHandler.ToggleStatus)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.GET("/settings", settingHandler.List)
			admin.PUT("/settings", settingHandler.BulkSave)

			admin.GET("/stats", statHandler.List)
			admin.POST("/stats", statHandler.Create)
			admin.PUT("/stats/:id", statHandler.Update)
			admin.DELETE("/stats/:id", statHandler.Delete)

			admin.GET("/diag/db", diagHandler.DB)
			admin.GET("/diag/data", diagHandler.Data)
		}
	}

	return r
}
