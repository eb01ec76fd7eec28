package app

import (
	"career_guidance_backend/docs"
	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/middleware"
	"career_guidance_backend/internal/model"
	"career_guidance_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/verify", c.auth.Verify)
		authGroup.GET("/users/level-status", c.user.LevelStatus)

		assessment := authGroup.Group("/assessment")
		{
			assessment.GET("/questions", c.assessment.GetQuestions)
			assessment.POST("/submit", c.assessment.Submit)
			assessment.GET("/my-result", c.assessment.MyResult)
			assessment.GET("/results/:id", c.assessment.GetResult)
			assessment.GET("/results/:id/report", c.assessment.DownloadReport)
		}
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.admin.Dashboard)
		admin.GET("/students", c.admin.Students)
		admin.GET("/students/:id", c.admin.Student)
		admin.DELETE("/students/:id", c.admin.DeleteStudent)
		admin.GET("/students/:id/report", c.admin.StudentReport)
		admin.GET("/reports/bulk", c.admin.BulkReports)
		admin.GET("/analytics/assessments", c.admin.Analytics)
	}
}
