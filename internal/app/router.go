package app

import (
	"quizhub_backend/docs"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/middleware"
	"quizhub_backend/pkg/monitoring"
	"quizhub_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	// 1. 答题端（无需登录）
	a.registerPublicRoutes(api, c, cfg)

	// 2. 管理端
	a.registerAdminRoutes(api, c, s)
}

func (a *App) registerPublicRoutes(api *gin.RouterGroup, c *controllers, cfg *config.Config) {
	public := api.Group("/public")
	{
		public.GET("/quizzes", c.public.ListQuizzes)
		public.GET("/quizzes/:slug", c.public.GetQuiz)

		// 提交接口单独限流
		submit := []gin.HandlerFunc{c.public.SubmitAttempt}
		if cfg.RateLimit.AttemptMaxRequests > 0 {
			submit = append([]gin.HandlerFunc{security.RateLimiter(a.ctx, cfg.RateLimit.AttemptMaxRequests, cfg.RateLimit.Window())}, submit...)
		}
		public.POST("/quizzes/:slug/attempts", submit...)
	}
}

func (a *App) registerAdminRoutes(api *gin.RouterGroup, c *controllers, s *services) {
	admin := api.Group("/admin")
	admin.POST("/login", c.auth.Login)
	admin.POST("/logout", c.auth.Logout)

	authorized := admin.Group("")
	authorized.Use(middleware.AdminAuthMiddleware(s.auth))
	{
		authorized.GET("/session", c.auth.Session)

		authorized.GET("/quizzes", c.quiz.ListQuizzes)
		authorized.POST("/quizzes", c.quiz.CreateQuiz)
		authorized.GET("/quizzes/:id", c.quiz.GetQuiz)
		authorized.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		authorized.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
		authorized.GET("/quizzes/:id/attempts", c.quiz.ListAttempts)
		authorized.POST("/quizzes/:id/export", c.quiz.ExportQuiz)
		authorized.GET("/quizzes/:id/exports/:name", c.quiz.DownloadExport)

		authorized.POST("/quizzes/:id/questions", c.question.UpsertQuestion)
		authorized.DELETE("/quizzes/:id/questions/:questionId", c.question.DeleteQuestion)
		authorized.POST("/quizzes/:id/questions/:questionId/options", c.question.UpsertOption)
		authorized.DELETE("/quizzes/:id/questions/:questionId/options/:optionId", c.question.DeleteOption)
	}
}
