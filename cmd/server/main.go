package main

import (
	"log"

	"github.com/VishvKaneria/dynamic-active-lms/internal/config"
	"github.com/VishvKaneria/dynamic-active-lms/internal/database"
	"github.com/VishvKaneria/dynamic-active-lms/internal/handlers"
	"github.com/VishvKaneria/dynamic-active-lms/internal/middleware"
	"github.com/VishvKaneria/dynamic-active-lms/internal/models"
	"github.com/VishvKaneria/dynamic-active-lms/internal/services"

	_ "github.com/VishvKaneria/dynamic-active-lms/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Dynamic Active LMS API
// @version         1.0
// @description     Quiz management API for a K-12 LMS: teachers create quizzes and read analytics, students take quizzes.
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService()
	submissionService := services.NewSubmissionService(db)
	analyticsService := services.NewAnalyticsService()
	insightsService := services.NewInsightsService(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService, submissionService)
	studentHandler := handlers.NewStudentHandler(quizService, scoringService, submissionService)
	insightsHandler := handlers.NewInsightsHandler(quizService, submissionService, analyticsService, insightsService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "LMS backend is running"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		teacher := api.Group("/teacher")
		teacher.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleTeacher))
		{
			teacher.POST("/quizzes", quizHandler.CreateQuiz)
			teacher.GET("/quizzes", quizHandler.ListQuizzes)
			teacher.GET("/quizzes/:id", quizHandler.GetQuiz)
			teacher.DELETE("/quizzes/:id", quizHandler.DeleteQuiz)
			teacher.GET("/quizzes/:id/submissions", quizHandler.ListSubmissions)
			teacher.GET("/quizzes/:id/insights", insightsHandler.GetInsights)
		}

		student := api.Group("/student")
		student.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleStudent))
		{
			student.GET("/quizzes", studentHandler.ListQuizzes)
			student.GET("/quizzes/:id", studentHandler.GetQuiz)
			student.POST("/quizzes/:id/submit", studentHandler.Submit)
			student.GET("/results", studentHandler.MyResults)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
