package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Latiftanga/SIS/internal/config"
	"github.com/Latiftanga/SIS/internal/handlers"
	"github.com/Latiftanga/SIS/internal/repository"
	"github.com/Latiftanga/SIS/internal/services"
	"github.com/Latiftanga/SIS/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Repositories
	periodRepo := repository.NewGradingPeriodRepository(db.DB)
	assessmentRepo := repository.NewAssessmentRepository(db.DB)
	gradeRepo := repository.NewStudentGradeRepository(db.DB)
	scaleRepo := repository.NewGradingScaleRepository(db.DB)
	termGradeRepo := repository.NewTermGradeRepository(db.DB)
	reportCardRepo := repository.NewReportCardRepository(db.DB)
	conductRepo := repository.NewConductGradeRepository(db.DB)
	attendanceRepo := repository.NewAttendanceRepository(db.DB)
	enrollmentRepo := repository.NewEnrollmentRepository(db.DB)

	// Services
	periodService := services.NewGradingPeriodService(periodRepo)
	scaleService := services.NewGradingScaleService(scaleRepo)
	assessmentService := services.NewAssessmentService(assessmentRepo)
	scoreService := services.NewScoreService(gradeRepo, assessmentRepo)
	gradebookService := services.NewGradebookService(
		termGradeRepo, assessmentRepo, gradeRepo, enrollmentRepo, scaleService)
	reportCardService := services.NewReportCardService(
		reportCardRepo, termGradeRepo, conductRepo, attendanceRepo, enrollmentRepo, periodRepo)

	// Handlers
	periodHandler := handlers.NewGradingPeriodHandler(periodService)
	scaleHandler := handlers.NewGradingScaleHandler(scaleService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, scoreService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	gradebookHandler := handlers.NewGradebookHandler(gradebookService)
	reportCardHandler := handlers.NewReportCardHandler(reportCardService)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "school": cfg.SchoolName})
	})

	api := router.Group("/api/grading")
	{
		// Grading periods
		api.POST("/periods", periodHandler.Create)
		api.GET("/periods", periodHandler.List)
		api.GET("/periods/current", periodHandler.GetCurrent)
		api.GET("/periods/:id", periodHandler.Get)
		api.POST("/periods/:id/set-current", periodHandler.SetCurrent)
		api.DELETE("/periods/:id", periodHandler.Delete)

		// Grading scale
		api.POST("/scale", scaleHandler.Create)
		api.GET("/scale", scaleHandler.List)
		api.DELETE("/scale/:id", scaleHandler.Delete)
		api.GET("/scale/resolve", scaleHandler.Resolve)
		api.GET("/scale/consistency", scaleHandler.CheckConsistency)

		// Assessment types
		api.POST("/assessment-types", assessmentHandler.CreateType)
		api.GET("/assessment-types", assessmentHandler.ListTypes)
		api.DELETE("/assessment-types/:id", assessmentHandler.DeleteType)

		// Assessments
		api.POST("/assessments", assessmentHandler.Create)
		api.GET("/assessments", assessmentHandler.List)
		api.GET("/assessments/weight-total", assessmentHandler.TotalWeight)
		api.GET("/assessments/:id", assessmentHandler.Get)
		api.POST("/assessments/:id/publish", assessmentHandler.Publish)
		api.DELETE("/assessments/:id", assessmentHandler.Delete)
		api.GET("/assessments/:id/average", assessmentHandler.AverageScore)
		api.GET("/assessments/:id/scores", scoreHandler.List)

		// Score entry
		api.POST("/scores", scoreHandler.Record)
		api.POST("/scores/batch", scoreHandler.RecordBatch)

		// Term grades
		api.POST("/term-grades/recalculate", gradebookHandler.Recalculate)
		api.POST("/term-grades/recalculate-class", gradebookHandler.RecalculateClass)
		api.GET("/term-grades/class", gradebookHandler.ListClass)
		api.GET("/term-grades/student", gradebookHandler.ListStudent)

		// Report cards
		api.POST("/report-cards/generate", reportCardHandler.Generate)
		api.POST("/report-cards/generate-class", reportCardHandler.GenerateClass)
		api.GET("/report-cards", reportCardHandler.Get)
		api.GET("/report-cards/class", reportCardHandler.ListClass)
		api.POST("/report-cards/:id/publish", reportCardHandler.Publish)

		// Conduct grades
		api.POST("/conduct-grades", reportCardHandler.RecordConduct)
		api.GET("/conduct-grades", reportCardHandler.ListConduct)
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("Starting %s grading API on %s", cfg.SchoolName, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
