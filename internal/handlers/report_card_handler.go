package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/services"
)

// ReportCardHandler exposes report card generation, publication and conduct
// grade entry.
type ReportCardHandler struct {
	reportCardService services.ReportCardService
}

func NewReportCardHandler(reportCardService services.ReportCardService) *ReportCardHandler {
	return &ReportCardHandler{reportCardService: reportCardService}
}

// Generate recomputes one student's report card.
func (h *ReportCardHandler) Generate(c *gin.Context) {
	enrollmentID, ok := parseUUIDQuery(c, "enrollment_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	reportCard, err := h.reportCardService.CalculateOverallMetrics(enrollmentID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportCard)
}

// GenerateClass recomputes and re-ranks every report card in the class.
func (h *ReportCardHandler) GenerateClass(c *gin.Context) {
	classID, ok := parseUUIDQuery(c, "class_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	generated, err := h.reportCardService.GenerateClassReports(classID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports_generated": generated})
}

func (h *ReportCardHandler) Get(c *gin.Context) {
	enrollmentID, ok := parseUUIDQuery(c, "enrollment_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	reportCard, err := h.reportCardService.GetReportCard(enrollmentID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportCard)
}

// ListClass returns the ranked report cards for one class.
func (h *ReportCardHandler) ListClass(c *gin.Context) {
	classID, ok := parseUUIDQuery(c, "class_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	reportCards, err := h.reportCardService.ListClassReports(classID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportCards)
}

// Publish releases the report card to students/guardians.
func (h *ReportCardHandler) Publish(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	reportCard, err := h.reportCardService.Publish(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportCard)
}

type RecordConductRequest struct {
	EnrollmentID    uuid.UUID `json:"enrollment_id" binding:"required"`
	GradingPeriodID uuid.UUID `json:"grading_period_id" binding:"required"`
	ConductArea     string    `json:"conduct_area" binding:"required"`
	Rating          int       `json:"rating" binding:"required,min=1,max=5"`
	Comments        string    `json:"comments"`
}

func (h *ReportCardHandler) RecordConduct(c *gin.Context) {
	var req RecordConductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, err := h.reportCardService.RecordConductGrade(&services.RecordConductRequest{
		EnrollmentID:    req.EnrollmentID,
		GradingPeriodID: req.GradingPeriodID,
		ConductArea:     req.ConductArea,
		Rating:          req.Rating,
		Comments:        req.Comments,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grade)
}

func (h *ReportCardHandler) ListConduct(c *gin.Context) {
	enrollmentID, ok := parseUUIDQuery(c, "enrollment_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	grades, err := h.reportCardService.ListConductGrades(enrollmentID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grades)
}
