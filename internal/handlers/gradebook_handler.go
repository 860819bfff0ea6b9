package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Latiftanga/SIS/internal/services"
)

// GradebookHandler exposes term grade recalculation and read models.
type GradebookHandler struct {
	gradebookService services.GradebookService
}

func NewGradebookHandler(gradebookService services.GradebookService) *GradebookHandler {
	return &GradebookHandler{gradebookService: gradebookService}
}

// Recalculate recomputes one student's term grade for a class-subject.
func (h *GradebookHandler) Recalculate(c *gin.Context) {
	enrollmentID, ok := parseUUIDQuery(c, "enrollment_id")
	if !ok {
		return
	}
	classSubjectID, ok := parseUUIDQuery(c, "class_subject_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	termGrade, err := h.gradebookService.CalculateScores(enrollmentID, classSubjectID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, termGrade)
}

// RecalculateClass recomputes and re-ranks the whole class-subject, the
// staff "recalculate" action.
func (h *GradebookHandler) RecalculateClass(c *gin.Context) {
	classSubjectID, ok := parseUUIDQuery(c, "class_subject_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	processed, err := h.gradebookService.CalculateClassScores(classSubjectID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students_processed": processed})
}

// ListClass returns the ranked term grades for one class-subject.
func (h *GradebookHandler) ListClass(c *gin.Context) {
	classSubjectID, ok := parseUUIDQuery(c, "class_subject_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	termGrades, err := h.gradebookService.ListClassTermGrades(classSubjectID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, termGrades)
}

// ListStudent returns one student's term grades across subjects.
func (h *GradebookHandler) ListStudent(c *gin.Context) {
	enrollmentID, ok := parseUUIDQuery(c, "enrollment_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}

	termGrades, err := h.gradebookService.ListStudentTermGrades(enrollmentID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, termGrades)
}
