package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/services"
)

// ScoreHandler exposes raw score entry for staff.
type ScoreHandler struct {
	scoreService services.ScoreService
}

func NewScoreHandler(scoreService services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

type RecordScoreRequest struct {
	AssessmentID uuid.UUID  `json:"assessment_id" binding:"required"`
	StudentID    uuid.UUID  `json:"student_id" binding:"required"`
	EnrollmentID uuid.UUID  `json:"enrollment_id" binding:"required"`
	Score        *float64   `json:"score"`
	IsExcused    bool       `json:"is_excused"`
	Remarks      string     `json:"remarks"`
	GradedBy     *uuid.UUID `json:"graded_by"`
}

func (h *ScoreHandler) Record(c *gin.Context) {
	var req RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, err := h.scoreService.RecordScore(&services.RecordScoreRequest{
		AssessmentID: req.AssessmentID,
		StudentID:    req.StudentID,
		EnrollmentID: req.EnrollmentID,
		Score:        req.Score,
		IsExcused:    req.IsExcused,
		Remarks:      req.Remarks,
		GradedBy:     req.GradedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grade)
}

// RecordBatch saves a whole grade-entry sheet in one request. Rows that fail
// validation are reported without aborting the rest.
func (h *ScoreHandler) RecordBatch(c *gin.Context) {
	var reqs []RecordScoreRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries := make([]services.RecordScoreRequest, 0, len(reqs))
	for _, req := range reqs {
		entries = append(entries, services.RecordScoreRequest{
			AssessmentID: req.AssessmentID,
			StudentID:    req.StudentID,
			EnrollmentID: req.EnrollmentID,
			Score:        req.Score,
			IsExcused:    req.IsExcused,
			Remarks:      req.Remarks,
			GradedBy:     req.GradedBy,
		})
	}

	result, err := h.scoreService.RecordScores(entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// List returns every recorded score for one assessment.
func (h *ScoreHandler) List(c *gin.Context) {
	assessmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	grades, err := h.scoreService.ListScores(assessmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grades)
}
