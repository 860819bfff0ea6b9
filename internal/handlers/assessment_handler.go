package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/services"
)

// AssessmentHandler exposes assessment types and subject assessments.
type AssessmentHandler struct {
	assessmentService services.AssessmentService
	scoreService      services.ScoreService
}

func NewAssessmentHandler(
	assessmentService services.AssessmentService,
	scoreService services.ScoreService,
) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		scoreService:      scoreService,
	}
}

type CreateAssessmentTypeRequest struct {
	Name            string  `json:"name" binding:"required"`
	Code            string  `json:"code" binding:"required"`
	Description     string  `json:"description"`
	IsExam          bool    `json:"is_exam"`
	DefaultWeight   float64 `json:"default_weight" binding:"required,gte=0,lte=100"`
	DefaultMaxScore int     `json:"default_max_score"`
}

func (h *AssessmentHandler) CreateType(c *gin.Context) {
	var req CreateAssessmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessmentType, err := h.assessmentService.CreateAssessmentType(&services.CreateAssessmentTypeRequest{
		Name:            req.Name,
		Code:            req.Code,
		Description:     req.Description,
		IsExam:          req.IsExam,
		DefaultWeight:   req.DefaultWeight,
		DefaultMaxScore: req.DefaultMaxScore,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assessmentType)
}

func (h *AssessmentHandler) ListTypes(c *gin.Context) {
	activeOnly := c.DefaultQuery("status", "active") == "active"
	types, err := h.assessmentService.ListAssessmentTypes(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *AssessmentHandler) DeleteType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.assessmentService.DeleteAssessmentType(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assessment type deleted"})
}

type CreateAssessmentRequest struct {
	ClassSubjectID   uuid.UUID `json:"class_subject_id" binding:"required"`
	GradingPeriodID  uuid.UUID `json:"grading_period_id" binding:"required"`
	AssessmentTypeID uuid.UUID `json:"assessment_type_id" binding:"required"`
	Name             string    `json:"name" binding:"required"`
	MaxScore         int       `json:"max_score" binding:"gte=0"`
	Weight           float64   `json:"weight" binding:"gte=0,lte=100"`
	Description      string    `json:"description"`
	DateConducted    string    `json:"date_conducted"`
}

func (h *AssessmentHandler) Create(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dateConducted := time.Now()
	if req.DateConducted != "" {
		var err error
		if dateConducted, err = time.Parse("2006-01-02", req.DateConducted); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_conducted"})
			return
		}
	}

	assessment, err := h.assessmentService.CreateAssessment(&services.CreateAssessmentRequest{
		ClassSubjectID:   req.ClassSubjectID,
		GradingPeriodID:  req.GradingPeriodID,
		AssessmentTypeID: req.AssessmentTypeID,
		Name:             req.Name,
		MaxScore:         req.MaxScore,
		Weight:           req.Weight,
		Description:      req.Description,
		DateConducted:    dateConducted,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	assessment, err := h.assessmentService.GetAssessment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// List returns a period's assessments for one class-subject.
func (h *AssessmentHandler) List(c *gin.Context) {
	classSubjectID, ok := parseUUIDQuery(c, "class_subject_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}
	assessments, err := h.assessmentService.ListAssessments(classSubjectID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessments)
}

// Publish releases the assessment's scores to the student-facing read path.
func (h *AssessmentHandler) Publish(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	assessment, err := h.assessmentService.Publish(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.assessmentService.DeleteAssessment(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assessment deleted"})
}

// TotalWeight reports the advisory weight total for a class-subject and
// period so the UI can warn when it is not 100.
func (h *AssessmentHandler) TotalWeight(c *gin.Context) {
	classSubjectID, ok := parseUUIDQuery(c, "class_subject_id")
	if !ok {
		return
	}
	periodID, ok := parseUUIDQuery(c, "grading_period_id")
	if !ok {
		return
	}
	summary, err := h.assessmentService.TotalWeightForPeriod(classSubjectID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AverageScore returns the class average for one assessment.
func (h *AssessmentHandler) AverageScore(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	average, err := h.scoreService.AverageScore(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment_id": id, "average_score": average})
}
