package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/services"
)

// GradingScaleHandler exposes the school's grading scale.
type GradingScaleHandler struct {
	scaleService services.GradingScaleService
}

func NewGradingScaleHandler(scaleService services.GradingScaleService) *GradingScaleHandler {
	return &GradingScaleHandler{scaleService: scaleService}
}

type CreateBandRequest struct {
	Grade          string  `json:"grade" binding:"required"`
	MinScore       float64 `json:"min_score" binding:"gte=0,lte=100"`
	MaxScore       float64 `json:"max_score" binding:"gte=0,lte=100"`
	Interpretation string  `json:"interpretation"`
	GradePoint     float64 `json:"grade_point" binding:"gte=0"`
	Remarks        string  `json:"remarks"`
	IsPassing      bool    `json:"is_passing"`
}

func (h *GradingScaleHandler) Create(c *gin.Context) {
	var req CreateBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	band := &models.GradingScale{
		Grade:          req.Grade,
		MinScore:       req.MinScore,
		MaxScore:       req.MaxScore,
		Interpretation: req.Interpretation,
		GradePoint:     req.GradePoint,
		Remarks:        req.Remarks,
		IsPassing:      req.IsPassing,
	}
	if err := h.scaleService.CreateBand(band); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, band)
}

func (h *GradingScaleHandler) List(c *gin.Context) {
	bands, err := h.scaleService.ListScale()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bands)
}

func (h *GradingScaleHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.scaleService.DeleteBand(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "grading scale band deleted"})
}

// Resolve looks up the grade for a score, mostly for UI preview.
func (h *GradingScaleHandler) Resolve(c *gin.Context) {
	score, err := strconv.ParseFloat(c.Query("score"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing score"})
		return
	}

	band, err := h.scaleService.ResolveGrade(score)
	if err != nil {
		respondError(c, err)
		return
	}
	if band == nil {
		c.JSON(http.StatusOK, gin.H{"score": score, "grade": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score, "grade": band})
}

// CheckConsistency reports gaps and overlaps in the configured scale.
// Findings are advisory; the engine computes with whatever exists.
func (h *GradingScaleHandler) CheckConsistency(c *gin.Context) {
	warnings, err := h.scaleService.CheckConsistency()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"warnings": warnings, "consistent": len(warnings) == 0})
}
