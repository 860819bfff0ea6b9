package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Latiftanga/SIS/internal/services"
)

// GradingPeriodHandler exposes grading period administration.
type GradingPeriodHandler struct {
	periodService services.GradingPeriodService
}

func NewGradingPeriodHandler(periodService services.GradingPeriodService) *GradingPeriodHandler {
	return &GradingPeriodHandler{periodService: periodService}
}

// CreateGradingPeriodRequest is the JSON body for creating a period. Dates
// use YYYY-MM-DD.
type CreateGradingPeriodRequest struct {
	TermName             string `json:"term_name" binding:"required"`
	TermNumber           int    `json:"term_number" binding:"required"`
	AcademicYear         string `json:"academic_year" binding:"required"`
	StartDate            string `json:"start_date" binding:"required"`
	EndDate              string `json:"end_date" binding:"required"`
	GradeEntryDeadline   string `json:"grade_entry_deadline"`
	ReportGenerationDate string `json:"report_generation_date"`
}

func (h *GradingPeriodHandler) Create(c *gin.Context) {
	var req CreateGradingPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}
	deadline := end
	if req.GradeEntryDeadline != "" {
		if deadline, err = time.Parse("2006-01-02", req.GradeEntryDeadline); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grade_entry_deadline"})
			return
		}
	}
	reportDate := end
	if req.ReportGenerationDate != "" {
		if reportDate, err = time.Parse("2006-01-02", req.ReportGenerationDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report_generation_date"})
			return
		}
	}

	period, err := h.periodService.Create(&services.CreateGradingPeriodRequest{
		TermName:             req.TermName,
		TermNumber:           req.TermNumber,
		AcademicYear:         req.AcademicYear,
		StartDate:            start,
		EndDate:              end,
		GradeEntryDeadline:   deadline,
		ReportGenerationDate: reportDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, period)
}

func (h *GradingPeriodHandler) List(c *gin.Context) {
	activeOnly := c.Query("status") == "active"
	periods, err := h.periodService.List(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

func (h *GradingPeriodHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	period, err := h.periodService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, period)
}

func (h *GradingPeriodHandler) GetCurrent(c *gin.Context) {
	period, err := h.periodService.GetCurrent()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, period)
}

// SetCurrent marks the period as the single current one.
func (h *GradingPeriodHandler) SetCurrent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	period, err := h.periodService.SetCurrent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, period)
}

func (h *GradingPeriodHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.periodService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "grading period deleted"})
}
