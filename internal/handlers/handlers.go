package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/services"
)

// respondError maps engine errors to HTTP statuses: validation errors are
// 400, referential-protection errors 409, missing rows 404.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrDuplicateCode),
		errors.Is(err, services.ErrScoreOutOfRange),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidConductArea),
		errors.Is(err, services.ErrInvalidRating):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrAssessmentTypeInUse),
		errors.Is(err, services.ErrGradingPeriodInUse):
		status = http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseUUIDParam parses a UUID path parameter, replying 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery parses a required UUID query parameter.
func parseUUIDQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing " + name})
		return uuid.Nil, false
	}
	return id, true
}
