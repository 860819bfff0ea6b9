package services

import "errors"

// Validation errors are caller-correctable and surfaced immediately, never
// silently corrected. Referential-protection errors block deletes that would
// corrupt grading history. Consistency findings (weight totals, scale gaps)
// are returned as values, not errors.
var (
	ErrDuplicateCode      = errors.New("assessment type code already exists")
	ErrScoreOutOfRange    = errors.New("score is outside the assessment's allowed range")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidConductArea = errors.New("unknown conduct area")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")

	ErrAssessmentTypeInUse = errors.New("assessment type is referenced by existing assessments")
	ErrGradingPeriodInUse  = errors.New("grading period is referenced by existing assessments")
)
