package models

import (
	"github.com/google/uuid"
)

// StudentGrade is one student's raw score for one assessment. Exactly one row
// exists per (assessment, student). An excused grade carries no score and is
// left out of every aggregate, it is not treated as zero.
type StudentGrade struct {
	BaseModel
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"type:char(36);not null;uniqueIndex:idx_assessment_student"`
	StudentID    uuid.UUID `json:"student_id" gorm:"type:char(36);not null;uniqueIndex:idx_assessment_student"`
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"type:char(36);not null;index"`

	// Score obtained, bounded by [0, assessment.max_score]. Nil when the
	// grade has not been entered yet or the student is excused.
	Score     *float64 `json:"score,omitempty" gorm:"type:decimal(6,2)"`
	IsExcused bool     `json:"is_excused" gorm:"default:false"`
	Remarks   string   `json:"remarks" gorm:"type:text"`

	GradedBy *uuid.UUID `json:"graded_by,omitempty" gorm:"type:char(36)"`

	Assessment SubjectAssessment `json:"assessment" gorm:"foreignKey:AssessmentID"`
	Student    Student           `json:"student" gorm:"foreignKey:StudentID"`
	Enrollment StudentEnrollment `json:"enrollment" gorm:"foreignKey:EnrollmentID"`
}

// GetPercentage returns the score as a percentage of the assessment's max
// score, or nil for excused/absent grades. The assessment must be loaded.
func (g *StudentGrade) GetPercentage() *float64 {
	if g.Score == nil || g.IsExcused || g.Assessment.MaxScore == 0 {
		return nil
	}
	pct := (*g.Score / float64(g.Assessment.MaxScore)) * 100
	return &pct
}

// GetWeightedScore returns the grade's weighted contribution to the final
// term grade, or nil when there is no percentage to weight.
func (g *StudentGrade) GetWeightedScore() *float64 {
	pct := g.GetPercentage()
	if pct == nil {
		return nil
	}
	weighted := (*pct * g.Assessment.Weight) / 100
	return &weighted
}
