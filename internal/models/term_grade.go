package models

import (
	"github.com/google/uuid"
)

// TermGrade is the derived per-subject summary for one student in one grading
// period. It is owned by the recompute operation: every recalculation fully
// overwrites the derived fields, and rows are safe to delete and regenerate.
// It must never feed anything other than display.
type TermGrade struct {
	BaseModel
	EnrollmentID    uuid.UUID `json:"enrollment_id" gorm:"type:char(36);not null;uniqueIndex:idx_term_grade"`
	ClassSubjectID  uuid.UUID `json:"class_subject_id" gorm:"type:char(36);not null;uniqueIndex:idx_term_grade"`
	GradingPeriodID uuid.UUID `json:"grading_period_id" gorm:"type:char(36);not null;uniqueIndex:idx_term_grade"`

	// Sum of weighted non-exam contributions.
	ContinuousAssessmentScore *float64 `json:"continuous_assessment_score,omitempty" gorm:"type:decimal(6,2)"`
	// Sum of weighted exam contributions.
	ExamScore *float64 `json:"exam_score,omitempty" gorm:"type:decimal(6,2)"`
	// CA + exam.
	TotalScore *float64 `json:"total_score,omitempty" gorm:"type:decimal(6,2)"`

	Grade      string   `json:"grade" gorm:"type:varchar(2)"` // empty when no scale band matched
	GradePoint *float64 `json:"grade_point,omitempty" gorm:"type:decimal(3,2)"`

	// 1-indexed rank within the subject's class for the period.
	ClassPosition *int `json:"class_position,omitempty"`

	TeacherComment string `json:"teacher_comment" gorm:"type:text"`

	Enrollment    StudentEnrollment `json:"enrollment" gorm:"foreignKey:EnrollmentID"`
	ClassSubject  ClassSubject      `json:"class_subject" gorm:"foreignKey:ClassSubjectID"`
	GradingPeriod GradingPeriod     `json:"grading_period" gorm:"foreignKey:GradingPeriodID"`
}
