package models

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentType is a reusable assessment template (Class Test, Assignment,
// End of Term Exam, ...) with default weight and max score. Codes are stored
// uppercased and must be unique.
type AssessmentType struct {
	BaseModel
	Name        string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Code        string `json:"code" gorm:"type:varchar(10);uniqueIndex;not null"` // e.g. CT, ASG, EXAM
	Description string `json:"description" gorm:"type:text"`

	// Marks this type as an end-of-term exam for the CA/exam split.
	IsExam bool `json:"is_exam" gorm:"default:false"`

	DefaultWeight   float64 `json:"default_weight" gorm:"type:decimal(5,2);not null"` // percentage 0-100
	DefaultMaxScore int     `json:"default_max_score" gorm:"default:100"`

	IsActive bool `json:"is_active" gorm:"default:true"`
}

// SubjectAssessment is one concrete gradable event for a class-subject in a
// grading period (e.g. "Mid-Term Math Test"). Weight and max score may
// override the type's defaults. Weights for a (class-subject, period) are
// expected to total 100 but this is advisory only, so teachers can add
// assessments incrementally.
type SubjectAssessment struct {
	BaseModel
	ClassSubjectID   uuid.UUID `json:"class_subject_id" gorm:"type:char(36);not null;index:idx_assessment_subject_period"`
	GradingPeriodID  uuid.UUID `json:"grading_period_id" gorm:"type:char(36);not null;index:idx_assessment_subject_period"`
	AssessmentTypeID uuid.UUID `json:"assessment_type_id" gorm:"type:char(36);not null;index"`

	Name        string  `json:"name" gorm:"type:varchar(200);not null"`
	MaxScore    int     `json:"max_score" gorm:"default:100"`
	Weight      float64 `json:"weight" gorm:"type:decimal(5,2);not null"` // percentage of the final grade
	Description string  `json:"description" gorm:"type:text"`

	DateConducted time.Time `json:"date_conducted" gorm:"type:date"`

	// Students can view their scores once published.
	IsPublished bool `json:"is_published" gorm:"default:false;index"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"type:char(36)"`

	ClassSubject   ClassSubject   `json:"class_subject" gorm:"foreignKey:ClassSubjectID"`
	GradingPeriod  GradingPeriod  `json:"grading_period" gorm:"foreignKey:GradingPeriodID"`
	AssessmentType AssessmentType `json:"assessment_type" gorm:"foreignKey:AssessmentTypeID"`
}
