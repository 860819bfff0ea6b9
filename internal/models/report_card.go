package models

import (
	"github.com/google/uuid"
)

// ReportCard is the derived student-level summary for one grading period:
// totals and GPA across the student's term grades, attendance for the
// period's date range, and the overall class position. Like TermGrade it is
// owned by the recompute operation and safe to regenerate at any time.
type ReportCard struct {
	BaseModel
	EnrollmentID    uuid.UUID `json:"enrollment_id" gorm:"type:char(36);not null;uniqueIndex:idx_report_card"`
	GradingPeriodID uuid.UUID `json:"grading_period_id" gorm:"type:char(36);not null;uniqueIndex:idx_report_card"`

	// Sum of all subject total scores.
	TotalScore *float64 `json:"total_score,omitempty" gorm:"type:decimal(6,2)"`
	// TotalScore / number of subjects.
	AverageScore *float64 `json:"average_score,omitempty" gorm:"type:decimal(6,2)"`
	// Mean of the graded subjects' grade points; ungraded subjects are
	// excluded from both the sum and the denominator.
	GPA *float64 `json:"gpa,omitempty" gorm:"column:gpa;type:decimal(4,2)"`

	// Overall rank in class, not the per-subject rank.
	ClassPosition *int `json:"class_position,omitempty"`
	TotalStudents *int `json:"total_students,omitempty"`

	DaysPresent      int      `json:"days_present" gorm:"default:0"`
	DaysAbsent       int      `json:"days_absent" gorm:"default:0"`
	DaysSchoolOpened int      `json:"days_school_opened" gorm:"default:0"`
	AttendancePct    *float64 `json:"attendance_percentage,omitempty" gorm:"column:attendance_percentage;type:decimal(5,2)"`

	ClassTeacherComment string `json:"class_teacher_comment" gorm:"type:text"`
	HeadTeacherComment  string `json:"head_teacher_comment" gorm:"type:text"`

	// Report card visible to students/guardians once published. The
	// presentation layer enforces the gate, not the engine.
	IsPublished bool `json:"is_published" gorm:"default:false;index"`

	Enrollment    StudentEnrollment `json:"enrollment" gorm:"foreignKey:EnrollmentID"`
	GradingPeriod GradingPeriod     `json:"grading_period" gorm:"foreignKey:GradingPeriodID"`
}
