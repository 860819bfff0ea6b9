package models

import "time"

// GradingPeriod is the grading window for one term/semester. Dates come from
// the academic calendar; only one period can be current at any time, enforced
// by the SetCurrent operation rather than by save-time side effects.
type GradingPeriod struct {
	BaseModel
	TermName     string `json:"term_name" gorm:"type:varchar(100);not null"` // e.g. "Term 1"
	TermNumber   int    `json:"term_number" gorm:"not null"`
	AcademicYear string `json:"academic_year" gorm:"type:varchar(20);not null"`

	StartDate time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null"`

	// Last date for teachers to enter grades.
	GradeEntryDeadline time.Time `json:"grade_entry_deadline" gorm:"type:date"`
	// Date when report cards are generated.
	ReportGenerationDate time.Time `json:"report_generation_date" gorm:"type:date"`

	IsCurrent bool `json:"is_current" gorm:"default:false;index"`
	IsActive  bool `json:"is_active" gorm:"default:true"`
}
