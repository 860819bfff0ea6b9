package models

import (
	"github.com/google/uuid"
)

// Conduct areas rated on report cards.
const (
	ConductAttendance   = "attendance"
	ConductPunctuality  = "punctuality"
	ConductNeatness     = "neatness"
	ConductPoliteness   = "politeness"
	ConductHonesty      = "honesty"
	ConductLeadership   = "leadership"
	ConductRelationship = "relationship" // relationship with others
	ConductAttitude     = "attitude"     // attitude to work
)

// ConductAreas lists every rateable conduct area.
var ConductAreas = []string{
	ConductAttendance,
	ConductPunctuality,
	ConductNeatness,
	ConductPoliteness,
	ConductHonesty,
	ConductLeadership,
	ConductRelationship,
	ConductAttitude,
}

// ConductGrade is an independent 1-5 rating of one conduct area for one
// student in one grading period. There is no aggregation over conduct grades.
type ConductGrade struct {
	BaseModel
	EnrollmentID    uuid.UUID `json:"enrollment_id" gorm:"type:char(36);not null;uniqueIndex:idx_conduct_grade"`
	GradingPeriodID uuid.UUID `json:"grading_period_id" gorm:"type:char(36);not null;uniqueIndex:idx_conduct_grade"`

	ConductArea string `json:"conduct_area" gorm:"type:varchar(20);not null;uniqueIndex:idx_conduct_grade"`
	Rating      int    `json:"rating" gorm:"not null"` // 5 Excellent ... 1 Needs Improvement

	Comments string `json:"comments" gorm:"type:text"`

	Enrollment    StudentEnrollment `json:"enrollment" gorm:"foreignKey:EnrollmentID"`
	GradingPeriod GradingPeriod     `json:"grading_period" gorm:"foreignKey:GradingPeriodID"`
}

// ValidConductArea reports whether area is one of the rateable areas.
func ValidConductArea(area string) bool {
	for _, a := range ConductAreas {
		if a == area {
			return true
		}
	}
	return false
}
