package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// AttendanceSession is one attendance-taking event for a class on a date.
// Attendance capture belongs to a collaborator subsystem; the report card
// compiler only reads these records back for a date range.
type AttendanceSession struct {
	BaseModel
	ClassID     uuid.UUID `json:"class_id" gorm:"type:char(36);not null;index:idx_session_class_date"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index:idx_session_class_date"`
	SessionType string    `json:"session_type" gorm:"type:varchar(20);default:'daily'"` // daily, subject
	IsFinalized bool      `json:"is_finalized" gorm:"default:false"`

	Class Class `json:"class" gorm:"foreignKey:ClassID"`
}

// AttendanceRecord is one student's status for one session.
type AttendanceRecord struct {
	BaseModel
	SessionID    uuid.UUID `json:"session_id" gorm:"type:char(36);not null;uniqueIndex:idx_session_student"`
	StudentID    uuid.UUID `json:"student_id" gorm:"type:char(36);not null;uniqueIndex:idx_session_student"`
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"type:char(36);not null;index"`

	Status  string `json:"status" gorm:"type:varchar(20);default:'present'"`
	Remarks string `json:"remarks" gorm:"type:text"`

	Session AttendanceSession `json:"session" gorm:"foreignKey:SessionID"`
	Student Student           `json:"student" gorm:"foreignKey:StudentID"`
}
