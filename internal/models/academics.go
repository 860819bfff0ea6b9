package models

import (
	"github.com/google/uuid"
)

// The models in this file belong to the enrollment/class collaborators.
// The grading engine reads them as given and never validates their contents.

// Student is a learner registered with the school.
type Student struct {
	BaseModel
	StudentID string `json:"student_id" gorm:"type:varchar(50);uniqueIndex;not null"` // admission number
	FirstName string `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(100);not null"`
	Gender    string `json:"gender" gorm:"type:varchar(10)"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
}

// GetFullName returns the student's display name.
func (s *Student) GetFullName() string {
	return s.FirstName + " " + s.LastName
}

// Subject is a course taught at the school (e.g. Mathematics).
type Subject struct {
	BaseModel
	Name     string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Code     string `json:"code" gorm:"type:varchar(20);uniqueIndex;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// Class is one class group for one academic year (e.g. Basic 7A).
type Class struct {
	BaseModel
	Name         string `json:"name" gorm:"type:varchar(100);not null"`
	GradeLevel   string `json:"grade_level" gorm:"type:varchar(50)"`
	AcademicYear string `json:"academic_year" gorm:"type:varchar(20)"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// ClassSubject assigns a subject (and its teacher) to a class.
type ClassSubject struct {
	BaseModel
	ClassID   uuid.UUID `json:"class_id" gorm:"type:char(36);not null;uniqueIndex:idx_class_subject"`
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:char(36);not null;uniqueIndex:idx_class_subject"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty" gorm:"type:char(36)"`

	Class   Class   `json:"class" gorm:"foreignKey:ClassID"`
	Subject Subject `json:"subject" gorm:"foreignKey:SubjectID"`
}

// StudentEnrollment places a student in one class for one academic year.
type StudentEnrollment struct {
	BaseModel
	StudentID    uuid.UUID `json:"student_id" gorm:"type:char(36);not null;uniqueIndex:idx_student_year"`
	ClassID      uuid.UUID `json:"class_id" gorm:"type:char(36);not null"`
	AcademicYear string    `json:"academic_year" gorm:"type:varchar(20);not null;uniqueIndex:idx_student_year"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'active'"` // active, transferred, withdrawn

	Student Student `json:"student" gorm:"foreignKey:StudentID"`
	Class   Class   `json:"class" gorm:"foreignKey:ClassID"`
}
