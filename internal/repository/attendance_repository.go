package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
)

// AttendanceRepository reads the attendance collaborator's records. The
// report card compiler depends on the date-range filtering contract here.
type AttendanceRepository interface {
	// ListForStudentInRange returns the student's records whose session date
	// falls inside [start, end], with sessions preloaded.
	ListForStudentInRange(studentID uuid.UUID, start, end time.Time) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListForStudentInRange(studentID uuid.UUID, start, end time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Preload("Session").
		Joins("JOIN attendance_sessions ON attendance_sessions.id = attendance_records.session_id").
		Where("attendance_records.student_id = ? AND attendance_sessions.date >= ? AND attendance_sessions.date <= ?",
			studentID, start, end).
		Find(&records).Error
	return records, err
}
