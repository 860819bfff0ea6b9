package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
)

// EnrollmentRepository reads the enrollment collaborator's records. The
// engine trusts these as given and does not re-validate enrollment status.
type EnrollmentRepository interface {
	GetByID(id uuid.UUID) (*models.StudentEnrollment, error)
	ListByClass(classID uuid.UUID) ([]models.StudentEnrollment, error)
	GetClassSubject(id uuid.UUID) (*models.ClassSubject, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) GetByID(id uuid.UUID) (*models.StudentEnrollment, error) {
	var enrollment models.StudentEnrollment
	err := r.db.Preload("Student").Where("id = ?", id).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) ListByClass(classID uuid.UUID) ([]models.StudentEnrollment, error) {
	var enrollments []models.StudentEnrollment
	err := r.db.Preload("Student").
		Where("class_id = ? AND status = ?", classID, "active").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) GetClassSubject(id uuid.UUID) (*models.ClassSubject, error) {
	var classSubject models.ClassSubject
	err := r.db.Preload("Class").Preload("Subject").
		Where("id = ?", id).First(&classSubject).Error
	if err != nil {
		return nil, err
	}
	return &classSubject, nil
}
