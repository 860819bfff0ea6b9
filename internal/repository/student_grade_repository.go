package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Latiftanga/SIS/internal/models"
)

type StudentGradeRepository interface {
	// Upsert writes the grade keyed by (assessment, student) in a single
	// statement so concurrent entries cannot produce duplicate rows.
	Upsert(grade *models.StudentGrade) error
	GetByAssessmentAndStudent(assessmentID, studentID uuid.UUID) (*models.StudentGrade, error)
	ListByAssessment(assessmentID uuid.UUID) ([]models.StudentGrade, error)
	ListByEnrollmentAndPeriod(enrollmentID, periodID uuid.UUID) ([]models.StudentGrade, error)
	Delete(id uuid.UUID) error
}

type studentGradeRepository struct {
	db *gorm.DB
}

func NewStudentGradeRepository(db *gorm.DB) StudentGradeRepository {
	return &studentGradeRepository{db: db}
}

func (r *studentGradeRepository) Upsert(grade *models.StudentGrade) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assessment_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"enrollment_id", "score", "is_excused", "remarks", "graded_by", "updated_at",
		}),
	}).Create(grade).Error
}

func (r *studentGradeRepository) GetByAssessmentAndStudent(assessmentID, studentID uuid.UUID) (*models.StudentGrade, error) {
	var grade models.StudentGrade
	err := r.db.Preload("Assessment").Preload("Assessment.AssessmentType").
		Where("assessment_id = ? AND student_id = ?", assessmentID, studentID).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *studentGradeRepository) ListByAssessment(assessmentID uuid.UUID) ([]models.StudentGrade, error) {
	var grades []models.StudentGrade
	err := r.db.Preload("Assessment").Preload("Student").
		Where("assessment_id = ?", assessmentID).
		Find(&grades).Error
	return grades, err
}

func (r *studentGradeRepository) ListByEnrollmentAndPeriod(enrollmentID, periodID uuid.UUID) ([]models.StudentGrade, error) {
	var grades []models.StudentGrade
	err := r.db.Preload("Assessment").Preload("Assessment.AssessmentType").
		Joins("JOIN subject_assessments ON subject_assessments.id = student_grades.assessment_id").
		Where("student_grades.enrollment_id = ? AND subject_assessments.grading_period_id = ?", enrollmentID, periodID).
		Find(&grades).Error
	return grades, err
}

func (r *studentGradeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StudentGrade{}, "id = ?", id).Error
}
