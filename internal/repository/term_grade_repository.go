package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Latiftanga/SIS/internal/models"
)

type TermGradeRepository interface {
	// Upsert writes the derived row keyed by (enrollment, class_subject,
	// grading_period), fully overwriting previous derived values.
	Upsert(termGrade *models.TermGrade) error
	GetFor(enrollmentID, classSubjectID, periodID uuid.UUID) (*models.TermGrade, error)
	// ListForClassSubject returns the subject's term grades for a period
	// ordered by total_score descending, the ranking order.
	ListForClassSubject(classSubjectID, periodID uuid.UUID) ([]models.TermGrade, error)
	ListForEnrollment(enrollmentID, periodID uuid.UUID) ([]models.TermGrade, error)
	UpdatePosition(id uuid.UUID, position int) error
	Delete(id uuid.UUID) error
}

type termGradeRepository struct {
	db *gorm.DB
}

func NewTermGradeRepository(db *gorm.DB) TermGradeRepository {
	return &termGradeRepository{db: db}
}

func (r *termGradeRepository) Upsert(termGrade *models.TermGrade) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "enrollment_id"}, {Name: "class_subject_id"}, {Name: "grading_period_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"continuous_assessment_score", "exam_score", "total_score",
			"grade", "grade_point", "updated_at",
		}),
	}).Create(termGrade).Error
}

func (r *termGradeRepository) GetFor(enrollmentID, classSubjectID, periodID uuid.UUID) (*models.TermGrade, error) {
	var termGrade models.TermGrade
	err := r.db.
		Where("enrollment_id = ? AND class_subject_id = ? AND grading_period_id = ?",
			enrollmentID, classSubjectID, periodID).
		First(&termGrade).Error
	if err != nil {
		return nil, err
	}
	return &termGrade, nil
}

func (r *termGradeRepository) ListForClassSubject(classSubjectID, periodID uuid.UUID) ([]models.TermGrade, error) {
	var termGrades []models.TermGrade
	err := r.db.Preload("Enrollment.Student").
		Where("class_subject_id = ? AND grading_period_id = ?", classSubjectID, periodID).
		Order("total_score DESC").Find(&termGrades).Error
	return termGrades, err
}

func (r *termGradeRepository) ListForEnrollment(enrollmentID, periodID uuid.UUID) ([]models.TermGrade, error) {
	var termGrades []models.TermGrade
	err := r.db.Preload("ClassSubject.Subject").
		Where("enrollment_id = ? AND grading_period_id = ?", enrollmentID, periodID).
		Find(&termGrades).Error
	return termGrades, err
}

func (r *termGradeRepository) UpdatePosition(id uuid.UUID, position int) error {
	return r.db.Model(&models.TermGrade{}).
		Where("id = ?", id).
		Update("class_position", position).Error
}

func (r *termGradeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TermGrade{}, "id = ?", id).Error
}
