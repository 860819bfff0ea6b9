package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Latiftanga/SIS/internal/models"
)

type ConductGradeRepository interface {
	// Upsert writes the rating keyed by (enrollment, grading_period,
	// conduct_area).
	Upsert(grade *models.ConductGrade) error
	ListForEnrollment(enrollmentID, periodID uuid.UUID) ([]models.ConductGrade, error)
	Delete(id uuid.UUID) error
}

type conductGradeRepository struct {
	db *gorm.DB
}

func NewConductGradeRepository(db *gorm.DB) ConductGradeRepository {
	return &conductGradeRepository{db: db}
}

func (r *conductGradeRepository) Upsert(grade *models.ConductGrade) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "enrollment_id"}, {Name: "grading_period_id"}, {Name: "conduct_area"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comments", "updated_at"}),
	}).Create(grade).Error
}

func (r *conductGradeRepository) ListForEnrollment(enrollmentID, periodID uuid.UUID) ([]models.ConductGrade, error) {
	var grades []models.ConductGrade
	err := r.db.
		Where("enrollment_id = ? AND grading_period_id = ?", enrollmentID, periodID).
		Order("conduct_area ASC").Find(&grades).Error
	return grades, err
}

func (r *conductGradeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ConductGrade{}, "id = ?", id).Error
}
