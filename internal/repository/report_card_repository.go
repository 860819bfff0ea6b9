package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Latiftanga/SIS/internal/models"
)

type ReportCardRepository interface {
	// Upsert writes the derived row keyed by (enrollment, grading_period).
	Upsert(reportCard *models.ReportCard) error
	GetByID(id uuid.UUID) (*models.ReportCard, error)
	GetFor(enrollmentID, periodID uuid.UUID) (*models.ReportCard, error)
	// ListForClass returns the class's report cards for a period ordered by
	// average_score descending, the overall ranking order.
	ListForClass(classID, periodID uuid.UUID) ([]models.ReportCard, error)
	Update(reportCard *models.ReportCard) error
	UpdateRank(id uuid.UUID, position, totalStudents int) error
	Delete(id uuid.UUID) error
}

type reportCardRepository struct {
	db *gorm.DB
}

func NewReportCardRepository(db *gorm.DB) ReportCardRepository {
	return &reportCardRepository{db: db}
}

func (r *reportCardRepository) Upsert(reportCard *models.ReportCard) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "enrollment_id"}, {Name: "grading_period_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_score", "average_score", "gpa",
			"days_present", "days_absent", "days_school_opened", "attendance_percentage",
			"updated_at",
		}),
	}).Create(reportCard).Error
}

func (r *reportCardRepository) GetByID(id uuid.UUID) (*models.ReportCard, error) {
	var reportCard models.ReportCard
	err := r.db.Preload("Enrollment.Student").Preload("GradingPeriod").
		Where("id = ?", id).First(&reportCard).Error
	if err != nil {
		return nil, err
	}
	return &reportCard, nil
}

func (r *reportCardRepository) GetFor(enrollmentID, periodID uuid.UUID) (*models.ReportCard, error) {
	var reportCard models.ReportCard
	err := r.db.
		Where("enrollment_id = ? AND grading_period_id = ?", enrollmentID, periodID).
		First(&reportCard).Error
	if err != nil {
		return nil, err
	}
	return &reportCard, nil
}

func (r *reportCardRepository) ListForClass(classID, periodID uuid.UUID) ([]models.ReportCard, error) {
	var reportCards []models.ReportCard
	err := r.db.Preload("Enrollment.Student").
		Joins("JOIN student_enrollments ON student_enrollments.id = report_cards.enrollment_id").
		Where("student_enrollments.class_id = ? AND report_cards.grading_period_id = ?", classID, periodID).
		Order("report_cards.average_score DESC").
		Find(&reportCards).Error
	return reportCards, err
}

func (r *reportCardRepository) Update(reportCard *models.ReportCard) error {
	return r.db.Save(reportCard).Error
}

func (r *reportCardRepository) UpdateRank(id uuid.UUID, position, totalStudents int) error {
	return r.db.Model(&models.ReportCard{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"class_position": position,
			"total_students": totalStudents,
		}).Error
}

func (r *reportCardRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ReportCard{}, "id = ?", id).Error
}
