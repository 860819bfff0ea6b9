package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
)

type GradingPeriodRepository interface {
	Create(period *models.GradingPeriod) error
	GetByID(id uuid.UUID) (*models.GradingPeriod, error)
	List(activeOnly bool) ([]models.GradingPeriod, error)
	GetCurrent() (*models.GradingPeriod, error)
	Update(period *models.GradingPeriod) error
	Delete(id uuid.UUID) error

	// SetCurrent atomically clears the previous current flag and marks the
	// given period current within one transaction.
	SetCurrent(id uuid.UUID) error

	CountAssessments(periodID uuid.UUID) (int64, error)
}

type gradingPeriodRepository struct {
	db *gorm.DB
}

func NewGradingPeriodRepository(db *gorm.DB) GradingPeriodRepository {
	return &gradingPeriodRepository{db: db}
}

func (r *gradingPeriodRepository) Create(period *models.GradingPeriod) error {
	return r.db.Create(period).Error
}

func (r *gradingPeriodRepository) GetByID(id uuid.UUID) (*models.GradingPeriod, error) {
	var period models.GradingPeriod
	err := r.db.Where("id = ?", id).First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *gradingPeriodRepository) List(activeOnly bool) ([]models.GradingPeriod, error) {
	var periods []models.GradingPeriod
	query := r.db.Order("academic_year DESC, term_number DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&periods).Error
	return periods, err
}

func (r *gradingPeriodRepository) GetCurrent() (*models.GradingPeriod, error) {
	var period models.GradingPeriod
	err := r.db.Where("is_current = ?", true).First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *gradingPeriodRepository) Update(period *models.GradingPeriod) error {
	return r.db.Save(period).Error
}

func (r *gradingPeriodRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GradingPeriod{}, "id = ?", id).Error
}

func (r *gradingPeriodRepository) SetCurrent(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GradingPeriod{}).
			Where("is_current = ?", true).
			Update("is_current", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.GradingPeriod{}).
			Where("id = ?", id).
			Update("is_current", true).Error
	})
}

func (r *gradingPeriodRepository) CountAssessments(periodID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SubjectAssessment{}).
		Where("grading_period_id = ?", periodID).
		Count(&count).Error
	return count, err
}
