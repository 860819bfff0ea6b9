package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
)

type GradingScaleRepository interface {
	Create(band *models.GradingScale) error
	GetByGrade(grade string) (*models.GradingScale, error)
	// List returns the scale ordered by min_score descending, the order the
	// resolver walks when bands overlap.
	List() ([]models.GradingScale, error)
	Update(band *models.GradingScale) error
	Delete(id uuid.UUID) error
}

type gradingScaleRepository struct {
	db *gorm.DB
}

func NewGradingScaleRepository(db *gorm.DB) GradingScaleRepository {
	return &gradingScaleRepository{db: db}
}

func (r *gradingScaleRepository) Create(band *models.GradingScale) error {
	return r.db.Create(band).Error
}

func (r *gradingScaleRepository) GetByGrade(grade string) (*models.GradingScale, error) {
	var band models.GradingScale
	err := r.db.Where("grade = ?", grade).First(&band).Error
	if err != nil {
		return nil, err
	}
	return &band, nil
}

func (r *gradingScaleRepository) List() ([]models.GradingScale, error) {
	var bands []models.GradingScale
	err := r.db.Order("min_score DESC").Find(&bands).Error
	return bands, err
}

func (r *gradingScaleRepository) Update(band *models.GradingScale) error {
	return r.db.Save(band).Error
}

func (r *gradingScaleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GradingScale{}, "id = ?", id).Error
}
