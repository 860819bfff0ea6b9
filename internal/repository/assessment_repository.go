package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
)

type AssessmentRepository interface {
	// Assessment types
	CreateType(assessmentType *models.AssessmentType) error
	GetTypeByID(id uuid.UUID) (*models.AssessmentType, error)
	GetTypeByCode(code string) (*models.AssessmentType, error)
	ListTypes(activeOnly bool) ([]models.AssessmentType, error)
	UpdateType(assessmentType *models.AssessmentType) error
	DeleteType(id uuid.UUID) error
	CountAssessmentsByType(typeID uuid.UUID) (int64, error)

	// Subject assessments
	Create(assessment *models.SubjectAssessment) error
	GetByID(id uuid.UUID) (*models.SubjectAssessment, error)
	ListForPeriod(classSubjectID, periodID uuid.UUID) ([]models.SubjectAssessment, error)
	Update(assessment *models.SubjectAssessment) error
	Delete(id uuid.UUID) error
	TotalWeight(classSubjectID, periodID uuid.UUID) (float64, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Assessment type CRUD

func (r *assessmentRepository) CreateType(assessmentType *models.AssessmentType) error {
	return r.db.Create(assessmentType).Error
}

func (r *assessmentRepository) GetTypeByID(id uuid.UUID) (*models.AssessmentType, error) {
	var assessmentType models.AssessmentType
	err := r.db.Where("id = ?", id).First(&assessmentType).Error
	if err != nil {
		return nil, err
	}
	return &assessmentType, nil
}

func (r *assessmentRepository) GetTypeByCode(code string) (*models.AssessmentType, error) {
	var assessmentType models.AssessmentType
	err := r.db.Where("code = ?", code).First(&assessmentType).Error
	if err != nil {
		return nil, err
	}
	return &assessmentType, nil
}

func (r *assessmentRepository) ListTypes(activeOnly bool) ([]models.AssessmentType, error) {
	var types []models.AssessmentType
	query := r.db.Order("is_exam DESC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&types).Error
	return types, err
}

func (r *assessmentRepository) UpdateType(assessmentType *models.AssessmentType) error {
	return r.db.Save(assessmentType).Error
}

func (r *assessmentRepository) DeleteType(id uuid.UUID) error {
	return r.db.Delete(&models.AssessmentType{}, "id = ?", id).Error
}

func (r *assessmentRepository) CountAssessmentsByType(typeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SubjectAssessment{}).
		Where("assessment_type_id = ?", typeID).
		Count(&count).Error
	return count, err
}

// Subject assessment CRUD

func (r *assessmentRepository) Create(assessment *models.SubjectAssessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) GetByID(id uuid.UUID) (*models.SubjectAssessment, error) {
	var assessment models.SubjectAssessment
	err := r.db.Preload("AssessmentType").Preload("ClassSubject").
		Where("id = ?", id).First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) ListForPeriod(classSubjectID, periodID uuid.UUID) ([]models.SubjectAssessment, error) {
	var assessments []models.SubjectAssessment
	err := r.db.Preload("AssessmentType").
		Where("class_subject_id = ? AND grading_period_id = ?", classSubjectID, periodID).
		Order("date_conducted DESC").Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) Update(assessment *models.SubjectAssessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SubjectAssessment{}, "id = ?", id).Error
}

func (r *assessmentRepository) TotalWeight(classSubjectID, periodID uuid.UUID) (float64, error) {
	var total *float64
	err := r.db.Model(&models.SubjectAssessment{}).
		Where("class_subject_id = ? AND grading_period_id = ?", classSubjectID, periodID).
		Select("SUM(weight)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
