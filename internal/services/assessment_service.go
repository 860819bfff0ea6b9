package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// CreateAssessmentTypeRequest carries the fields for a new assessment type.
type CreateAssessmentTypeRequest struct {
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Description     string  `json:"description"`
	IsExam          bool    `json:"is_exam"`
	DefaultWeight   float64 `json:"default_weight"`
	DefaultMaxScore int     `json:"default_max_score"`
}

// CreateAssessmentRequest carries the fields for a new subject assessment.
// MaxScore and Weight fall back to the type's defaults when zero.
type CreateAssessmentRequest struct {
	ClassSubjectID   uuid.UUID  `json:"class_subject_id"`
	GradingPeriodID  uuid.UUID  `json:"grading_period_id"`
	AssessmentTypeID uuid.UUID  `json:"assessment_type_id"`
	Name             string     `json:"name"`
	MaxScore         int        `json:"max_score"`
	Weight           float64    `json:"weight"`
	Description      string     `json:"description"`
	DateConducted    time.Time  `json:"date_conducted"`
	CreatedBy        *uuid.UUID `json:"created_by,omitempty"`
}

// WeightSummary is the advisory weight total for a (class-subject, period).
type WeightSummary struct {
	TotalWeight float64 `json:"total_weight"`
	IsComplete  bool    `json:"is_complete"` // true when the total is exactly 100
	// true when adding more weight would push the total past 100
	ExceedsHundred bool `json:"exceeds_hundred"`
}

type AssessmentService interface {
	CreateAssessmentType(req *CreateAssessmentTypeRequest) (*models.AssessmentType, error)
	UpdateAssessmentType(assessmentType *models.AssessmentType) error
	ListAssessmentTypes(activeOnly bool) ([]models.AssessmentType, error)
	// DeleteAssessmentType fails with ErrAssessmentTypeInUse while any
	// assessment references the type.
	DeleteAssessmentType(id uuid.UUID) error

	CreateAssessment(req *CreateAssessmentRequest) (*models.SubjectAssessment, error)
	GetAssessment(id uuid.UUID) (*models.SubjectAssessment, error)
	ListAssessments(classSubjectID, periodID uuid.UUID) ([]models.SubjectAssessment, error)
	DeleteAssessment(id uuid.UUID) error

	// Publish makes the assessment's scores visible to the student-facing
	// read path. Idempotent; scores remain editable by staff afterwards.
	Publish(id uuid.UUID) (*models.SubjectAssessment, error)

	// TotalWeightForPeriod exposes the advisory weight total so callers can
	// warn when a subject's assessments do not add up to 100.
	TotalWeightForPeriod(classSubjectID, periodID uuid.UUID) (*WeightSummary, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
}

func NewAssessmentService(assessmentRepo repository.AssessmentRepository) AssessmentService {
	return &assessmentService{assessmentRepo: assessmentRepo}
}

func (s *assessmentService) CreateAssessmentType(req *CreateAssessmentTypeRequest) (*models.AssessmentType, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	existing, err := s.assessmentRepo.GetTypeByCode(code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	maxScore := req.DefaultMaxScore
	if maxScore == 0 {
		maxScore = 100
	}

	assessmentType := &models.AssessmentType{
		Name:            req.Name,
		Code:            code,
		Description:     req.Description,
		IsExam:          req.IsExam,
		DefaultWeight:   req.DefaultWeight,
		DefaultMaxScore: maxScore,
		IsActive:        true,
	}
	if err := s.assessmentRepo.CreateType(assessmentType); err != nil {
		return nil, err
	}
	return assessmentType, nil
}

func (s *assessmentService) UpdateAssessmentType(assessmentType *models.AssessmentType) error {
	assessmentType.Code = strings.ToUpper(strings.TrimSpace(assessmentType.Code))
	return s.assessmentRepo.UpdateType(assessmentType)
}

func (s *assessmentService) ListAssessmentTypes(activeOnly bool) ([]models.AssessmentType, error) {
	return s.assessmentRepo.ListTypes(activeOnly)
}

func (s *assessmentService) DeleteAssessmentType(id uuid.UUID) error {
	count, err := s.assessmentRepo.CountAssessmentsByType(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAssessmentTypeInUse
	}
	return s.assessmentRepo.DeleteType(id)
}

func (s *assessmentService) CreateAssessment(req *CreateAssessmentRequest) (*models.SubjectAssessment, error) {
	assessmentType, err := s.assessmentRepo.GetTypeByID(req.AssessmentTypeID)
	if err != nil {
		return nil, err
	}

	maxScore := req.MaxScore
	if maxScore == 0 {
		maxScore = assessmentType.DefaultMaxScore
	}
	weight := req.Weight
	if weight == 0 {
		weight = assessmentType.DefaultWeight
	}

	// No hard cap on the cumulative weight here: teachers add assessments
	// incrementally, so the total is surfaced via TotalWeightForPeriod
	// instead of being enforced at write time.
	assessment := &models.SubjectAssessment{
		ClassSubjectID:   req.ClassSubjectID,
		GradingPeriodID:  req.GradingPeriodID,
		AssessmentTypeID: req.AssessmentTypeID,
		Name:             req.Name,
		MaxScore:         maxScore,
		Weight:           weight,
		Description:      req.Description,
		DateConducted:    req.DateConducted,
		CreatedBy:        req.CreatedBy,
	}
	if err := s.assessmentRepo.Create(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *assessmentService) GetAssessment(id uuid.UUID) (*models.SubjectAssessment, error) {
	return s.assessmentRepo.GetByID(id)
}

func (s *assessmentService) ListAssessments(classSubjectID, periodID uuid.UUID) ([]models.SubjectAssessment, error) {
	return s.assessmentRepo.ListForPeriod(classSubjectID, periodID)
}

func (s *assessmentService) DeleteAssessment(id uuid.UUID) error {
	return s.assessmentRepo.Delete(id)
}

func (s *assessmentService) Publish(id uuid.UUID) (*models.SubjectAssessment, error) {
	assessment, err := s.assessmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assessment.IsPublished {
		return assessment, nil
	}
	assessment.IsPublished = true
	if err := s.assessmentRepo.Update(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *assessmentService) TotalWeightForPeriod(classSubjectID, periodID uuid.UUID) (*WeightSummary, error) {
	total, err := s.assessmentRepo.TotalWeight(classSubjectID, periodID)
	if err != nil {
		return nil, err
	}
	return &WeightSummary{
		TotalWeight:    total,
		IsComplete:     total == 100,
		ExceedsHundred: total > 100,
	}, nil
}
