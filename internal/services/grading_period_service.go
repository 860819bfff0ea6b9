package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// CreateGradingPeriodRequest carries the fields for a new grading period.
// The dates come from the academic calendar collaborator.
type CreateGradingPeriodRequest struct {
	TermName             string    `json:"term_name"`
	TermNumber           int       `json:"term_number"`
	AcademicYear         string    `json:"academic_year"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	GradeEntryDeadline   time.Time `json:"grade_entry_deadline"`
	ReportGenerationDate time.Time `json:"report_generation_date"`
}

type GradingPeriodService interface {
	Create(req *CreateGradingPeriodRequest) (*models.GradingPeriod, error)
	Get(id uuid.UUID) (*models.GradingPeriod, error)
	List(activeOnly bool) ([]models.GradingPeriod, error)
	GetCurrent() (*models.GradingPeriod, error)
	Update(period *models.GradingPeriod) error

	// SetCurrent atomically makes the period the single current one.
	SetCurrent(id uuid.UUID) (*models.GradingPeriod, error)

	// Delete fails with ErrGradingPeriodInUse while assessments reference
	// the period.
	Delete(id uuid.UUID) error
}

type gradingPeriodService struct {
	periodRepo repository.GradingPeriodRepository
}

func NewGradingPeriodService(periodRepo repository.GradingPeriodRepository) GradingPeriodService {
	return &gradingPeriodService{periodRepo: periodRepo}
}

func (s *gradingPeriodService) Create(req *CreateGradingPeriodRequest) (*models.GradingPeriod, error) {
	if !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidDateRange
	}

	period := &models.GradingPeriod{
		TermName:             req.TermName,
		TermNumber:           req.TermNumber,
		AcademicYear:         req.AcademicYear,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		GradeEntryDeadline:   req.GradeEntryDeadline,
		ReportGenerationDate: req.ReportGenerationDate,
		IsActive:             true,
	}
	if err := s.periodRepo.Create(period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *gradingPeriodService) Get(id uuid.UUID) (*models.GradingPeriod, error) {
	return s.periodRepo.GetByID(id)
}

func (s *gradingPeriodService) List(activeOnly bool) ([]models.GradingPeriod, error) {
	return s.periodRepo.List(activeOnly)
}

func (s *gradingPeriodService) GetCurrent() (*models.GradingPeriod, error) {
	return s.periodRepo.GetCurrent()
}

func (s *gradingPeriodService) Update(period *models.GradingPeriod) error {
	if !period.StartDate.Before(period.EndDate) {
		return ErrInvalidDateRange
	}
	return s.periodRepo.Update(period)
}

func (s *gradingPeriodService) SetCurrent(id uuid.UUID) (*models.GradingPeriod, error) {
	if err := s.periodRepo.SetCurrent(id); err != nil {
		return nil, err
	}
	return s.periodRepo.GetByID(id)
}

func (s *gradingPeriodService) Delete(id uuid.UUID) error {
	count, err := s.periodRepo.CountAssessments(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGradingPeriodInUse
	}
	return s.periodRepo.Delete(id)
}
