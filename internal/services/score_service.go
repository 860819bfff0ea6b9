package services

import (
	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// RecordScoreRequest carries one score entry. A nil Score means the grade has
// not been entered; IsExcused forces the stored score to nil regardless of
// the input.
type RecordScoreRequest struct {
	AssessmentID uuid.UUID  `json:"assessment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	EnrollmentID uuid.UUID  `json:"enrollment_id"`
	Score        *float64   `json:"score,omitempty"`
	IsExcused    bool       `json:"is_excused"`
	Remarks      string     `json:"remarks"`
	GradedBy     *uuid.UUID `json:"graded_by,omitempty"`
}

// BatchResult summarizes a batch score entry.
type BatchResult struct {
	Saved  int      `json:"saved"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

type ScoreService interface {
	// RecordScore upserts the (assessment, student) row. Scores outside
	// [0, max_score] fail with ErrScoreOutOfRange.
	RecordScore(req *RecordScoreRequest) (*models.StudentGrade, error)
	// RecordScores writes each entry through the same upsert; one bad row
	// does not abort the rest.
	RecordScores(reqs []RecordScoreRequest) (*BatchResult, error)
	GetScore(assessmentID, studentID uuid.UUID) (*models.StudentGrade, error)
	ListScores(assessmentID uuid.UUID) ([]models.StudentGrade, error)
	// AverageScore is the mean of the assessment's non-excused scores, nil
	// when none are recorded.
	AverageScore(assessmentID uuid.UUID) (*float64, error)
}

type scoreService struct {
	gradeRepo      repository.StudentGradeRepository
	assessmentRepo repository.AssessmentRepository
}

func NewScoreService(
	gradeRepo repository.StudentGradeRepository,
	assessmentRepo repository.AssessmentRepository,
) ScoreService {
	return &scoreService{
		gradeRepo:      gradeRepo,
		assessmentRepo: assessmentRepo,
	}
}

func (s *scoreService) RecordScore(req *RecordScoreRequest) (*models.StudentGrade, error) {
	assessment, err := s.assessmentRepo.GetByID(req.AssessmentID)
	if err != nil {
		return nil, err
	}

	score := req.Score
	if req.IsExcused {
		// Excused means absent-from-average, never zero.
		score = nil
	} else if score != nil {
		if *score < 0 || *score > float64(assessment.MaxScore) {
			return nil, ErrScoreOutOfRange
		}
	}

	grade := &models.StudentGrade{
		AssessmentID: req.AssessmentID,
		StudentID:    req.StudentID,
		EnrollmentID: req.EnrollmentID,
		Score:        score,
		IsExcused:    req.IsExcused,
		Remarks:      req.Remarks,
		GradedBy:     req.GradedBy,
	}
	if err := s.gradeRepo.Upsert(grade); err != nil {
		return nil, err
	}
	return s.gradeRepo.GetByAssessmentAndStudent(req.AssessmentID, req.StudentID)
}

func (s *scoreService) RecordScores(reqs []RecordScoreRequest) (*BatchResult, error) {
	result := &BatchResult{}
	for i := range reqs {
		if _, err := s.RecordScore(&reqs[i]); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Saved++
	}
	return result, nil
}

func (s *scoreService) GetScore(assessmentID, studentID uuid.UUID) (*models.StudentGrade, error) {
	return s.gradeRepo.GetByAssessmentAndStudent(assessmentID, studentID)
}

func (s *scoreService) ListScores(assessmentID uuid.UUID) ([]models.StudentGrade, error) {
	return s.gradeRepo.ListByAssessment(assessmentID)
}

func (s *scoreService) AverageScore(assessmentID uuid.UUID) (*float64, error) {
	grades, err := s.gradeRepo.ListByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}

	var sum float64
	var count int
	for i := range grades {
		if grades[i].IsExcused || grades[i].Score == nil {
			continue
		}
		sum += *grades[i].Score
		count++
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / float64(count)
	return &avg, nil
}
