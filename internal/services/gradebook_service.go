package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// GradebookService is the term aggregator: it rolls raw assessment scores up
// into per-subject term grades and ranks them within the class.
type GradebookService interface {
	// CalculateScores recomputes the TermGrade for one (enrollment,
	// class-subject, period). Recalculation fully overwrites the previous
	// derived values; assessments without a recorded score simply do not
	// contribute yet, so an incomplete period yields a lower total rather
	// than an error.
	CalculateScores(enrollmentID, classSubjectID, periodID uuid.UUID) (*models.TermGrade, error)

	// CalculateClassScores recomputes every enrolled student's TermGrade for
	// the class-subject and then re-ranks. Returns the number of students
	// processed.
	CalculateClassScores(classSubjectID, periodID uuid.UUID) (int, error)

	// RankClass assigns 1-indexed positions by total score descending.
	// Equal totals share a position and the next distinct total skips the
	// tied count (competition ranking).
	RankClass(classSubjectID, periodID uuid.UUID) error

	ListClassTermGrades(classSubjectID, periodID uuid.UUID) ([]models.TermGrade, error)
	ListStudentTermGrades(enrollmentID, periodID uuid.UUID) ([]models.TermGrade, error)
}

type gradebookService struct {
	termGradeRepo  repository.TermGradeRepository
	assessmentRepo repository.AssessmentRepository
	gradeRepo      repository.StudentGradeRepository
	enrollmentRepo repository.EnrollmentRepository
	scaleService   GradingScaleService
}

func NewGradebookService(
	termGradeRepo repository.TermGradeRepository,
	assessmentRepo repository.AssessmentRepository,
	gradeRepo repository.StudentGradeRepository,
	enrollmentRepo repository.EnrollmentRepository,
	scaleService GradingScaleService,
) GradebookService {
	return &gradebookService{
		termGradeRepo:  termGradeRepo,
		assessmentRepo: assessmentRepo,
		gradeRepo:      gradeRepo,
		enrollmentRepo: enrollmentRepo,
		scaleService:   scaleService,
	}
}

func (s *gradebookService) CalculateScores(enrollmentID, classSubjectID, periodID uuid.UUID) (*models.TermGrade, error) {
	enrollment, err := s.enrollmentRepo.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.ListForPeriod(classSubjectID, periodID)
	if err != nil {
		return nil, err
	}

	var caTotal, examTotal, total float64
	for i := range assessments {
		grade, err := s.gradeRepo.GetByAssessmentAndStudent(assessments[i].ID, enrollment.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // not yet contributing
			}
			return nil, err
		}
		if grade.IsExcused {
			continue
		}

		weighted := grade.GetWeightedScore()
		if weighted == nil {
			continue
		}
		total += *weighted
		if assessments[i].AssessmentType.IsExam {
			examTotal += *weighted
		} else {
			caTotal += *weighted
		}
	}

	termGrade := &models.TermGrade{
		EnrollmentID:              enrollmentID,
		ClassSubjectID:            classSubjectID,
		GradingPeriodID:           periodID,
		ContinuousAssessmentScore: &caTotal,
		ExamScore:                 &examTotal,
		TotalScore:                &total,
	}

	band, err := s.scaleService.ResolveGrade(total)
	if err != nil {
		return nil, err
	}
	if band != nil {
		termGrade.Grade = band.Grade
		gp := band.GradePoint
		termGrade.GradePoint = &gp
	}

	if err := s.termGradeRepo.Upsert(termGrade); err != nil {
		return nil, err
	}
	return s.termGradeRepo.GetFor(enrollmentID, classSubjectID, periodID)
}

func (s *gradebookService) CalculateClassScores(classSubjectID, periodID uuid.UUID) (int, error) {
	classSubject, err := s.enrollmentRepo.GetClassSubject(classSubjectID)
	if err != nil {
		return 0, err
	}
	enrollments, err := s.enrollmentRepo.ListByClass(classSubject.ClassID)
	if err != nil {
		return 0, err
	}

	for i := range enrollments {
		if _, err := s.CalculateScores(enrollments[i].ID, classSubjectID, periodID); err != nil {
			return 0, err
		}
	}
	if err := s.RankClass(classSubjectID, periodID); err != nil {
		return 0, err
	}
	return len(enrollments), nil
}

func (s *gradebookService) RankClass(classSubjectID, periodID uuid.UUID) error {
	termGrades, err := s.termGradeRepo.ListForClassSubject(classSubjectID, periodID)
	if err != nil {
		return err
	}

	// Sort here rather than trusting database NULL ordering; rows without a
	// total rank last.
	sort.SliceStable(termGrades, func(i, j int) bool {
		return totalOrZero(&termGrades[i]) > totalOrZero(&termGrades[j])
	})

	position := 0
	var prevTotal float64
	for i := range termGrades {
		current := totalOrZero(&termGrades[i])
		if i == 0 || current != prevTotal {
			position = i + 1
			prevTotal = current
		}
		if err := s.termGradeRepo.UpdatePosition(termGrades[i].ID, position); err != nil {
			return err
		}
	}
	return nil
}

func (s *gradebookService) ListClassTermGrades(classSubjectID, periodID uuid.UUID) ([]models.TermGrade, error) {
	return s.termGradeRepo.ListForClassSubject(classSubjectID, periodID)
}

func (s *gradebookService) ListStudentTermGrades(enrollmentID, periodID uuid.UUID) ([]models.TermGrade, error) {
	return s.termGradeRepo.ListForEnrollment(enrollmentID, periodID)
}

func totalOrZero(termGrade *models.TermGrade) float64 {
	if termGrade.TotalScore == nil {
		return 0
	}
	return *termGrade.TotalScore
}
