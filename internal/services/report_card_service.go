package services

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// RecordConductRequest carries one conduct rating.
type RecordConductRequest struct {
	EnrollmentID    uuid.UUID `json:"enrollment_id"`
	GradingPeriodID uuid.UUID `json:"grading_period_id"`
	ConductArea     string    `json:"conduct_area"`
	Rating          int       `json:"rating"`
	Comments        string    `json:"comments"`
}

// ReportCardService is the report card compiler: it aggregates a student's
// term grades and attendance into the period-level summary and ranks the
// class overall.
type ReportCardService interface {
	// CalculateOverallMetrics recomputes the student's report card for the
	// period: totals and GPA from the term grades, attendance counts from
	// the attendance collaborator over the period's date range.
	CalculateOverallMetrics(enrollmentID, periodID uuid.UUID) (*models.ReportCard, error)

	// GenerateClassReports recomputes every enrolled student's report card
	// and then re-ranks the class. Returns the number of reports generated.
	GenerateClassReports(classID, periodID uuid.UUID) (int, error)

	// RankReports assigns overall class positions by average score
	// descending, same tie policy as the subject ranking.
	RankReports(classID, periodID uuid.UUID) error

	GetReportCard(enrollmentID, periodID uuid.UUID) (*models.ReportCard, error)
	ListClassReports(classID, periodID uuid.UUID) ([]models.ReportCard, error)

	// Publish makes the report card visible to students/guardians.
	// Idempotent.
	Publish(id uuid.UUID) (*models.ReportCard, error)

	RecordConductGrade(req *RecordConductRequest) (*models.ConductGrade, error)
	ListConductGrades(enrollmentID, periodID uuid.UUID) ([]models.ConductGrade, error)
}

type reportCardService struct {
	reportCardRepo repository.ReportCardRepository
	termGradeRepo  repository.TermGradeRepository
	conductRepo    repository.ConductGradeRepository
	attendanceRepo repository.AttendanceRepository
	enrollmentRepo repository.EnrollmentRepository
	periodRepo     repository.GradingPeriodRepository
}

func NewReportCardService(
	reportCardRepo repository.ReportCardRepository,
	termGradeRepo repository.TermGradeRepository,
	conductRepo repository.ConductGradeRepository,
	attendanceRepo repository.AttendanceRepository,
	enrollmentRepo repository.EnrollmentRepository,
	periodRepo repository.GradingPeriodRepository,
) ReportCardService {
	return &reportCardService{
		reportCardRepo: reportCardRepo,
		termGradeRepo:  termGradeRepo,
		conductRepo:    conductRepo,
		attendanceRepo: attendanceRepo,
		enrollmentRepo: enrollmentRepo,
		periodRepo:     periodRepo,
	}
}

func (s *reportCardService) CalculateOverallMetrics(enrollmentID, periodID uuid.UUID) (*models.ReportCard, error) {
	enrollment, err := s.enrollmentRepo.GetByID(enrollmentID)
	if err != nil {
		return nil, err
	}
	period, err := s.periodRepo.GetByID(periodID)
	if err != nil {
		return nil, err
	}

	termGrades, err := s.termGradeRepo.ListForEnrollment(enrollmentID, periodID)
	if err != nil {
		return nil, err
	}

	reportCard := &models.ReportCard{
		EnrollmentID:    enrollmentID,
		GradingPeriodID: periodID,
	}

	if len(termGrades) > 0 {
		var total float64
		for i := range termGrades {
			if termGrades[i].TotalScore != nil {
				total += *termGrades[i].TotalScore
			}
		}
		count := len(termGrades)
		average := total / float64(count)
		reportCard.TotalScore = &total
		reportCard.AverageScore = &average

		// Ungraded subjects carry no grade point and are excluded from
		// both the sum and the denominator.
		var gpaSum float64
		var graded int
		for i := range termGrades {
			if termGrades[i].GradePoint != nil {
				gpaSum += *termGrades[i].GradePoint
				graded++
			}
		}
		if graded > 0 {
			gpa := gpaSum / float64(graded)
			reportCard.GPA = &gpa
		}
	}

	records, err := s.attendanceRepo.ListForStudentInRange(
		enrollment.StudentID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	sessionDates := make(map[string]struct{})
	for i := range records {
		switch records[i].Status {
		case models.AttendancePresent, models.AttendanceLate:
			reportCard.DaysPresent++
		case models.AttendanceAbsent:
			reportCard.DaysAbsent++
		}
		sessionDates[records[i].Session.Date.Format("2006-01-02")] = struct{}{}
	}
	reportCard.DaysSchoolOpened = len(sessionDates)

	if reportCard.DaysSchoolOpened > 0 {
		pct := float64(reportCard.DaysPresent) / float64(reportCard.DaysSchoolOpened) * 100
		reportCard.AttendancePct = &pct
	}

	if err := s.reportCardRepo.Upsert(reportCard); err != nil {
		return nil, err
	}
	return s.reportCardRepo.GetFor(enrollmentID, periodID)
}

func (s *reportCardService) GenerateClassReports(classID, periodID uuid.UUID) (int, error) {
	enrollments, err := s.enrollmentRepo.ListByClass(classID)
	if err != nil {
		return 0, err
	}
	for i := range enrollments {
		if _, err := s.CalculateOverallMetrics(enrollments[i].ID, periodID); err != nil {
			return 0, err
		}
	}
	if err := s.RankReports(classID, periodID); err != nil {
		return 0, err
	}
	return len(enrollments), nil
}

func (s *reportCardService) RankReports(classID, periodID uuid.UUID) error {
	reportCards, err := s.reportCardRepo.ListForClass(classID, periodID)
	if err != nil {
		return err
	}

	sort.SliceStable(reportCards, func(i, j int) bool {
		return averageOrZero(&reportCards[i]) > averageOrZero(&reportCards[j])
	})

	totalStudents := len(reportCards)
	position := 0
	var prevAverage float64
	for i := range reportCards {
		current := averageOrZero(&reportCards[i])
		if i == 0 || current != prevAverage {
			position = i + 1
			prevAverage = current
		}
		if err := s.reportCardRepo.UpdateRank(reportCards[i].ID, position, totalStudents); err != nil {
			return err
		}
	}
	return nil
}

func (s *reportCardService) GetReportCard(enrollmentID, periodID uuid.UUID) (*models.ReportCard, error) {
	return s.reportCardRepo.GetFor(enrollmentID, periodID)
}

func (s *reportCardService) ListClassReports(classID, periodID uuid.UUID) ([]models.ReportCard, error) {
	return s.reportCardRepo.ListForClass(classID, periodID)
}

func (s *reportCardService) Publish(id uuid.UUID) (*models.ReportCard, error) {
	reportCard, err := s.reportCardRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reportCard.IsPublished {
		return reportCard, nil
	}
	reportCard.IsPublished = true
	if err := s.reportCardRepo.Update(reportCard); err != nil {
		return nil, err
	}
	return reportCard, nil
}

func (s *reportCardService) RecordConductGrade(req *RecordConductRequest) (*models.ConductGrade, error) {
	if !models.ValidConductArea(req.ConductArea) {
		return nil, ErrInvalidConductArea
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	grade := &models.ConductGrade{
		EnrollmentID:    req.EnrollmentID,
		GradingPeriodID: req.GradingPeriodID,
		ConductArea:     req.ConductArea,
		Rating:          req.Rating,
		Comments:        req.Comments,
	}
	if err := s.conductRepo.Upsert(grade); err != nil {
		return nil, err
	}
	return grade, nil
}

func (s *reportCardService) ListConductGrades(enrollmentID, periodID uuid.UUID) ([]models.ConductGrade, error) {
	return s.conductRepo.ListForEnrollment(enrollmentID, periodID)
}

func averageOrZero(reportCard *models.ReportCard) float64 {
	if reportCard.AverageScore == nil {
		return 0
	}
	return *reportCard.AverageScore
}
