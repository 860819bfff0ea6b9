package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// testServices bundles the engine wired over one in-memory database.
type testServices struct {
	db         *gorm.DB
	periods    GradingPeriodService
	scale      GradingScaleService
	assessment AssessmentService
	scores     ScoreService
	gradebook  GradebookService
	reports    ReportCardService
}

func setup(t *testing.T) *testServices {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("setup() failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Student{},
		&models.Subject{},
		&models.Class{},
		&models.ClassSubject{},
		&models.StudentEnrollment{},
		&models.GradingPeriod{},
		&models.AssessmentType{},
		&models.SubjectAssessment{},
		&models.StudentGrade{},
		&models.GradingScale{},
		&models.TermGrade{},
		&models.ConductGrade{},
		&models.ReportCard{},
		&models.AttendanceSession{},
		&models.AttendanceRecord{},
	)
	if err != nil {
		t.Fatalf("setup() failed to migrate: %v", err)
	}

	periodRepo := repository.NewGradingPeriodRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	gradeRepo := repository.NewStudentGradeRepository(db)
	scaleRepo := repository.NewGradingScaleRepository(db)
	termGradeRepo := repository.NewTermGradeRepository(db)
	reportCardRepo := repository.NewReportCardRepository(db)
	conductRepo := repository.NewConductGradeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	scaleService := NewGradingScaleService(scaleRepo)

	return &testServices{
		db:         db,
		periods:    NewGradingPeriodService(periodRepo),
		scale:      scaleService,
		assessment: NewAssessmentService(assessmentRepo),
		scores:     NewScoreService(gradeRepo, assessmentRepo),
		gradebook: NewGradebookService(
			termGradeRepo, assessmentRepo, gradeRepo, enrollmentRepo, scaleService),
		reports: NewReportCardService(
			reportCardRepo, termGradeRepo, conductRepo, attendanceRepo, enrollmentRepo, periodRepo),
	}
}

// seedScale installs the standard Ghanaian A1-F9 scale.
func (ts *testServices) seedScale(t *testing.T) {
	t.Helper()
	bands := []models.GradingScale{
		{Grade: "A1", MinScore: 80.00, MaxScore: 100.00, Interpretation: "Excellent", GradePoint: 4.00, IsPassing: true},
		{Grade: "B2", MinScore: 75.00, MaxScore: 79.99, Interpretation: "Very Good", GradePoint: 3.50, IsPassing: true},
		{Grade: "B3", MinScore: 70.00, MaxScore: 74.99, Interpretation: "Good", GradePoint: 3.00, IsPassing: true},
		{Grade: "C4", MinScore: 65.00, MaxScore: 69.99, Interpretation: "Credit", GradePoint: 2.50, IsPassing: true},
		{Grade: "C5", MinScore: 60.00, MaxScore: 64.99, Interpretation: "Credit", GradePoint: 2.00, IsPassing: true},
		{Grade: "C6", MinScore: 55.00, MaxScore: 59.99, Interpretation: "Credit", GradePoint: 1.50, IsPassing: true},
		{Grade: "D7", MinScore: 50.00, MaxScore: 54.99, Interpretation: "Pass", GradePoint: 1.00, IsPassing: true},
		{Grade: "E8", MinScore: 45.00, MaxScore: 49.99, Interpretation: "Pass", GradePoint: 0.50, IsPassing: true},
		{Grade: "F9", MinScore: 0.00, MaxScore: 44.99, Interpretation: "Fail", GradePoint: 0.00, IsPassing: false},
	}
	for i := range bands {
		if err := ts.db.Create(&bands[i]).Error; err != nil {
			t.Fatalf("seedScale() failed: %v", err)
		}
	}
}

// classFixture is one class with a subject, a grading period and enrolled
// students, enough to exercise the whole pipeline.
type classFixture struct {
	class        models.Class
	subject      models.Subject
	classSubject models.ClassSubject
	period       models.GradingPeriod
	students     []models.Student
	enrollments  []models.StudentEnrollment
}

func (ts *testServices) newClassFixture(t *testing.T, studentCount int) *classFixture {
	t.Helper()

	f := &classFixture{
		class:   models.Class{Name: "Basic 7A", GradeLevel: "Basic 7", AcademicYear: "2024/2025", IsActive: true},
		subject: models.Subject{Name: "Mathematics", Code: "MATH", IsActive: true},
		period: models.GradingPeriod{
			TermName:     "Term 1",
			TermNumber:   1,
			AcademicYear: "2024/2025",
			StartDate:    time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 12, 13, 0, 0, 0, 0, time.UTC),
			IsActive:     true,
		},
	}
	if err := ts.db.Create(&f.class).Error; err != nil {
		t.Fatalf("fixture class: %v", err)
	}
	if err := ts.db.Create(&f.subject).Error; err != nil {
		t.Fatalf("fixture subject: %v", err)
	}
	f.classSubject = models.ClassSubject{ClassID: f.class.ID, SubjectID: f.subject.ID}
	if err := ts.db.Create(&f.classSubject).Error; err != nil {
		t.Fatalf("fixture class subject: %v", err)
	}
	if err := ts.db.Create(&f.period).Error; err != nil {
		t.Fatalf("fixture period: %v", err)
	}

	for i := 0; i < studentCount; i++ {
		student := models.Student{
			StudentID: fmt.Sprintf("STU%03d", i+1),
			FirstName: fmt.Sprintf("Student%d", i+1),
			LastName:  "Mensah",
			IsActive:  true,
		}
		if err := ts.db.Create(&student).Error; err != nil {
			t.Fatalf("fixture student: %v", err)
		}
		enrollment := models.StudentEnrollment{
			StudentID:    student.ID,
			ClassID:      f.class.ID,
			AcademicYear: "2024/2025",
			Status:       "active",
		}
		if err := ts.db.Create(&enrollment).Error; err != nil {
			t.Fatalf("fixture enrollment: %v", err)
		}
		f.students = append(f.students, student)
		f.enrollments = append(f.enrollments, enrollment)
	}
	return f
}

// newAssessment creates an assessment of a fresh type with the given weight
// and max score.
func (ts *testServices) newAssessment(t *testing.T, f *classFixture, name, code string, isExam bool, weight float64, maxScore int) *models.SubjectAssessment {
	t.Helper()

	assessmentType, err := ts.assessment.CreateAssessmentType(&CreateAssessmentTypeRequest{
		Name:            name + " Type",
		Code:            code,
		IsExam:          isExam,
		DefaultWeight:   weight,
		DefaultMaxScore: maxScore,
	})
	if err != nil {
		t.Fatalf("fixture assessment type: %v", err)
	}

	assessment, err := ts.assessment.CreateAssessment(&CreateAssessmentRequest{
		ClassSubjectID:   f.classSubject.ID,
		GradingPeriodID:  f.period.ID,
		AssessmentTypeID: assessmentType.ID,
		Name:             name,
		MaxScore:         maxScore,
		Weight:           weight,
		DateConducted:    f.period.StartDate.AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("fixture assessment: %v", err)
	}
	return assessment
}

func (ts *testServices) recordScore(t *testing.T, f *classFixture, assessmentID uuid.UUID, studentIdx int, score float64) {
	t.Helper()
	_, err := ts.scores.RecordScore(&RecordScoreRequest{
		AssessmentID: assessmentID,
		StudentID:    f.students[studentIdx].ID,
		EnrollmentID: f.enrollments[studentIdx].ID,
		Score:        &score,
	})
	if err != nil {
		t.Fatalf("fixture score: %v", err)
	}
}

func floatPtr(v float64) *float64 { return &v }
