package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Latiftanga/SIS/internal/models"
)

// seedTermGrade inserts a precomputed subject summary for the fixture's
// period, giving each one its own class subject.
func seedTermGrade(t *testing.T, ts *testServices, f *classFixture, enrollmentID uuid.UUID, subjectCode string, total *float64, gradePoint *float64) {
	t.Helper()
	subject := models.Subject{Name: subjectCode + " Subject", Code: subjectCode, IsActive: true}
	require.NoError(t, ts.db.Create(&subject).Error)
	classSubject := models.ClassSubject{ClassID: f.class.ID, SubjectID: subject.ID}
	require.NoError(t, ts.db.Create(&classSubject).Error)

	termGrade := models.TermGrade{
		EnrollmentID:    enrollmentID,
		ClassSubjectID:  classSubject.ID,
		GradingPeriodID: f.period.ID,
		TotalScore:      total,
		GradePoint:      gradePoint,
	}
	require.NoError(t, ts.db.Create(&termGrade).Error)
}

// seedAttendance creates count daily sessions starting at the period start
// and records the given statuses for the student, one per session.
func seedAttendance(t *testing.T, ts *testServices, f *classFixture, studentIdx int, statuses []string) {
	t.Helper()
	for i, status := range statuses {
		session := models.AttendanceSession{
			ClassID: f.class.ID,
			Date:    f.period.StartDate.AddDate(0, 0, i),
		}
		require.NoError(t, ts.db.Create(&session).Error)
		record := models.AttendanceRecord{
			SessionID:    session.ID,
			StudentID:    f.students[studentIdx].ID,
			EnrollmentID: f.enrollments[studentIdx].ID,
			Status:       status,
		}
		require.NoError(t, ts.db.Create(&record).Error)
	}
}

func TestCalculateOverallMetrics(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	seedTermGrade(t, ts, f, f.enrollments[0].ID, "MTH", floatPtr(75), floatPtr(3.00))
	seedTermGrade(t, ts, f, f.enrollments[0].ID, "ENG", floatPtr(60), floatPtr(2.00))

	reportCard, err := ts.reports.CalculateOverallMetrics(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)

	require.NotNil(t, reportCard.TotalScore)
	assert.InDelta(t, 135.0, *reportCard.TotalScore, 1e-9)
	require.NotNil(t, reportCard.AverageScore)
	assert.InDelta(t, 67.5, *reportCard.AverageScore, 1e-9)
	require.NotNil(t, reportCard.GPA)
	assert.InDelta(t, 2.50, *reportCard.GPA, 1e-9)
}

func TestCalculateOverallMetricsGPAExcludesUngraded(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	seedTermGrade(t, ts, f, f.enrollments[0].ID, "MTH", floatPtr(75), floatPtr(3.00))
	// Subject with a total but no matching scale band.
	seedTermGrade(t, ts, f, f.enrollments[0].ID, "ENG", floatPtr(60), nil)

	reportCard, err := ts.reports.CalculateOverallMetrics(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)

	// The ungraded subject still counts toward the average but not the GPA.
	require.NotNil(t, reportCard.AverageScore)
	assert.InDelta(t, 67.5, *reportCard.AverageScore, 1e-9)
	require.NotNil(t, reportCard.GPA)
	assert.InDelta(t, 3.00, *reportCard.GPA, 1e-9)
}

func TestCalculateOverallMetricsNoTermGrades(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	reportCard, err := ts.reports.CalculateOverallMetrics(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)

	assert.Nil(t, reportCard.TotalScore)
	assert.Nil(t, reportCard.AverageScore)
	assert.Nil(t, reportCard.GPA)
	assert.Equal(t, 0, reportCard.DaysSchoolOpened)
	assert.Nil(t, reportCard.AttendancePct)
}

func TestCalculateOverallMetricsAttendance(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	statuses := make([]string, 20)
	for i := range statuses {
		statuses[i] = models.AttendancePresent
	}
	statuses[4] = models.AttendanceLate // late still counts as present
	statuses[10] = models.AttendanceAbsent
	statuses[15] = models.AttendanceAbsent
	seedAttendance(t, ts, f, 0, statuses)

	reportCard, err := ts.reports.CalculateOverallMetrics(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)

	assert.Equal(t, 18, reportCard.DaysPresent)
	assert.Equal(t, 2, reportCard.DaysAbsent)
	assert.Equal(t, 20, reportCard.DaysSchoolOpened)
	require.NotNil(t, reportCard.AttendancePct)
	assert.InDelta(t, 90.0, *reportCard.AttendancePct, 1e-9)
}

func TestCalculateOverallMetricsIgnoresAttendanceOutsidePeriod(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	seedAttendance(t, ts, f, 0, []string{models.AttendancePresent, models.AttendanceAbsent})

	// One session well past the period end.
	session := models.AttendanceSession{ClassID: f.class.ID, Date: f.period.EndDate.AddDate(0, 1, 0)}
	require.NoError(t, ts.db.Create(&session).Error)
	record := models.AttendanceRecord{
		SessionID:    session.ID,
		StudentID:    f.students[0].ID,
		EnrollmentID: f.enrollments[0].ID,
		Status:       models.AttendanceAbsent,
	}
	require.NoError(t, ts.db.Create(&record).Error)

	reportCard, err := ts.reports.CalculateOverallMetrics(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reportCard.DaysPresent)
	assert.Equal(t, 1, reportCard.DaysAbsent)
	assert.Equal(t, 2, reportCard.DaysSchoolOpened)
}

func TestGenerateClassReportsAndRanking(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 3)

	// Averages: 80, 80, 50.
	seedTermGrade(t, ts, f, f.enrollments[0].ID, "MT0", floatPtr(80), floatPtr(4.00))
	seedTermGrade(t, ts, f, f.enrollments[1].ID, "MT1", floatPtr(80), floatPtr(4.00))
	seedTermGrade(t, ts, f, f.enrollments[2].ID, "MT2", floatPtr(50), floatPtr(1.00))

	generated, err := ts.reports.GenerateClassReports(f.class.ID, f.period.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, generated)

	reportCards, err := ts.reports.ListClassReports(f.class.ID, f.period.ID)
	require.NoError(t, err)
	require.Len(t, reportCards, 3)

	positions := make(map[uuid.UUID]int)
	for i := range reportCards {
		require.NotNil(t, reportCards[i].ClassPosition)
		require.NotNil(t, reportCards[i].TotalStudents)
		assert.Equal(t, 3, *reportCards[i].TotalStudents)
		positions[reportCards[i].EnrollmentID] = *reportCards[i].ClassPosition
	}
	assert.Equal(t, 1, positions[f.enrollments[0].ID])
	assert.Equal(t, 1, positions[f.enrollments[1].ID])
	assert.Equal(t, 3, positions[f.enrollments[2].ID])
}

func TestGenerateClassReportsIdempotent(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 2)
	seedTermGrade(t, ts, f, f.enrollments[0].ID, "MT0", floatPtr(70), floatPtr(3.00))
	seedTermGrade(t, ts, f, f.enrollments[1].ID, "MT1", floatPtr(55), floatPtr(1.50))

	_, err := ts.reports.GenerateClassReports(f.class.ID, f.period.ID)
	require.NoError(t, err)
	_, err = ts.reports.GenerateClassReports(f.class.ID, f.period.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, ts.db.Model(&models.ReportCard{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestPublishReportCardIdempotent(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)
	seedTermGrade(t, ts, f, f.enrollments[0].ID, "MTH", floatPtr(70), floatPtr(3.00))

	reportCard, err := ts.reports.CalculateOverallMetrics(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)
	assert.False(t, reportCard.IsPublished)

	published, err := ts.reports.Publish(reportCard.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	again, err := ts.reports.Publish(reportCard.ID)
	require.NoError(t, err)
	assert.True(t, again.IsPublished)
}

func TestRecordConductGrade(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	grade, err := ts.reports.RecordConductGrade(&RecordConductRequest{
		EnrollmentID:    f.enrollments[0].ID,
		GradingPeriodID: f.period.ID,
		ConductArea:     models.ConductPunctuality,
		Rating:          4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, grade.Rating)

	// Re-rating the same area replaces the row.
	_, err = ts.reports.RecordConductGrade(&RecordConductRequest{
		EnrollmentID:    f.enrollments[0].ID,
		GradingPeriodID: f.period.ID,
		ConductArea:     models.ConductPunctuality,
		Rating:          2,
	})
	require.NoError(t, err)

	grades, err := ts.reports.ListConductGrades(f.enrollments[0].ID, f.period.ID)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, 2, grades[0].Rating)
}

func TestRecordConductGradeValidation(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	_, err := ts.reports.RecordConductGrade(&RecordConductRequest{
		EnrollmentID:    f.enrollments[0].ID,
		GradingPeriodID: f.period.ID,
		ConductArea:     "tidiness",
		Rating:          3,
	})
	assert.ErrorIs(t, err, ErrInvalidConductArea)

	for _, rating := range []int{0, 6, -1} {
		_, err := ts.reports.RecordConductGrade(&RecordConductRequest{
			EnrollmentID:    f.enrollments[0].ID,
			GradingPeriodID: f.period.ID,
			ConductArea:     models.ConductHonesty,
			Rating:          rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}
