package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssessmentTypeNormalizesCode(t *testing.T) {
	ts := setup(t)

	assessmentType, err := ts.assessment.CreateAssessmentType(&CreateAssessmentTypeRequest{
		Name: "Class Test", Code: "  ct ", DefaultWeight: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "CT", assessmentType.Code)
	assert.Equal(t, 100, assessmentType.DefaultMaxScore, "max score defaults to 100")
	assert.True(t, assessmentType.IsActive)
}

func TestCreateAssessmentTypeDuplicateCode(t *testing.T) {
	ts := setup(t)

	_, err := ts.assessment.CreateAssessmentType(&CreateAssessmentTypeRequest{
		Name: "Class Test", Code: "CT", DefaultWeight: 10,
	})
	require.NoError(t, err)

	// Codes are compared after normalization, so "ct" is the same code.
	_, err = ts.assessment.CreateAssessmentType(&CreateAssessmentTypeRequest{
		Name: "Continuous Test", Code: "ct", DefaultWeight: 15,
	})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestDeleteAssessmentTypeInUse(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	assessment := ts.newAssessment(t, f, "Quiz 1", "QZ", false, 10, 20)

	err := ts.assessment.DeleteAssessmentType(assessment.AssessmentTypeID)
	assert.ErrorIs(t, err, ErrAssessmentTypeInUse)

	// Removing the last referencing assessment unblocks the delete.
	require.NoError(t, ts.assessment.DeleteAssessment(assessment.ID))
	assert.NoError(t, ts.assessment.DeleteAssessmentType(assessment.AssessmentTypeID))
}

func TestCreateAssessmentUsesTypeDefaults(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	assessmentType, err := ts.assessment.CreateAssessmentType(&CreateAssessmentTypeRequest{
		Name: "Assignment", Code: "ASG", DefaultWeight: 15, DefaultMaxScore: 50,
	})
	require.NoError(t, err)

	assessment, err := ts.assessment.CreateAssessment(&CreateAssessmentRequest{
		ClassSubjectID:   f.classSubject.ID,
		GradingPeriodID:  f.period.ID,
		AssessmentTypeID: assessmentType.ID,
		Name:             "Assignment 1",
		DateConducted:    f.period.StartDate.AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, assessment.MaxScore)
	assert.Equal(t, 15.0, assessment.Weight)

	// Explicit values still win over the defaults.
	assessment, err = ts.assessment.CreateAssessment(&CreateAssessmentRequest{
		ClassSubjectID:   f.classSubject.ID,
		GradingPeriodID:  f.period.ID,
		AssessmentTypeID: assessmentType.ID,
		Name:             "Assignment 2",
		MaxScore:         40,
		Weight:           20,
		DateConducted:    f.period.StartDate.AddDate(0, 0, 28),
	})
	require.NoError(t, err)
	assert.Equal(t, 40, assessment.MaxScore)
	assert.Equal(t, 20.0, assessment.Weight)
}

func TestPublishAssessmentIdempotent(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	assessment := ts.newAssessment(t, f, "Quiz 1", "QZ", false, 10, 20)
	assert.False(t, assessment.IsPublished)

	published, err := ts.assessment.Publish(assessment.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	again, err := ts.assessment.Publish(assessment.ID)
	require.NoError(t, err)
	assert.True(t, again.IsPublished)
}

func TestTotalWeightForPeriod(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	ts.newAssessment(t, f, "Class Test 1", "CT", false, 30, 30)

	summary, err := ts.assessment.TotalWeightForPeriod(f.classSubject.ID, f.period.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, summary.TotalWeight)
	assert.False(t, summary.IsComplete)
	assert.False(t, summary.ExceedsHundred)

	ts.newAssessment(t, f, "End of Term Exam", "EXAM", true, 70, 100)

	summary, err = ts.assessment.TotalWeightForPeriod(f.classSubject.ID, f.period.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalWeight)
	assert.True(t, summary.IsComplete)
	assert.False(t, summary.ExceedsHundred)

	ts.newAssessment(t, f, "Project Work", "PROJ", false, 10, 100)

	summary, err = ts.assessment.TotalWeightForPeriod(f.classSubject.ID, f.period.ID)
	require.NoError(t, err)
	assert.Equal(t, 110.0, summary.TotalWeight)
	assert.False(t, summary.IsComplete)
	assert.True(t, summary.ExceedsHundred)
}
