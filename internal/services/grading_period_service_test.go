package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termRequest(number int) *CreateGradingPeriodRequest {
	start := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 4*(number-1), 0)
	return &CreateGradingPeriodRequest{
		TermName:     fmt.Sprintf("Term %d", number),
		TermNumber:   number,
		AcademicYear: "2024/2025",
		StartDate:    start,
		EndDate:      start.AddDate(0, 3, 0),
	}
}

func TestCreateGradingPeriod(t *testing.T) {
	ts := setup(t)

	period, err := ts.periods.Create(termRequest(1))
	require.NoError(t, err)
	assert.Equal(t, 1, period.TermNumber)
	assert.True(t, period.IsActive)
	assert.False(t, period.IsCurrent)
}

func TestCreateGradingPeriodInvalidDates(t *testing.T) {
	ts := setup(t)

	req := termRequest(1)
	req.StartDate, req.EndDate = req.EndDate, req.StartDate
	_, err := ts.periods.Create(req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Equal dates are rejected too.
	req = termRequest(1)
	req.EndDate = req.StartDate
	_, err = ts.periods.Create(req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateGradingPeriodInvalidDates(t *testing.T) {
	ts := setup(t)

	period, err := ts.periods.Create(termRequest(1))
	require.NoError(t, err)

	period.EndDate = period.StartDate.AddDate(0, 0, -1)
	assert.ErrorIs(t, ts.periods.Update(period), ErrInvalidDateRange)
}

func TestSetCurrentIsExclusive(t *testing.T) {
	ts := setup(t)

	first, err := ts.periods.Create(termRequest(1))
	require.NoError(t, err)
	second, err := ts.periods.Create(termRequest(2))
	require.NoError(t, err)
	third, err := ts.periods.Create(termRequest(3))
	require.NoError(t, err)

	_, err = ts.periods.SetCurrent(first.ID)
	require.NoError(t, err)
	current, err := ts.periods.GetCurrent()
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)

	// Moving the pointer clears the old current.
	_, err = ts.periods.SetCurrent(second.ID)
	require.NoError(t, err)
	current, err = ts.periods.GetCurrent()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	reloaded, err := ts.periods.Get(first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsCurrent)
	reloaded, err = ts.periods.Get(third.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsCurrent)
}

func TestDeleteGradingPeriodInUse(t *testing.T) {
	ts := setup(t)
	f := ts.newClassFixture(t, 1)

	ts.newAssessment(t, f, "Class Test 1", "CT", false, 30, 30)

	err := ts.periods.Delete(f.period.ID)
	assert.ErrorIs(t, err, ErrGradingPeriodInUse)

	// An unused period deletes cleanly.
	spare, err := ts.periods.Create(termRequest(2))
	require.NoError(t, err)
	assert.NoError(t, ts.periods.Delete(spare.ID))
}
