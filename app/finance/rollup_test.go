package finance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sage-backend/app/models"
)

// fakeStore counts queries so the bounded-fetch contract is assertable.
type fakeStore struct {
	assignments []*models.Assignment
	entries     []*models.LoEEntry
	fees        []*models.Fee
	expenses    []*models.Expense
	queries     int
}

func (f *fakeStore) WorkingSet() ([]*models.Assignment, error) {
	f.queries++
	return f.assignments, nil
}

func (f *fakeStore) LoEEntries(ids []string) ([]*models.LoEEntry, error) {
	f.queries++
	return f.entries, nil
}

func (f *fakeStore) Fees(ids []string) ([]*models.Fee, error) {
	f.queries++
	return f.fees, nil
}

func (f *fakeStore) Expenses(ids []string) ([]*models.Expense, error) {
	f.queries++
	return f.expenses, nil
}

func (f *fakeStore) RecentToRApprovals(time.Time, int) ([]Activity, error) {
	f.queries++
	return nil, nil
}

func (f *fakeStore) RecentMobilisations(time.Time, int) ([]Activity, error) {
	f.queries++
	return nil, nil
}

func (f *fakeStore) RecentDeliverableSubmissions(time.Time, int) ([]Activity, error) {
	f.queries++
	return nil, nil
}

func (f *fakeStore) RecentRisksRaised(time.Time, int) ([]Activity, error) {
	f.queries++
	return nil, nil
}

func newService(store *fakeStore, now time.Time) *Service {
	s := NewService(store)
	s.now = func() time.Time { return now }
	return s
}

func assignment(id string, status string, contracted, rate float64) *models.Assignment {
	return &models.Assignment{
		ID:            id,
		Title:         "Assignment " + id,
		Status:        status,
		ContractedLoE: contracted,
		DailyRate:     rate,
	}
}

func TestComprehensiveQueryCountIndependentOfN(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	one := &fakeStore{assignments: []*models.Assignment{assignment("a1", models.AssignmentStatusActive, 10, 500)}}
	_, err := newService(one, now).Comprehensive()
	require.NoError(t, err)

	many := &fakeStore{}
	for i := 0; i < 100; i++ {
		many.assignments = append(many.assignments,
			assignment(fmt.Sprintf("a%d", i), models.AssignmentStatusActive, 10, 500))
	}
	_, err = newService(many, now).Comprehensive()
	require.NoError(t, err)

	assert.Equal(t, one.queries, many.queries)
}

func TestComprehensiveFinancials(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	feeDate := now.AddDate(0, 0, -10)

	store := &fakeStore{
		assignments: []*models.Assignment{assignment("a1", models.AssignmentStatusActive, 45, 850)},
		entries: []*models.LoEEntry{
			{AssignmentID: "a1", EntryDate: feeDate, Days: 20},
			{AssignmentID: "a1", EntryDate: feeDate, Days: 8.5},
		},
		fees: []*models.Fee{
			{ID: "f1", AssignmentID: "a1", FeeType: models.FeeTypeMilestone, Amount: 5000, FeeDate: feeDate},
		},
		expenses: []*models.Expense{
			{AssignmentID: "a1", Amount: 1200, ExpenseDate: feeDate},
			{AssignmentID: "a1", Amount: 300, ExpenseDate: feeDate},
		},
	}

	rollup, err := newService(store, now).Comprehensive()
	require.NoError(t, err)
	require.Len(t, rollup.Assignments, 1)

	af := rollup.Assignments[0]
	assert.Equal(t, 28.5, af.Usage.TotalLoEUsed)
	assert.Equal(t, 63.33, af.Usage.BurnRate)
	assert.Equal(t, 16.5, af.Usage.RemainingLoE)

	// 28.5 days x 850 = 24225 calculated, plus the stored 5000 milestone.
	assert.Equal(t, 29225.0, af.TotalFees)
	assert.Equal(t, 1500.0, af.TotalExpenses)
	assert.Equal(t, 30725.0, af.GrandTotal)
	assert.Equal(t, rollup.GrandTotal, af.GrandTotal)

	// Calculated lines carry no row id; the stored fee keeps its own.
	require.Len(t, af.Fees, 3)
	assert.Nil(t, af.Fees[0].ID)
	assert.Equal(t, FeeTypeCalculated, af.Fees[0].Type)
	require.NotNil(t, af.Fees[2].ID)
	assert.Equal(t, "f1", *af.Fees[2].ID)
}

func TestComprehensiveMetrics(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	inMonth := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	country := "c1"
	consultant := "p1"

	a1 := assignment("a1", models.AssignmentStatusActive, 10, 500)
	a1.CountryID = &country
	a1.ConsultantID = &consultant
	a1.EndDate = &inMonth

	a2 := assignment("a2", models.AssignmentStatusMobilising, 0, 500)
	a2.CountryID = &country
	a2.EndDate = &nextMonth

	store := &fakeStore{
		assignments: []*models.Assignment{a1, a2},
		entries:     []*models.LoEEntry{{AssignmentID: "a1", Days: 5}},
	}

	rollup, err := newService(store, now).Comprehensive()
	require.NoError(t, err)

	m := rollup.Metrics
	assert.Equal(t, 1, m.ActiveAssignments)
	assert.Equal(t, 1, m.CountriesEngaged)
	assert.Equal(t, 1, m.ConsultantsDeployed)
	// End date past the current month is not an upcoming completion.
	assert.Equal(t, 1, m.UpcomingCompletions)
	// a2 has zero contracted LoE and is averaged in as 0: (50 + 0) / 2.
	assert.Equal(t, 25.0, m.AverageBurnRate)
}
