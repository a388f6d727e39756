package finance

import (
	"time"

	"sage-backend/app/models"
)

// Activity feed window and per-category limits.
const (
	activityWindowMonths = 3
	activityPerCategory  = 10
	activityRiskLimit    = 5
	activityFeedSize     = 20
)

// Store is the read surface the roll-up needs. Implementations must
// honour the bulk-fetch contract: each of LoEEntries/Fees/Expenses is
// one query for the whole id set, so the roll-up issues a bounded
// number of queries regardless of how many assignments are in play.
type Store interface {
	WorkingSet() ([]*models.Assignment, error)
	LoEEntries(assignmentIDs []string) ([]*models.LoEEntry, error)
	Fees(assignmentIDs []string) ([]*models.Fee, error)
	Expenses(assignmentIDs []string) ([]*models.Expense, error)

	RecentToRApprovals(since time.Time, limit int) ([]Activity, error)
	RecentMobilisations(since time.Time, limit int) ([]Activity, error)
	RecentDeliverableSubmissions(since time.Time, limit int) ([]Activity, error)
	RecentRisksRaised(since time.Time, limit int) ([]Activity, error)
}

// FeeLine is one fee row in the roll-up. Lines derived from LoE entries
// carry type "calculated" and no row id.
type FeeLine struct {
	ID          *string   `json:"id,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
}

const FeeTypeCalculated = "calculated"

type AssignmentFinance struct {
	AssignmentID  string          `json:"assignment_id"`
	Title         string          `json:"title"`
	Status        string          `json:"status"`
	Usage         AssignmentUsage `json:"usage"`
	Fees          []FeeLine       `json:"fees"`
	TotalFees     float64         `json:"total_fees"`
	TotalExpenses float64         `json:"total_expenses"`
	GrandTotal    float64         `json:"grand_total"`
}

type Metrics struct {
	ActiveAssignments   int     `json:"active_assignments"`
	CountriesEngaged    int     `json:"countries_engaged"`
	ConsultantsDeployed int     `json:"consultants_deployed"`
	AverageBurnRate     float64 `json:"average_burn_rate"`
	UpcomingCompletions int     `json:"upcoming_completions"`
}

type Rollup struct {
	Assignments    []AssignmentFinance `json:"assignments"`
	TotalFees      float64             `json:"total_fees"`
	TotalExpenses  float64             `json:"total_expenses"`
	GrandTotal     float64             `json:"grand_total"`
	Metrics        Metrics             `json:"metrics"`
	RecentActivity []Activity          `json:"recent_activity"`
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Comprehensive computes the full dashboard roll-up over the working set
// of Planned, Mobilising and Active assignments. The reads are separate
// queries without a spanning transaction, so the totals and the feed are
// eventually-consistent snapshots.
func (s *Service) Comprehensive() (*Rollup, error) {
	assignments, err := s.store.WorkingSet()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}

	entries, err := s.store.LoEEntries(ids)
	if err != nil {
		return nil, err
	}
	fees, err := s.store.Fees(ids)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.Expenses(ids)
	if err != nil {
		return nil, err
	}

	entriesByAssignment := map[string][]*models.LoEEntry{}
	for _, e := range entries {
		entriesByAssignment[e.AssignmentID] = append(entriesByAssignment[e.AssignmentID], e)
	}
	feesByAssignment := map[string][]*models.Fee{}
	for _, f := range fees {
		feesByAssignment[f.AssignmentID] = append(feesByAssignment[f.AssignmentID], f)
	}
	expensesByAssignment := map[string][]*models.Expense{}
	for _, e := range expenses {
		expensesByAssignment[e.AssignmentID] = append(expensesByAssignment[e.AssignmentID], e)
	}

	rollup := &Rollup{Assignments: make([]AssignmentFinance, 0, len(assignments))}
	var burnSum float64
	countries := map[string]struct{}{}
	consultants := map[string]struct{}{}
	today := truncateDay(s.now())
	monthEnd := endOfMonth(today)

	for _, a := range assignments {
		af := Assemble(a, entriesByAssignment[a.ID], feesByAssignment[a.ID], expensesByAssignment[a.ID])
		rollup.Assignments = append(rollup.Assignments, af)
		rollup.TotalFees += af.TotalFees
		rollup.TotalExpenses += af.TotalExpenses
		rollup.GrandTotal += af.GrandTotal

		// Zero-contracted assignments count as 0 in the average, they
		// are not excluded.
		burnSum += af.Usage.BurnRate

		if a.Status == models.AssignmentStatusActive {
			rollup.Metrics.ActiveAssignments++
		}
		if a.CountryID != nil {
			countries[*a.CountryID] = struct{}{}
		}
		if a.ConsultantID != nil {
			consultants[*a.ConsultantID] = struct{}{}
		}
		if a.EndDate != nil {
			end := truncateDay(*a.EndDate)
			if !end.Before(today) && !end.After(monthEnd) {
				rollup.Metrics.UpcomingCompletions++
			}
		}
	}

	rollup.Metrics.CountriesEngaged = len(countries)
	rollup.Metrics.ConsultantsDeployed = len(consultants)
	if len(assignments) > 0 {
		rollup.Metrics.AverageBurnRate = Round2(burnSum / float64(len(assignments)))
	}

	feed, err := s.RecentActivity()
	if err != nil {
		return nil, err
	}
	rollup.RecentActivity = feed

	return rollup, nil
}

// RecentActivity merges the per-category recent event queries into one
// feed, newest first.
func (s *Service) RecentActivity() ([]Activity, error) {
	since := s.now().AddDate(0, -activityWindowMonths, 0)

	approvals, err := s.store.RecentToRApprovals(since, activityPerCategory)
	if err != nil {
		return nil, err
	}
	mobilisations, err := s.store.RecentMobilisations(since, activityPerCategory)
	if err != nil {
		return nil, err
	}
	submissions, err := s.store.RecentDeliverableSubmissions(since, activityPerCategory)
	if err != nil {
		return nil, err
	}
	risks, err := s.store.RecentRisksRaised(since, activityRiskLimit)
	if err != nil {
		return nil, err
	}

	return MergeActivities(activityFeedSize, approvals, mobilisations, submissions, risks), nil
}

// Assemble computes the financial lines for one assignment: calculated
// fees from LoE entries (days x daily rate) plus stored fee rows, then
// the expense sum and grand total.
func Assemble(a *models.Assignment, entries []*models.LoEEntry, fees []*models.Fee, expenses []*models.Expense) AssignmentFinance {
	af := AssignmentFinance{
		AssignmentID: a.ID,
		Title:        a.Title,
		Status:       a.Status,
		Fees:         []FeeLine{},
	}

	var used float64
	for _, e := range entries {
		used += e.Days
		line := FeeLine{
			Type:        FeeTypeCalculated,
			Description: e.Description,
			Date:        e.EntryDate,
			Amount:      e.Days * a.DailyRate,
		}
		af.Fees = append(af.Fees, line)
		af.TotalFees += line.Amount
	}
	for _, f := range fees {
		id := f.ID
		line := FeeLine{
			ID:          &id,
			Type:        f.FeeType,
			Description: f.Description,
			Date:        f.FeeDate,
			Amount:      f.Amount,
		}
		af.Fees = append(af.Fees, line)
		af.TotalFees += line.Amount
	}
	for _, e := range expenses {
		af.TotalExpenses += e.Amount
	}

	af.Usage = Usage(a.ContractedLoE, used)
	af.GrandTotal = af.TotalFees + af.TotalExpenses
	return af
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -1)
}
