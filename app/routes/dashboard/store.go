package dashboard

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"sage-backend/app/finance"
	"sage-backend/app/models"
)

// sqlStore implements finance.Store. Each of the fee/expense/LoE reads
// is one query over the whole id set (assignment_id = ANY) so the
// roll-up issues a bounded number of queries regardless of how many
// assignments are in the working set.
type sqlStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) finance.Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) WorkingSet() ([]*models.Assignment, error) {
	query := `SELECT id, tor_id, consultant_id, country_id, title, status,
					 contracted_loe, daily_rate, total_value, start_date, end_date,
					 mobilised_at, created_at, updated_at
			  FROM assignments
			  WHERE status IN ('Active', 'Mobilising', 'Planned')
			  ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		a := &models.Assignment{}
		err := rows.Scan(&a.ID, &a.ToRID, &a.ConsultantID, &a.CountryID, &a.Title,
			&a.Status, &a.ContractedLoE, &a.DailyRate, &a.TotalValue,
			&a.StartDate, &a.EndDate, &a.MobilisedAt, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *sqlStore) LoEEntries(assignmentIDs []string) ([]*models.LoEEntry, error) {
	rows, err := s.db.Query(`SELECT id, assignment_id, entry_date, days, description, created_at, updated_at
							 FROM loe_entries WHERE assignment_id = ANY($1)`,
		pq.Array(assignmentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.LoEEntry{}
	for rows.Next() {
		e := &models.LoEEntry{}
		err := rows.Scan(&e.ID, &e.AssignmentID, &e.EntryDate, &e.Days,
			&e.Description, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *sqlStore) Fees(assignmentIDs []string) ([]*models.Fee, error) {
	rows, err := s.db.Query(`SELECT id, assignment_id, fee_type, amount, fee_date, description, created_at, updated_at
							 FROM fees WHERE assignment_id = ANY($1)`,
		pq.Array(assignmentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		f := &models.Fee{}
		err := rows.Scan(&f.ID, &f.AssignmentID, &f.FeeType, &f.Amount,
			&f.FeeDate, &f.Description, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func (s *sqlStore) Expenses(assignmentIDs []string) ([]*models.Expense, error) {
	rows, err := s.db.Query(`SELECT id, assignment_id, category, amount, expense_date, status, description, created_at, updated_at
							 FROM expenses WHERE assignment_id = ANY($1)`,
		pq.Array(assignmentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(&e.ID, &e.AssignmentID, &e.Category, &e.Amount,
			&e.ExpenseDate, &e.Status, &e.Description, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *sqlStore) RecentToRApprovals(since time.Time, limit int) ([]finance.Activity, error) {
	query := `SELECT t.title, u.first_name, u.last_name, t.approved_date
			  FROM tors t
			  LEFT JOIN users u ON t.approved_by = u.id
			  WHERE t.status = 'Approved' AND t.approved_date >= $1
			  ORDER BY t.approved_date DESC
			  LIMIT $2`

	return s.scanActivities(query, since, limit,
		finance.ActivityToRApproved, "ToR approved: ", finance.ActorSystem)
}

func (s *sqlStore) RecentMobilisations(since time.Time, limit int) ([]finance.Activity, error) {
	query := `SELECT a.title, c.first_name, c.last_name, a.mobilised_at
			  FROM assignments a
			  LEFT JOIN consultants c ON a.consultant_id = c.id
			  WHERE a.mobilised_at IS NOT NULL AND a.mobilised_at >= $1
			  ORDER BY a.mobilised_at DESC
			  LIMIT $2`

	return s.scanActivities(query, since, limit,
		finance.ActivityAssignmentMobilised, "Assignment mobilised: ", finance.ActorUnknown)
}

func (s *sqlStore) RecentDeliverableSubmissions(since time.Time, limit int) ([]finance.Activity, error) {
	query := `SELECT d.title, c.first_name, c.last_name, d.submitted_at
			  FROM deliverables d
			  JOIN assignments a ON d.assignment_id = a.id
			  LEFT JOIN consultants c ON a.consultant_id = c.id
			  WHERE d.submitted_at IS NOT NULL AND d.submitted_at >= $1
			  ORDER BY d.submitted_at DESC
			  LIMIT $2`

	return s.scanActivities(query, since, limit,
		finance.ActivityDeliverableSubmitted, "Deliverable submitted: ", finance.ActorUnknown)
}

func (s *sqlStore) RecentRisksRaised(since time.Time, limit int) ([]finance.Activity, error) {
	query := `SELECT r.title, u.first_name, u.last_name, r.raised_at
			  FROM risks r
			  LEFT JOIN users u ON r.raised_by = u.id
			  WHERE r.raised_at >= $1
			  ORDER BY r.raised_at DESC
			  LIMIT $2`

	return s.scanActivities(query, since, limit,
		finance.ActivityRiskRaised, "Risk raised: ", finance.ActorUnknown)
}

// scanActivities expects rows of (title, actor first/last nullable,
// timestamp) and applies the fallback actor when the relation is absent.
func (s *sqlStore) scanActivities(query string, since time.Time, limit int, activityType, titlePrefix, fallbackActor string) ([]finance.Activity, error) {
	rows, err := s.db.Query(query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []finance.Activity{}
	for rows.Next() {
		var title string
		var firstName, lastName sql.NullString
		var ts time.Time
		if err := rows.Scan(&title, &firstName, &lastName, &ts); err != nil {
			return nil, err
		}

		actor := fallbackActor
		if firstName.Valid {
			actor = firstName.String + " " + lastName.String
		}
		activities = append(activities, finance.Activity{
			Type:      activityType,
			Title:     titlePrefix + title,
			Actor:     actor,
			Timestamp: ts,
		})
	}
	return activities, rows.Err()
}
