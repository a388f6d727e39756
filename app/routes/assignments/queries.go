package assignments

import (
	"database/sql"
	"errors"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/models"
)

var assignmentColumns = []string{
	"id", "tor_id", "consultant_id", "country_id", "title", "status",
	"contracted_loe", "daily_rate", "total_value", "start_date", "end_date",
	"mobilised_at", "created_at", "updated_at",
}

func scanAssignment(r crud.Row) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := r.Scan(
		&a.ID, &a.ToRID, &a.ConsultantID, &a.CountryID, &a.Title, &a.Status,
		&a.ContractedLoE, &a.DailyRate, &a.TotalValue, &a.StartDate, &a.EndDate,
		&a.MobilisedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

var assignmentEntity = &crud.Entity[models.Assignment]{
	Table:   "assignments",
	Columns: assignmentColumns,
	Filters: map[string]string{
		"tor_id":        "tor_id",
		"consultant_id": "consultant_id",
		"country_id":    "country_id",
		"status":        "status",
	},
	Scan: scanAssignment,
	InsertCols: []string{
		"tor_id", "consultant_id", "country_id", "title", "status",
		"contracted_loe", "daily_rate", "total_value", "start_date", "end_date",
	},
	InsertVals: func(a *models.Assignment) []any {
		if a.Status == "" {
			a.Status = models.AssignmentStatusPlanned
		}
		return []any{
			a.ToRID, a.ConsultantID, a.CountryID, a.Title, a.Status,
			a.ContractedLoE, a.DailyRate, a.TotalValue, a.StartDate, a.EndDate,
		}
	},
}

// updateAssignment writes the merged row. Moving into Mobilising stamps
// mobilised_at once; the stamp is never cleared or overwritten.
func updateAssignment(db *sql.DB, a *models.Assignment) (*models.Assignment, error) {
	query := `UPDATE assignments
			  SET tor_id = $1, consultant_id = $2, country_id = $3, title = $4,
				  status = $5, contracted_loe = $6, daily_rate = $7, total_value = $8,
				  start_date = $9, end_date = $10,
				  mobilised_at = CASE WHEN $5 = 'Mobilising' AND mobilised_at IS NULL
									  THEN NOW() ELSE mobilised_at END,
				  updated_at = NOW()
			  WHERE id = $11
			  RETURNING ` + columnList(assignmentColumns)

	updated, err := scanAssignment(db.QueryRow(query,
		a.ToRID, a.ConsultantID, a.CountryID, a.Title, a.Status,
		a.ContractedLoE, a.DailyRate, a.TotalValue, a.StartDate, a.EndDate, a.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("assignment")
	}
	return updated, err
}

// LoE entries

var loeColumns = []string{
	"id", "assignment_id", "entry_date", "days", "description", "created_at", "updated_at",
}

func scanLoEEntry(r crud.Row) (*models.LoEEntry, error) {
	e := &models.LoEEntry{}
	err := r.Scan(&e.ID, &e.AssignmentID, &e.EntryDate, &e.Days, &e.Description,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

var loeEntity = &crud.Entity[models.LoEEntry]{
	Table:        "loe_entries",
	Columns:      loeColumns,
	Filters:      map[string]string{"assignment_id": "assignment_id"},
	DefaultOrder: "entry_date DESC",
	Scan:         scanLoEEntry,
	InsertCols:   []string{"assignment_id", "entry_date", "days", "description"},
	InsertVals: func(e *models.LoEEntry) []any {
		return []any{e.AssignmentID, e.EntryDate, e.Days, e.Description}
	},
}

func loeEntriesFor(db *sql.DB, assignmentID string) ([]*models.LoEEntry, error) {
	rows, err := db.Query(`SELECT `+columnList(loeColumns)+`
						   FROM loe_entries WHERE assignment_id = $1 ORDER BY entry_date DESC`,
		assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.LoEEntry{}
	for rows.Next() {
		e, err := scanLoEEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Fees

var feeColumns = []string{
	"id", "assignment_id", "fee_type", "amount", "fee_date", "description",
	"created_at", "updated_at",
}

func scanFee(r crud.Row) (*models.Fee, error) {
	f := &models.Fee{}
	err := r.Scan(&f.ID, &f.AssignmentID, &f.FeeType, &f.Amount, &f.FeeDate,
		&f.Description, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

var feeEntity = &crud.Entity[models.Fee]{
	Table:        "fees",
	Columns:      feeColumns,
	Filters:      map[string]string{"assignment_id": "assignment_id", "fee_type": "fee_type"},
	DefaultOrder: "fee_date DESC",
	Scan:         scanFee,
	InsertCols:   []string{"assignment_id", "fee_type", "amount", "fee_date", "description"},
	InsertVals: func(f *models.Fee) []any {
		return []any{f.AssignmentID, f.FeeType, f.Amount, f.FeeDate, f.Description}
	},
}

func feesFor(db *sql.DB, assignmentID string) ([]*models.Fee, error) {
	rows, err := db.Query(`SELECT `+columnList(feeColumns)+`
						   FROM fees WHERE assignment_id = $1 ORDER BY fee_date DESC`,
		assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// Expenses

var expenseColumns = []string{
	"id", "assignment_id", "category", "amount", "expense_date", "status",
	"description", "created_at", "updated_at",
}

func scanExpense(r crud.Row) (*models.Expense, error) {
	e := &models.Expense{}
	err := r.Scan(&e.ID, &e.AssignmentID, &e.Category, &e.Amount, &e.ExpenseDate,
		&e.Status, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

var expenseEntity = &crud.Entity[models.Expense]{
	Table:        "expenses",
	Columns:      expenseColumns,
	Filters:      map[string]string{"assignment_id": "assignment_id", "status": "status", "category": "category"},
	DefaultOrder: "expense_date DESC",
	Scan:         scanExpense,
	InsertCols:   []string{"assignment_id", "category", "amount", "expense_date", "status", "description"},
	InsertVals: func(e *models.Expense) []any {
		if e.Status == "" {
			e.Status = models.ExpenseStatusSubmitted
		}
		return []any{e.AssignmentID, e.Category, e.Amount, e.ExpenseDate, e.Status, e.Description}
	},
}

func expensesFor(db *sql.DB, assignmentID string) ([]*models.Expense, error) {
	rows, err := db.Query(`SELECT `+columnList(expenseColumns)+`
						   FROM expenses WHERE assignment_id = $1 ORDER BY expense_date DESC`,
		assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// submitDeliverable stamps submission, permitted once while Pending.
func submitDeliverable(db *sql.DB, id string) (*models.Deliverable, error) {
	query := `UPDATE deliverables
			  SET status = $1, submitted_at = NOW(), updated_at = NOW()
			  WHERE id = $2 AND status = $3
			  RETURNING id, assignment_id, title, due_date, submitted_at, status, created_at, updated_at`

	d := &models.Deliverable{}
	err := db.QueryRow(query, models.DeliverableStatusSubmitted, id, models.DeliverableStatusPending).
		Scan(&d.ID, &d.AssignmentID, &d.Title, &d.DueDate, &d.SubmittedAt, &d.Status,
			&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		var status string
		serr := db.QueryRow(`SELECT status FROM deliverables WHERE id = $1`, id).Scan(&status)
		if errors.Is(serr, sql.ErrNoRows) {
			return nil, apperr.NotFound("deliverable")
		}
		if serr != nil {
			return nil, serr
		}
		return nil, apperr.InvalidState("cannot submit deliverable in status %q", status)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func columnList(cols []string) string {
	list := cols[0]
	for _, c := range cols[1:] {
		list += ", " + c
	}
	return list
}
