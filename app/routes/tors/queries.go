package tors

import (
	"database/sql"
	"errors"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/models"
)

var torColumns = []string{
	"id", "workstream_id", "title", "objective", "scope", "status",
	"estimated_days", "estimated_value", "approved_by", "approved_date",
	"rejection_reason", "created_at", "updated_at",
}

func scanToR(r crud.Row) (*models.ToR, error) {
	t := &models.ToR{}
	err := r.Scan(
		&t.ID, &t.WorkstreamID, &t.Title, &t.Objective, &t.Scope, &t.Status,
		&t.EstimatedDays, &t.EstimatedValue, &t.ApprovedBy, &t.ApprovedDate,
		&t.RejectionReason, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// torEntity serves list/get/create through the generic repository. New
// ToRs always start in Draft; a client-supplied status is ignored.
var torEntity = &crud.Entity[models.ToR]{
	Table:   "tors",
	Columns: torColumns,
	Filters: map[string]string{
		"workstream_id": "workstream_id",
		"status":        "status",
	},
	Scan: scanToR,
	InsertCols: []string{
		"workstream_id", "title", "objective", "scope", "status",
		"estimated_days", "estimated_value",
	},
	InsertVals: func(t *models.ToR) []any {
		return []any{
			t.WorkstreamID, t.Title, t.Objective, t.Scope, models.ToRStatusDraft,
			t.EstimatedDays, t.EstimatedValue,
		}
	},
}

// store is the persistence surface the workflow service drives. Guarded
// writes signal a guard miss (no row matched id plus expected status)
// with sql.ErrNoRows so the service can disambiguate.
type store interface {
	Status(id string) (string, error)
	UpdateFields(t *models.ToR) (*models.ToR, error)
	Transition(id, from, to string, st stamps) (*models.ToR, error)
	Delete(id, from string) (int64, error)
}

type sqlStore struct {
	db *sql.DB
}

func newStore(db *sql.DB) store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Status(id string) (string, error) {
	var status string
	err := s.db.QueryRow(`SELECT status FROM tors WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperr.NotFound("tor")
	}
	return status, err
}

func (s *sqlStore) UpdateFields(t *models.ToR) (*models.ToR, error) {
	query := `UPDATE tors
			  SET title = $1, objective = $2, scope = $3, estimated_days = $4,
				  estimated_value = $5, workstream_id = $6, updated_at = NOW()
			  WHERE id = $7 AND status IN ('Draft', 'QA')
			  RETURNING ` + selectList()

	return scanToR(s.db.QueryRow(query,
		t.Title, t.Objective, t.Scope, t.EstimatedDays, t.EstimatedValue,
		t.WorkstreamID, t.ID))
}

// Transition applies the guarded status move plus the stamps the
// service computed, in one conditional update.
func (s *sqlStore) Transition(id, from, to string, st stamps) (*models.ToR, error) {
	query := `UPDATE tors
			  SET status = $1,
				  approved_by = COALESCE($2::uuid, approved_by),
				  approved_date = COALESCE($3::timestamptz, approved_date),
				  rejection_reason = COALESCE($4::text, rejection_reason),
				  updated_at = NOW()
			  WHERE id = $5 AND status = $6
			  RETURNING ` + selectList()

	return scanToR(s.db.QueryRow(query,
		to, st.ApprovedBy, st.ApprovedDate, st.RejectionReason, id, from))
}

func (s *sqlStore) Delete(id, from string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM tors WHERE id = $1 AND status = $2`, id, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func selectList() string {
	list := torColumns[0]
	for _, c := range torColumns[1:] {
		list += ", " + c
	}
	return list
}
